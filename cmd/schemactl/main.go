package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brokerdesk/crm/internal/infrastructure/config"
	"github.com/brokerdesk/crm/internal/infrastructure/logger"
	"github.com/brokerdesk/crm/internal/schema"
	"github.com/brokerdesk/crm/internal/schema/codegen"
	"github.com/brokerdesk/crm/internal/schema/drift"
	"github.com/brokerdesk/crm/internal/schema/introspect"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// exitDrift is returned by check when the live schema differs
const exitDrift = 1

func main() {
	var (
		logLevel string
		output   string
		timeout  time.Duration
	)

	flag.StringVar(&logLevel, "log-level", "", "Log level (default: log.level)")
	flag.StringVar(&output, "out", "", "Output file for dump and generate (default: stdout / schema.generated_file)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for reading the live catalog")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(2)
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	// stdout carries command output
	logOutput := cfg.Log.Output
	if logOutput == "stdout" {
		logOutput = "stderr"
	}
	log, err := logger.New(logger.Config{
		Level:      logLevel,
		Format:     cfg.Log.Format,
		Output:     logOutput,
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if command == "enums" {
		if err := writeEnums(os.Stdout, args[1:]); err != nil {
			log.Fatal("Failed to list enums", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logger.WithOperation(ctx, command)

	switch command {
	case "check":
		live := mustLoadLive(ctx, cfg, log)
		report := drift.Compare(schema.Declared(), live, drift.Options{
			IgnoreRelations: cfg.Schema.IgnoreRelations,
		})
		if report.Clean() {
			log.Info("Declared catalog matches the database", zap.String("schema", cfg.Schema.Name))
			return
		}
		if err := report.Write(os.Stdout); err != nil {
			log.Fatal("Failed to write drift report", zap.Error(err))
		}
		log.Error("Schema drift detected", zap.Int("differences", len(report.Differences)))
		_ = logger.Sync(log)
		os.Exit(exitDrift)

	case "dump":
		live := mustLoadLive(ctx, cfg, log)
		if err := dumpCatalog(os.Stdout, output, live); err != nil {
			log.Fatal("Failed to dump catalog", zap.String("file", output), zap.Error(err))
		}

	case "generate":
		live := mustLoadLive(ctx, cfg, log).Without(cfg.Schema.IgnoreRelations...)
		target := cfg.Schema.GeneratedFile
		if output != "" {
			target = output
		}
		if err := codegen.WriteFile(target, live, "schema"); err != nil {
			log.Fatal("Failed to generate catalog", zap.Error(err))
		}
		log.Info("Catalog generated",
			zap.String("file", target),
			zap.Int("relations", len(live.Relations)),
			zap.Int("enums", len(live.Enums)),
			zap.Int("functions", len(live.Functions)),
		)

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(2)
	}
}

// mustLoadLive introspects the configured schema or exits
func mustLoadLive(ctx context.Context, cfg *config.Config, log *zap.Logger) *schema.Catalog {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	live, err := introspect.New(db, log.Named("introspect")).Load(ctx, cfg.Schema.Name)
	if err != nil {
		log.Fatal("Failed to read live catalog", zap.Error(err))
	}
	return live
}

// dumpCatalog writes cat as YAML to the file at path, or to w when path is
// empty. The file is closed before returning and a failed close is an error.
func dumpCatalog(w io.Writer, path string, cat *schema.Catalog) error {
	if path == "" {
		return writeCatalogYAML(w, cat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeCatalogYAML(f, cat); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// writeCatalogYAML encodes cat with two-space indentation
func writeCatalogYAML(w io.Writer, cat *schema.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return err
	}
	return enc.Close()
}

// writeEnums prints the declared enums, or only the named ones, one per
// line as "name: label, label, ...".
func writeEnums(w io.Writer, names []string) error {
	if len(names) == 0 {
		names = schema.EnumNames()
	}
	for _, name := range names {
		values, err := schema.Enums(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, strings.Join(values, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printUsage() {
	fmt.Println(`CRM Schema Tool

Usage:
  schemactl [flags] <command> [arguments]

Commands:
  check                 Compare the declared catalog with the database (exit 1 on drift)
  dump                  Print the live catalog as YAML
  generate              Write the declared catalog source from the live database
  enums [name...]       List declared enum labels

Flags:
  -out string           Output file for dump and generate
  -timeout duration     Timeout for reading the live catalog (default: 30s)
  -log-level string     Log level: debug, info, warn, error (default: log.level)

Examples:
  # Fail CI when migrations and models disagree
  schemactl check

  # Refresh internal/schema/catalog_gen.go after a migration
  migrate up && schemactl generate`)
}
