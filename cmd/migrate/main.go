package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brokerdesk/crm/internal/infrastructure/config"
	"github.com/brokerdesk/crm/internal/infrastructure/logger"
	"github.com/brokerdesk/crm/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var errUsage = errors.New("invalid usage")

// migrator is the part of *migration.Migrator the database commands drive.
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	GoTo(version uint) error
	Version() (uint, bool, error)
	Status() (migration.Status, error)
	Force(version int) error
}

func main() {
	pathFlag := flag.String("path", "", "Path to migrations directory (default: schema.migrations_path)")
	logLevel := flag.String("log-level", "", "Log level (default: log.level)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log, err := newLogger(cfg.Log, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, args, *pathFlag, log); err != nil {
		log.Error("Migration command failed", zap.String("command", args[0]), zap.Error(err))
		_ = logger.Sync(log)
		if errors.Is(err, errUsage) {
			printUsage()
			os.Exit(2)
		}
		os.Exit(1)
	}
	_ = logger.Sync(log)
}

// newLogger writes to stderr unless log.output names a file; stdout is
// reserved for command output.
func newLogger(lc config.LogConfig, level string) (*zap.Logger, error) {
	out := lc.Output
	if out == "stdout" {
		out = "stderr"
	}
	if level == "" {
		level = lc.Level
	}
	return logger.New(logger.Config{
		Level:      level,
		Format:     lc.Format,
		Output:     out,
		TimeFormat: "2006-01-02 15:04:05",
	})
}

func run(cfg *config.Config, args []string, dir string, log *zap.Logger) error {
	if dir == "" {
		dir = cfg.Schema.MigrationsPath
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	log = log.With(zap.String("migrations_path", dir))

	if handled, err := runFileCommand(os.Stdout, dir, args, time.Now(), log); handled {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, migration.Options{
		MigrationsPath: dir,
		SchemaName:     cfg.Schema.Name,
	}, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return runDBCommand(os.Stdout, m, args, log)
}

// runFileCommand serves the commands that only touch the migrations
// directory. handled is false for anything that needs a database.
func runFileCommand(out io.Writer, dir string, args []string, now time.Time, log *zap.Logger) (handled bool, err error) {
	switch args[0] {
	case "create":
		if len(args) < 2 {
			return true, fmt.Errorf("%w: create needs a migration name", errUsage)
		}
		var description string
		if len(args) > 2 {
			description = args[2]
		}
		mf, err := migration.CreateMigration(dir, args[1], description, now)
		if err != nil {
			return true, err
		}
		log.Info("Migration created", zap.String("version", mf.Version), zap.String("up_file", mf.UpPath))
		fmt.Fprintln(out, mf.UpPath)
		fmt.Fprintln(out, mf.DownPath)
		return true, nil

	case "list":
		files, err := migration.ListMigrations(dir)
		if err != nil {
			return true, err
		}
		for _, mf := range files {
			writeMigration(out, mf)
		}
		log.Debug("Migrations listed", zap.Int("count", len(files)))
		return true, nil
	}
	return false, nil
}

func runDBCommand(out io.Writer, m migrator, args []string, log *zap.Logger) error {
	switch cmd := args[0]; cmd {
	case "up":
		return m.Up()
	case "down":
		return m.Down()

	case "step":
		n, err := intArg(args, "step count")
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: step count must not be zero", errUsage)
		}
		return m.Steps(n)

	case "goto":
		if len(args) < 2 {
			return fmt.Errorf("%w: goto needs a version", errUsage)
		}
		v, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: version %q is not a number", errUsage, args[1])
		}
		return m.GoTo(uint(v))

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "version=%d dirty=%t\n", v, dirty)
		return nil

	case "status":
		st, err := m.Status()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "version=%d dirty=%t applied=%d pending=%d\n",
			st.Version, st.Dirty, st.Applied, len(st.Pending))
		for _, mf := range st.Pending {
			writeMigration(out, mf)
		}
		return nil

	case "force":
		v, err := intArg(args, "version")
		if err != nil {
			return err
		}
		log.Warn("Forcing migration version", zap.Int("version", v))
		return m.Force(v)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func intArg(args []string, what string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%w: %s %s required", errUsage, args[0], what)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errUsage, what, args[1])
	}
	return n, nil
}

func writeMigration(out io.Writer, mf migration.MigrationFile) {
	if mf.HasDown() {
		fmt.Fprintf(out, "  %s\n", mf.BaseName())
		return
	}
	fmt.Fprintf(out, "  %s (no down file)\n", mf.BaseName())
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: migrate [flags] <command> [arguments]

Commands:
  up                    apply all pending migrations
  down                  roll back every migration
  step <n>              apply n migrations, negative n rolls back
  goto <version>        migrate up or down to version
  version               print the applied version
  status                print the applied version and pending files
  force <version>       record version without running SQL
  create <name> [desc]  write a new up/down file pair
  list                  list migration files

Flags:
  -path string          migrations directory (default: schema.migrations_path)
  -log-level string     debug, info, warn or error (default: log.level)

Connection settings come from config.toml or CRM_DATABASE_HOST, CRM_DATABASE_PORT,
CRM_DATABASE_USER, CRM_DATABASE_PASSWORD, CRM_DATABASE_DBNAME and CRM_DATABASE_SSLMODE.
`)
}
