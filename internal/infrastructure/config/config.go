package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CRM_DATABASE_HOST.
const EnvPrefix = "CRM"

// Config is the settings tree shared by the migrate and schemactl commands.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Schema   SchemaConfig   `mapstructure:"schema"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig describes the PostgreSQL server holding the CRM schema.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
	SlowQuery       int    `mapstructure:"slow_query_ms"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stdout, stderr or a file path
}

// SchemaConfig locates the migrations and the generated catalog.
type SchemaConfig struct {
	Name            string   `mapstructure:"name"`
	MigrationsPath  string   `mapstructure:"migrations_path"`
	GeneratedFile   string   `mapstructure:"generated_file"`
	IgnoreRelations []string `mapstructure:"ignore_relations"` // skipped by the drift check
}

var defaults = map[string]any{
	"app.name":                    "brokerdesk-crm",
	"app.env":                     "development",
	"database.host":               "localhost",
	"database.port":               5432,
	"database.user":               "postgres",
	"database.password":           "",
	"database.dbname":             "crm",
	"database.sslmode":            "disable",
	"database.max_open_conns":     25,
	"database.max_idle_conns":     5,
	"database.conn_max_lifetime":  60,
	"database.conn_max_idle_time": 30,
	"database.slow_query_ms":      200,
	"log.level":                   "info",
	"log.format":                  "console",
	"log.output":                  "stdout",
	"schema.name":                 "public",
	"schema.migrations_path":      "migrations",
	"schema.generated_file":       "internal/schema/catalog_gen.go",
	"schema.ignore_relations":     []string{"schema_migrations"},
}

// Load reads config.toml from the working directory or /etc/crm, then
// applies CRM_ environment overrides on top of the built-in defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/crm")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	db := c.Database
	switch {
	case db.MaxOpenConns <= 0:
		return errors.New("database.max_open_conns must be positive")
	case db.MaxIdleConns < 0:
		return errors.New("database.max_idle_conns cannot be negative")
	case db.MaxIdleConns > db.MaxOpenConns:
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			db.MaxIdleConns, db.MaxOpenConns)
	case db.SlowQuery < 0:
		return errors.New("database.slow_query_ms cannot be negative")
	case c.Schema.MigrationsPath == "":
		return errors.New("schema.migrations_path is required")
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	if c.IsProduction() {
		if db.Password == "" {
			return errors.New("database.password is required in production")
		}
		if db.SSLMode == "disable" {
			return errors.New("database.sslmode cannot be 'disable' in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN renders a postgres:// URL usable by pgx, lib/pq and golang-migrate.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
