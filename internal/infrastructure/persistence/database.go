package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brokerdesk/crm/internal/infrastructure/config"
	"github.com/brokerdesk/crm/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database owns the gorm handle for the CRM schema and its connection pool.
type Database struct {
	DB  *gorm.DB
	log *zap.Logger
}

// NewDatabase connects to the server described by cfg through pgx.
// logLevel uses the names accepted by logger.ParseSQLLevel.
func NewDatabase(cfg *config.DatabaseConfig, log *zap.Logger, logLevel string) (*Database, error) {
	return Open(postgres.Open(cfg.DSN()), cfg, log, logLevel)
}

// Open connects through an arbitrary dialector, sizes the pool from cfg and
// verifies the connection.
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig, log *zap.Logger, logLevel string) (*Database, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewSQLLogger(log, logger.SQLConfig{
			Level:         logger.ParseSQLLevel(logLevel),
			SlowThreshold: time.Duration(cfg.SlowQuery) * time.Millisecond,
		}),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBName, err)
	}

	d := &Database{DB: db, log: log}
	pool, err := d.pool()
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBName, err)
	}

	log.Debug("Database connected",
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.DBName),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return d, nil
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	return pool, nil
}

// Repositories returns the table, view and function accessors bound to d.
func (d *Database) Repositories() *Repositories {
	return NewRepositories(d.DB, d.log)
}

func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.PingContext(ctx)
}

// Stats reports the pool counters.
func (d *Database) Stats() (sql.DBStats, error) {
	pool, err := d.pool()
	if err != nil {
		return sql.DBStats{}, err
	}
	return pool.Stats(), nil
}

// Transaction executes fn within a database transaction bound to ctx.
// Domain errors returned by fn pass through; driver errors are translated.
func (d *Database) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return translateError(d.DB.WithContext(ctx).Transaction(fn))
}
