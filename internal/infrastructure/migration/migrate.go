package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator handles database migrations using golang-migrate
type Migrator struct {
	migrate *migrate.Migrate
	path    string
	logger  *zap.Logger
}

// Options holds migration settings
type Options struct {
	MigrationsPath string
	SchemaName     string // defaults to the connection's current schema
}

// Status describes the database position relative to the migration files
type Status struct {
	Version uint
	Dirty   bool
	Applied int
	Pending []MigrationFile
}

// New creates a new Migrator on an open database handle
func New(db *sql.DB, opts Options, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{SchemaName: opts.SchemaName})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL(opts.MigrationsPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return newMigrator(m, opts.MigrationsPath, logger), nil
}

// NewFromURL creates a Migrator from a database URL
func NewFromURL(databaseURL, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	m, err := migrate.New(sourceURL(migrationsPath), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return newMigrator(m, migrationsPath, logger), nil
}

func newMigrator(m *migrate.Migrate, path string, logger *zap.Logger) *Migrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("migrate")
	m.Log = migrateLog{logger.Sugar()}
	return &Migrator{migrate: m, path: path, logger: logger}
}

func sourceURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}

// migrateLog forwards golang-migrate's progress lines to zap at debug.
type migrateLog struct {
	s *zap.SugaredLogger
}

func (l migrateLog) Printf(format string, v ...any) {
	l.s.Debugf(strings.TrimRight(format, "\n"), v...)
}

func (l migrateLog) Verbose() bool {
	return l.s.Desugar().Core().Enabled(zap.DebugLevel)
}

// apply runs one golang-migrate action. ErrNoChange is success, and a
// dirty database is reported with the version to force after repair.
func (m *Migrator) apply(action string, run func() error, fields ...zap.Field) error {
	log := m.logger.With(zap.String("action", action))
	log.Info("Migrating", fields...)

	err := run()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("Nothing to migrate")
		return nil
	case err != nil:
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			return fmt.Errorf("migrate %s: database is dirty at version %d, fix it and run force: %w",
				action, dirty.Version, err)
		}
		return fmt.Errorf("migrate %s: %w", action, err)
	}

	version, isDirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info("Migrated", zap.Uint("version", version), zap.Bool("dirty", isDirty))
	return nil
}

// Up runs all pending migrations
func (m *Migrator) Up() error {
	return m.apply("up", m.migrate.Up)
}

// Down rolls back every applied migration
func (m *Migrator) Down() error {
	return m.apply("down", m.migrate.Down)
}

// Steps applies n migrations; negative n rolls back
func (m *Migrator) Steps(n int) error {
	return m.apply("step", func() error { return m.migrate.Steps(n) }, zap.Int("steps", n))
}

// GoTo migrates up or down to version
func (m *Migrator) GoTo(version uint) error {
	return m.apply("goto", func() error { return m.migrate.Migrate(version) }, zap.Uint("target_version", version))
}

// Version returns the current migration version, 0 when nothing is applied
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Status compares the applied version with the files on disk
func (m *Migrator) Status() (Status, error) {
	version, dirty, err := m.Version()
	if err != nil {
		return Status{}, err
	}
	files, err := ListMigrations(m.path)
	if err != nil {
		return Status{}, err
	}
	return statusOf(version, dirty, files)
}

func statusOf(version uint, dirty bool, files []MigrationFile) (Status, error) {
	st := Status{Version: version, Dirty: dirty}
	for _, mf := range files {
		v, err := strconv.ParseUint(mf.Version, 10, 64)
		if err != nil {
			return Status{}, fmt.Errorf("migration %s: invalid version: %w", mf.BaseName(), err)
		}
		if uint64(version) >= v {
			st.Applied++
		} else {
			st.Pending = append(st.Pending, mf)
		}
	}
	return st, nil
}

// Force sets the migration version without running migrations.
// Only for clearing a dirty state after a failed migration was fixed by hand.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}

	m.logger.Info("Migration version forced", zap.Int("version", version))
	return nil
}

// Close closes the migrator and releases resources
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
