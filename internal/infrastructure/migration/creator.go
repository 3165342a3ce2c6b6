package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

var (
	upTemplate = template.Must(template.New("up").Parse(`-- Migration: {{.Name}}
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

-- Write your UP migration SQL here.
-- Run "schemactl generate" afterwards so the declared catalog follows the schema.

`))

	downTemplate = template.Must(template.New("down").Parse(`-- Migration: {{.Name}} (Rollback)
-- Created: {{.Timestamp}}
-- Description: Rollback for {{.Description}}

-- Write your DOWN migration SQL here

`))
)

// MigrationFile represents a migration file pair
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string // empty when the rollback file is missing
}

// HasDown reports whether the migration can be rolled back
func (mf MigrationFile) HasDown() bool {
	return mf.DownPath != ""
}

// BaseName returns the version-prefixed file stem, e.g. 20250301090000_crm_schema
func (mf MigrationFile) BaseName() string {
	return mf.Version + "_" + mf.Name
}

// CreateMigration creates a new migration file pair versioned by the given time.
// Existing files are never overwritten.
func CreateMigration(migrationsDir, name, description string, at time.Time) (*MigrationFile, error) {
	stem := sanitizeName(name)
	if stem == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}

	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	at = at.UTC()
	version := at.Format("20060102150405")

	mf := &MigrationFile{
		Version:     version,
		Name:        stem,
		Description: description,
		Timestamp:   at.Format(time.RFC3339),
		UpPath:      filepath.Join(migrationsDir, version+"_"+stem+upSuffix),
		DownPath:    filepath.Join(migrationsDir, version+"_"+stem+downSuffix),
	}
	if mf.Description == "" {
		mf.Description = name
	}

	if err := createMigrationFile(mf.UpPath, upTemplate, mf); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := createMigrationFile(mf.DownPath, downTemplate, mf); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}

	return mf, nil
}

func createMigrationFile(path string, tmpl *template.Template, data *MigrationFile) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// sanitizeName converts a migration name to a safe file name format
func sanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			result = append(result, c)
		case c >= 'A' && c <= 'Z':
			result = append(result, c+'a'-'A')
		case c == ' ' || c == '-' || c == '_':
			if len(result) > 0 && result[len(result)-1] != '_' {
				result = append(result, '_')
			}
		}
	}
	return strings.TrimSuffix(string(result), "_")
}

// ListMigrations returns the migrations found in a directory ordered by version.
// A missing directory yields no migrations; a rollback file without its up
// file is an error.
func ListMigrations(migrationsDir string) ([]MigrationFile, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []MigrationFile{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	byBase := make(map[string]*MigrationFile)
	var orphans []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if base, ok := strings.CutSuffix(name, upSuffix); ok {
			mf, ok := splitBaseName(base)
			if !ok {
				continue
			}
			if existing, found := byBase[base]; found {
				mf.DownPath = existing.DownPath
			}
			mf.UpPath = filepath.Join(migrationsDir, name)
			byBase[base] = &mf
		} else if base, ok := strings.CutSuffix(name, downSuffix); ok {
			if existing, found := byBase[base]; found {
				existing.DownPath = filepath.Join(migrationsDir, name)
				continue
			}
			mf, ok := splitBaseName(base)
			if !ok {
				continue
			}
			mf.DownPath = filepath.Join(migrationsDir, name)
			byBase[base] = &mf
		}
	}

	migrations := make([]MigrationFile, 0, len(byBase))
	for base, mf := range byBase {
		if mf.UpPath == "" {
			orphans = append(orphans, base)
			continue
		}
		migrations = append(migrations, *mf)
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return nil, fmt.Errorf("rollback without up migration: %s", strings.Join(orphans, ", "))
	}

	sort.Slice(migrations, func(i, j int) bool {
		if migrations[i].Version != migrations[j].Version {
			return migrations[i].Version < migrations[j].Version
		}
		return migrations[i].Name < migrations[j].Name
	})
	return migrations, nil
}

// splitBaseName parses "<digits>_<name>" as golang-migrate does
func splitBaseName(base string) (MigrationFile, bool) {
	version, name, ok := strings.Cut(base, "_")
	if !ok || version == "" || name == "" {
		return MigrationFile{}, false
	}
	for _, c := range version {
		if c < '0' || c > '9' {
			return MigrationFile{}, false
		}
	}
	return MigrationFile{Version: version, Name: name}, true
}
