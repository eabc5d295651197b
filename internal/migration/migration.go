package migration

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Migrator applies SQL schema files to a database and records which ones
// have run in schema_migrations.
type Migrator struct {
	DB *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// InitializeSchema creates the bookkeeping table if it doesn't exist
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Applied returns the versions already recorded.
func (m *Migrator) Applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.DB.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// Pending lists the *.sql files under dir that have not been applied, in
// lexical order. The file name without extension is the version.
func (m *Migrator) Pending(ctx context.Context, fsys fs.FS, dir string) ([]string, error) {
	applied, err := m.Applied(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var pending []string
	for _, f := range files {
		if !applied[version(f)] {
			pending = append(pending, f)
		}
	}
	return pending, nil
}

// Apply runs every pending file in a single transaction. Nothing is
// recorded unless all of them succeed.
func (m *Migrator) Apply(ctx context.Context, fsys fs.FS, dir string) ([]string, error) {
	if err := m.InitializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	pending, err := m.Pending(ctx, fsys, dir)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	applied := make([]string, 0, len(pending))
	for _, f := range pending {
		body, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", f, err)
		}
		v := version(f)
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, v); err != nil {
			return nil, fmt.Errorf("failed to record %s: %w", v, err)
		}
		applied = append(applied, v)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return applied, nil
}

func version(file string) string {
	return strings.TrimSuffix(path.Base(file), ".sql")
}
