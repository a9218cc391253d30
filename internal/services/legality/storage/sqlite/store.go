// Package sqlite provides a SQLite-backed learnset storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/legality/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/legality/internal/services/legality/storage"
	"github.com/louisbranch/legality/internal/services/legality/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists learnset entries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.LearnsetStore = (*Store)(nil)

// Open opens a SQLite learnset store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutLearnsetEntries upserts entries in one transaction.
func (s *Store) PutLearnsetEntries(ctx context.Context, entries []storage.LearnsetEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Group) == "" {
			return fmt.Errorf("entry %d: learn group is required", i)
		}
		if strings.TrimSpace(entry.Method) == "" {
			return fmt.Errorf("entry %d: method is required", i)
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin learnset transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO learnset_entries (species, form, move, learn_group, method, level)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (species, form, move, learn_group, method) DO UPDATE SET level = excluded.level`,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare learnset upsert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(
			ctx,
			int64(entry.Species),
			int64(entry.Form),
			int64(entry.Move),
			strings.TrimSpace(entry.Group),
			strings.TrimSpace(entry.Method),
			int64(entry.Level),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("put learnset entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit learnset entries: %w", err)
	}
	return nil
}

// ListLearnsetEntries lists entries ordered by group, species, form, and move.
func (s *Store) ListLearnsetEntries(ctx context.Context, group string) ([]storage.LearnsetEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT species, form, move, learn_group, method, level FROM learnset_entries`
	var args []any
	if group = strings.TrimSpace(group); group != "" {
		query += ` WHERE learn_group = ?`
		args = append(args, group)
	}
	query += ` ORDER BY learn_group, species, form, move, method`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list learnset entries: %w", err)
	}
	defer rows.Close()

	var entries []storage.LearnsetEntry
	for rows.Next() {
		var (
			species, form, move, level int64
			entry                      storage.LearnsetEntry
		)
		if err := rows.Scan(&species, &form, &move, &entry.Group, &entry.Method, &level); err != nil {
			return nil, fmt.Errorf("scan learnset entry: %w", err)
		}
		entry.Species = uint16(species)
		entry.Form = uint8(form)
		entry.Move = uint16(move)
		entry.Level = uint8(level)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learnset entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, storage.ErrNotFound
	}
	return entries, nil
}
