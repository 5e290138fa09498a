// Package sqlitedoc provides a SQLite-backed style library.
package sqlitedoc

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS styles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	hex        TEXT NOT NULL,
	red        REAL NOT NULL,
	green      REAL NOT NULL,
	blue       REAL NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS styles_created_at ON styles (created_at);`

// Store persists styles in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite style library and ensures the schema exists. Use
// ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateSolidStyle implements ports.StyleDocument.
func (s *Store) CreateSolidStyle(ctx context.Context, name string, rgb color.RGB) (ports.StyleHandle, error) {
	if err := ctx.Err(); err != nil {
		return ports.StyleHandle{}, err
	}
	if s == nil || s.sqlDB == nil {
		return ports.StyleHandle{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return ports.StyleHandle{}, fmt.Errorf("style name is required")
	}

	id := uuid.NewString()
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO styles (id, name, hex, red, green, blue, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		name,
		rgb.Hex(),
		rgb.R,
		rgb.G,
		rgb.B,
		toMillis(s.now()),
	)
	if err != nil {
		return ports.StyleHandle{}, fmt.Errorf("insert style %q: %w", name, err)
	}
	return ports.StyleHandle{ID: id, Name: name}, nil
}

// ListStyles implements ports.StyleLister in creation order.
func (s *Store) ListStyles(ctx context.Context) ([]ports.StyleRecord, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, red, green, blue, created_at FROM styles ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query styles: %w", err)
	}
	defer rows.Close()

	var records []ports.StyleRecord
	for rows.Next() {
		var (
			rec     ports.StyleRecord
			created int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Color.R, &rec.Color.G, &rec.Color.B, &created); err != nil {
			return nil, fmt.Errorf("scan style: %w", err)
		}
		rec.CreatedAt = fromMillis(created)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate styles: %w", err)
	}
	return records, nil
}

var (
	_ ports.StyleDocument = (*Store)(nil)
	_ ports.StyleLister   = (*Store)(nil)
)
