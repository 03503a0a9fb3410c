// Package history keeps an audit log of stored tone files in SQLite.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one persisted tone file.
type Record struct {
	ID          string
	Digits      string
	DurationSec float64
	ByteSize    int64
	CreatedAt   time.Time
}

// ErrNotFound is returned when no record exists for an id.
var ErrNotFound = errors.New("history: record not found")

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS tones (
		id           TEXT PRIMARY KEY,
		digits       TEXT NOT NULL,
		duration_sec REAL NOT NULL,
		byte_size    INTEGER NOT NULL,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Insert records one stored file. CreatedAt is set here if zero.
func (s *Store) Insert(rec Record) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO tones (id, digits, duration_sec, byte_size, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Digits, rec.DurationSec, rec.ByteSize, created,
	)
	if err != nil {
		return fmt.Errorf("insert tone record: %w", err)
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.QueryRow(
		`SELECT id, digits, duration_sec, byte_size, created_at FROM tones WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Digits, &rec.DurationSec, &rec.ByteSize, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get tone record: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *Store) List(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, digits, duration_sec, byte_size, created_at FROM tones ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list tone records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Digits, &rec.DurationSec, &rec.ByteSize, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tone record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}
