// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists individuals and their pay statements in SQLite.
//
// The table and column names are read by external tools and must not change.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paysplit/pkg/types"
)

// DBFile is the store file name inside the output folder.
const DBFile = "pdf_data.db"

// timestampLayout is the extraction_date column format.
const timestampLayout = "2006-01-02 15:04:05"

// Store is an open connection to the pay statement database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	source, err := dsn(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection: the foreign key pragma is per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// dsn builds an absolute file: URI for path. The path is escaped so a '?'
// or '#' in a folder name cannot cut off the connection parameters.
func dsn(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving database path %s: %w", path, err)
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "_foreign_keys=on&_busy_timeout=5000",
	}
	return u.String(), nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates both tables if they are absent. It is safe to call
// any number of times.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS individuals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE,
			address TEXT DEFAULT '',
			phone_number TEXT DEFAULT '',
			email TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS pay_statements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			individual_id INTEGER,
			date TEXT,
			filename TEXT,
			extraction_date TEXT,
			FOREIGN KEY (individual_id) REFERENCES individuals(id),
			UNIQUE(individual_id, date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// UpsertRecord records one pay statement. The individual is created on
// first sight and reused afterwards; both steps share one transaction.
// A pay statement that already exists for the same individual and date is
// left untouched and reported as UpsertDuplicate with a nil error.
func (s *Store) UpsertRecord(ctx context.Context, name, date, filename string) (types.UpsertOutcome, error) {
	out, err := s.upsert(ctx, name, date, filename)
	if err != nil {
		return types.UpsertOutcome{Status: types.UpsertFailed, Reason: err.Error()}, err
	}
	return out, nil
}

func (s *Store) upsert(ctx context.Context, name, date, filename string) (types.UpsertOutcome, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO individuals (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name,
	); err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("inserting individual %q: %w", name, err)
	}

	var individualID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM individuals WHERE name = ?`, name,
	).Scan(&individualID); err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("resolving individual %q: %w", name, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO pay_statements (individual_id, date, filename, extraction_date)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(individual_id, date) DO NOTHING`,
		individualID, date, filename, s.now().Format(timestampLayout),
	)
	if err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("inserting pay statement %s: %w", filename, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("checking pay statement insert: %w", err)
	}

	out := types.UpsertOutcome{IndividualID: individualID}
	if n == 0 {
		out.Status = types.UpsertDuplicate
	} else {
		out.Status = types.UpsertInserted
		if out.RecordID, err = res.LastInsertId(); err != nil {
			return types.UpsertOutcome{}, fmt.Errorf("reading pay statement id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.UpsertOutcome{}, fmt.Errorf("committing transaction: %w", err)
	}
	return out, nil
}

// UpdateContact overwrites the contact fields of the individual named
// exactly name. It reports false, and creates nothing, when no such
// individual exists.
func (s *Store) UpdateContact(ctx context.Context, name, address, phone, email string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE individuals SET address = ?, phone_number = ?, email = ? WHERE name = ?`,
		address, phone, email, name,
	)
	if err != nil {
		return false, fmt.Errorf("updating contact for %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking contact update: %w", err)
	}
	return n > 0, nil
}
