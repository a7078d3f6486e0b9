// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session binds an output folder and its pay statement store for the
// lifetime of one command. Every operation opens its own store connection
// and closes it before returning.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/paysplit/internal/store"
	"github.com/pdiddy/paysplit/pkg/types"
)

// ErrArtifactNotFound is returned when a recorded filename has no file in
// the output folder.
var ErrArtifactNotFound = errors.New("artifact not found")

// InitStatus reports what Init found on disk.
type InitStatus string

const (
	StoreCreated InitStatus = "created"
	StoreFound   InitStatus = "found"
)

// Session holds the output folder and store path. The zero value is not
// usable; build one with New.
type Session struct {
	outputDir string
	storePath string
}

// New returns a session rooted at outputDir. An empty outputDir uses
// types.DefaultOutputDir relative to the working directory.
func New(outputDir string) Session {
	if outputDir == "" {
		outputDir = types.DefaultOutputDir
	}
	return Session{
		outputDir: outputDir,
		storePath: filepath.Join(outputDir, store.DBFile),
	}
}

// OutputDir returns the folder holding the per-page PDFs.
func (s Session) OutputDir() string { return s.outputDir }

// StorePath returns the path of the SQLite store.
func (s Session) StorePath() string { return s.storePath }

// Init creates the output folder and the store schema. It reports whether
// the store file already existed.
func (s Session) Init(ctx context.Context) (InitStatus, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", s.outputDir, err)
	}

	status := StoreCreated
	if _, err := os.Stat(s.storePath); err == nil {
		status = StoreFound
	}

	if err := s.EnsureSchema(ctx); err != nil {
		return "", err
	}
	return status, nil
}

// EnsureSchema opens the store, creating missing tables, and closes it.
func (s Session) EnsureSchema(ctx context.Context) error {
	return s.withStore(ctx, func(*store.Store) error { return nil })
}

// UpsertRecord records one pay statement. See store.Store.UpsertRecord.
func (s Session) UpsertRecord(ctx context.Context, name, date, filename string) (types.UpsertOutcome, error) {
	var out types.UpsertOutcome
	err := s.withStore(ctx, func(st *store.Store) error {
		var err error
		out, err = st.UpsertRecord(ctx, name, date, filename)
		return err
	})
	if err != nil && out.Status == "" {
		out = types.UpsertOutcome{Status: types.UpsertFailed, Reason: err.Error()}
	}
	return out, err
}

// UpdateContact overwrites an individual's contact fields. It reports false
// when no individual has exactly that name.
func (s Session) UpdateContact(ctx context.Context, name, address, phone, email string) (bool, error) {
	var found bool
	err := s.withStore(ctx, func(st *store.Store) error {
		var err error
		found, err = st.UpdateContact(ctx, name, address, phone, email)
		return err
	})
	return found, err
}

// ListIndividuals returns all individuals in insertion order.
func (s Session) ListIndividuals(ctx context.Context) ([]types.Individual, error) {
	var out []types.Individual
	err := s.withStore(ctx, func(st *store.Store) error {
		var err error
		out, err = st.ListIndividuals(ctx)
		return err
	})
	return out, err
}

// IndividualNames returns all individual names sorted by name.
func (s Session) IndividualNames(ctx context.Context) ([]string, error) {
	var out []string
	err := s.withStore(ctx, func(st *store.Store) error {
		var err error
		out, err = st.IndividualNames(ctx)
		return err
	})
	return out, err
}

// ListPayRecords returns the pay statements of one individual.
func (s Session) ListPayRecords(ctx context.Context, individualID int64) ([]types.PayRecord, error) {
	var out []types.PayRecord
	err := s.withStore(ctx, func(st *store.Store) error {
		var err error
		out, err = st.ListPayRecords(ctx, individualID)
		return err
	})
	return out, err
}

// ArtifactPath resolves a recorded filename to its path in the output
// folder. Existence is checked on every call.
func (s Session) ArtifactPath(filename string) (string, error) {
	path := filepath.Join(s.outputDir, filename)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return "", fmt.Errorf("checking artifact %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrArtifactNotFound, path)
	}
	return path, nil
}

func (s Session) withStore(ctx context.Context, fn func(*store.Store) error) error {
	if s.storePath == "" {
		return errors.New("session not initialized")
	}
	st, err := store.Open(ctx, s.storePath)
	if err != nil {
		return fmt.Errorf("opening store %s: %w", s.storePath, err)
	}
	defer st.Close()
	return fn(st)
}
