// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paysplit/pkg/types"
)

func testSession(t *testing.T) Session {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "Split"))
	_, err := s.Init(context.Background())
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := New("/tmp/out")
	assert.Equal(t, "/tmp/out", s.OutputDir())
	assert.Equal(t, filepath.Join("/tmp/out", "pdf_data.db"), s.StorePath())

	def := New("")
	assert.Equal(t, types.DefaultOutputDir, def.OutputDir())
	assert.Equal(t, filepath.Join(types.DefaultOutputDir, "pdf_data.db"), def.StorePath())
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "nested", "Split"))

	status, err := s.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, StoreCreated, status)
	assert.FileExists(t, s.StorePath())

	status, err = s.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, StoreFound, status)
}

func TestInitUncreatableOutputDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := New(filepath.Join(blocker, "Split"))
	_, err := s.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}

func TestZeroSession(t *testing.T) {
	var s Session
	_, err := s.ListIndividuals(context.Background())
	assert.Error(t, err)

	out, err := s.UpsertRecord(context.Background(), "Jane Doe", "2024-03-04", "a.pdf")
	assert.Error(t, err)
	assert.Equal(t, types.UpsertFailed, out.Status)
}

func TestRecordLifecycle(t *testing.T) {
	ctx := context.Background()
	s := testSession(t)

	out, err := s.UpsertRecord(ctx, "Jane Doe", "2024-03-04", "Jane Doe 2024-03-04.pdf")
	require.NoError(t, err)
	assert.True(t, out.Inserted())

	out, err = s.UpsertRecord(ctx, "Jane Doe", "2024-03-04", "Jane Doe 2024-03-04.pdf")
	require.NoError(t, err)
	assert.Equal(t, types.UpsertDuplicate, out.Status)

	people, err := s.ListIndividuals(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)

	recs, err := s.ListPayRecords(ctx, people[0].ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Jane Doe 2024-03-04.pdf", recs[0].Filename)

	found, err := s.UpdateContact(ctx, "Jane Doe", "1 Main St", "555-0100", "jane@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.UpdateContact(ctx, "John Smith", "x", "y", "z")
	require.NoError(t, err)
	assert.False(t, found)

	names, err := s.IndividualNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, names)
}

func TestArtifactPath(t *testing.T) {
	s := testSession(t)
	name := "Jane Doe 2024-03-04.pdf"

	_, err := s.ArtifactPath(name)
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	want := filepath.Join(s.OutputDir(), name)
	require.NoError(t, os.WriteFile(want, []byte("%PDF"), 0o644))

	got, err := s.ArtifactPath(name)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Existence is re-checked, not cached.
	require.NoError(t, os.Remove(want))
	_, err = s.ArtifactPath(name)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}
