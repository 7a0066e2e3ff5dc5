package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasteops/mealweek/pkg/types"
)

// setupStore opens a fresh store in a temp directory.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(types.Config{DataDir: filepath.Join(tmpDir, "nested", "data")})
	require.NoError(t, err)
	defer s.Close()

	// Database file created, including missing parent directories.
	_, err = os.Stat(filepath.Join(tmpDir, "nested", "data", types.DefaultDBFileName))
	assert.NoError(t, err)
}

func TestOpen_EmptyDataDir(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestOpen_Unavailable(t *testing.T) {
	// A regular file where the data dir should be makes MkdirAll fail.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Open(types.Config{DataDir: blocker})
	assert.ErrorIs(t, err, types.ErrStorageUnavailable)
}

func TestOpen_ReopenPreservesData(t *testing.T) {
	dataDir := t.TempDir()

	s, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	id, err := s.AddWeek("Week 1", nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Second open must not error on existing tables or lose rows.
	s, err = Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	defer s.Close()

	weeks, err := s.ListWeeks()
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, id, weeks[0].WeekID)
	assert.Equal(t, "Week 1", weeks[0].Name)
}

func TestConfig_DBFileDefault(t *testing.T) {
	cfg := types.Config{DataDir: "somewhere"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.DefaultDBFileName, cfg.DBFile)
}
