package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	chunk := []byte(strings.Repeat("x", 700*1024))
	for i := 0; i < 5; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), LogFileName+".") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)

	info, err := os.Stat(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewLogRotator(t.TempDir(), 0, 1)
	assert.Error(t, err)
}

func TestLogRotator_AppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LogFileName), []byte("old\n"), 0o600))

	r, err := NewLogRotator(dir, 1, 1)
	require.NoError(t, err)
	_, err = r.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}
