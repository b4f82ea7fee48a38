package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveWritesBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.mp3")
	data := []byte{0x49, 0x44, 0x33, 0x00, 0xff, 0xfb}

	path, err := NewFileStore("").Save(data, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, string(path))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.mp3")
	require.NoError(t, os.WriteFile(dest, []byte("a much longer previous file"), 0o644))

	_, err := NewFileStore("").Save([]byte("new"), dest)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestFileStore_RelativeToDir(t *testing.T) {
	dir := t.TempDir()

	path, err := NewFileStore(dir).Save([]byte("x"), filepath.Join("nested", "out.mp3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "out.mp3"), string(path))
	assert.FileExists(t, string(path))
}

func TestFileStore_SaveErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewFileStore("").Save([]byte("x"), "")
		assert.Error(t, err)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		_, err := NewFileStore("").Save([]byte("x"), t.TempDir())
		assert.Error(t, err)
	})
}
