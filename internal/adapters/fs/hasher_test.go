package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clasp/internal/adapters/fs"
)

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jar")
	require.NoError(t, os.WriteFile(path, []byte("artifact content"), 0o644))

	h := fs.NewHasher()

	first, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHasher_HashFile_ContentSensitive(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jar")
	b := filepath.Join(dir, "b.jar")
	require.NoError(t, os.WriteFile(a, []byte("content a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("content b"), 0o644))

	h := fs.NewHasher()

	ha, err := h.HashFile(a)
	require.NoError(t, err)
	hb, err := h.HashFile(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	h := fs.NewHasher()

	_, err := h.HashFile(filepath.Join(t.TempDir(), "missing.jar"))
	assert.Error(t, err)
}
