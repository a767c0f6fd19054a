package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS_WriteCreatesParents(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	target := filepath.Join(dir, "src", "models", "post.go")

	require.NoError(t, fsys.WriteFile(target, []byte("package models"), 0644))

	data, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package models", string(data))
}

func TestOSFS_Exists(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	target := filepath.Join(dir, "a.txt")

	assert.False(t, fsys.Exists(target))
	require.NoError(t, fsys.WriteFile(target, []byte("x"), 0644))
	assert.True(t, fsys.Exists(target))
	assert.True(t, fsys.Exists(dir), "directories count as existing")
}

func TestOSFS_ReadMissing(t *testing.T) {
	fsys := NewOS()

	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestOSFS_Glob(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	for _, name := range []string{"post.go", "post_test.go", "user.go"} {
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, "models", name), []byte("x"), 0644))
	}

	matches, err := fsys.Glob(filepath.Join(dir, "models", "post*"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = fsys.Glob(filepath.Join(dir, "**", "*.go"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestOSFS_GlobInvalidPattern(t *testing.T) {
	fsys := NewOS()

	_, err := fsys.Glob("src/[unclosed")
	assert.Error(t, err)
}
