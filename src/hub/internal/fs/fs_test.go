package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp")
	fs := New()
	dir, err := fs.UserConfigDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		filePath := path.Join(dir, "settings.json")
		require.NoError(t, os.WriteFile(filePath, []byte("{}"), 0644))

		fs := New()
		result, err := fs.FileExists(filePath)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("is a directory", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.FileExists(dir)
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.FileExists(path.Join(dir, "missing.json"))
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestReadWriteRename(t *testing.T) {
	dir := t.TempDir()
	fs := New()

	tmp, err := fs.TempFile(dir, "settings-*.json")
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	err = fs.WriteFile(tmp.Name(), []byte(`{"installations":[]}`))
	assert.NoError(t, err)

	final := path.Join(dir, "settings.json")
	err = fs.Rename(tmp.Name(), final)
	assert.NoError(t, err)

	data, err := fs.ReadFile(final)
	assert.NoError(t, err)
	assert.Equal(t, `{"installations":[]}`, string(data))

	assert.NoError(t, fs.Remove(final))
}
