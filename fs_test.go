package recordstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yaml")

	require.NoError(t, replaceFile(path, []byte("[]\n"), Sync))
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, replaceFile(path, []byte("- id: 1\n  text: a\n"), Buffered))

	content, err := readFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- id: 1\n  text: a\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReplaceFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "records.yaml")

	assert.Error(t, replaceFile(path, []byte("[]\n"), Sync))
	assert.NoFileExists(t, path)
}

func TestReplaceFileKeepsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	link := filepath.Join(dir, "records.yaml")

	require.NoError(t, os.WriteFile(target, []byte("[]\n"), 0644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, replaceFile(link, []byte("- id: 1\n  text: a\n"), Sync))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "the link must not be replaced by a regular file")

	content, err := readFile(target)
	require.NoError(t, err)
	assert.Equal(t, "- id: 1\n  text: a\n", string(content))
}
