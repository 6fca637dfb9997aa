package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/djherbis/times"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestWalkFilesVisitsFilesInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.jpg"), "b")
	writeFile(t, filepath.Join(root, "a", "c.jpg"), "c")
	writeFile(t, filepath.Join(root, "a.jpg"), "a")

	var seen []string
	err := OSFS{}.WalkFiles(root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		seen = append(seen, rel)
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg", filepath.Join("a", "c.jpg")}, seen)
	assert.Equal(t, "b.jpg", seen[len(seen)-1])
}

func TestWalkFilesStopsOnCallbackError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.jpg"), "a")
	writeFile(t, filepath.Join(root, "b.jpg"), "b")

	boom := errors.New("boom")
	calls := 0
	err := OSFS{}.WalkFiles(root, func(path string) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWalkFilesSkipsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "outside.jpg"), "x")
	writeFile(t, filepath.Join(root, "inside.jpg"), "y")
	if err := os.Symlink(other, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	var seen []string
	require.NoError(t, OSFS{}.WalkFiles(root, func(path string) error {
		seen = append(seen, filepath.Base(path))
		return nil
	}))
	assert.Equal(t, []string{"inside.jpg"}, seen)
}

func TestCopyFilePreservesContentAndTimes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "out", "2024-03-15-14-30-22.jpeg")
	writeFile(t, src, "pixels")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))

	stamp := time.Date(2020, 5, 17, 9, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))

	require.NoError(t, OSFS{}.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	ts, err := times.Stat(dst)
	require.NoError(t, err)
	assert.True(t, ts.ModTime().Equal(stamp), "mtime %v", ts.ModTime())

	srcData, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(srcData))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := OSFS{}.CopyFile(filepath.Join(dir, "nope.jpg"), filepath.Join(dir, "out.jpeg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopyFileOntoItself(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jpeg")
	writeFile(t, path, "pixels")
	link := filepath.Join(dir, "b.jpeg")
	require.NoError(t, os.Link(path, link))

	for _, dst := range []string{path, link} {
		err := OSFS{}.CopyFile(path, dst)
		assert.ErrorIs(t, err, ErrSameFile)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}
