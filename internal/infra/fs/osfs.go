package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/djherbis/times"
	"github.com/karrick/godirwalk"
)

// ErrSameFile is returned by CopyFile when dst already is src.
var ErrSameFile = errors.New("source and destination are the same file")

// OSFS is the local filesystem.
type OSFS struct {
	// OnWalkError is told about unreadable entries below the walk root;
	// they are skipped.
	OnWalkError func(path string, err error)
}

// callbackError marks errors returned by the WalkFiles callback so the
// error handler stops the walk instead of skipping the entry.
type callbackError struct{ err error }

func (e callbackError) Error() string { return e.err.Error() }
func (e callbackError) Unwrap() error { return e.err }

// WalkFiles visits regular files and symlinks to files in lexical order.
// Symlinked directories are not followed.
func (o OSFS) WalkFiles(root string, fn func(path string) error) error {
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if de.IsSymlink() {
				isDir, err := de.IsDirOrSymlinkToDir()
				if err != nil || isDir {
					return nil
				}
			}
			if err := fn(path); err != nil {
				return callbackError{err: err}
			}
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			var cbErr callbackError
			if errors.As(err, &cbErr) {
				return godirwalk.Halt
			}
			if o.OnWalkError != nil {
				o.OnWalkError(path, err)
			}
			return godirwalk.SkipNode
		},
		Unsorted: false,
	})
	var cbErr callbackError
	if errors.As(err, &cbErr) {
		return cbErr.err
	}
	return err
}

func (OSFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dst, overwriting dst, and carries over the
// permission bits and the access and modification times. It refuses to
// copy a file onto itself.
func (OSFS) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("copy %s to %s: %w", src, dst, ErrSameFile)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := dstFile.Sync(); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}

	ts, err := times.Stat(src)
	if err != nil {
		return err
	}
	return os.Chtimes(dst, ts.AccessTime(), ts.ModTime())
}
