// Package fsys defines the filesystem surface the organizer touches.
// Production code uses OSFS; tests use MemFS to exercise the pass
// without a real directory.
package fsys

import (
	"os"
)

// FS abstracts the file system operations used by the organize pass.
type FS interface {
	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]os.DirEntry, error)

	// Stat returns file info for the named file.
	Stat(name string) (os.FileInfo, error)

	// MkdirAll creates a directory path and all missing parents. It is
	// a no-op when the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// OSFS implements FS using the real os package
type OSFS struct{}

func (OSFS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (OSFS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
