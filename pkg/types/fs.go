package types

import "io/fs"

// FS abstracts the filesystem operations pystack needs. The production
// implementation lives in pkg/filesystem; tests use the in-memory
// implementation from pkg/testutil.
type FS interface {
	// Stat returns file info for the given path.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the entire file content.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file, replacing it atomically. The file
	// is either fully written or left untouched.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Rename moves a file, replacing the destination if it exists.
	Rename(oldpath, newpath string) error
}
