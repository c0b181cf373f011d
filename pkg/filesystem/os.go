package filesystem

import (
	"io/fs"
	"os"

	"github.com/google/renameio/v2"

	"github.com/pystack-sh/pystack/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes via a temp file in the target directory followed by
// a rename, so readers never observe a partially written artifact.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
