package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MemoryFS implements the types.FS interface with in-memory storage.
// It supports error injection per path so tests can exercise
// filesystem failure handling.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*memEntry

	// errorPaths maps a path to the error every operation on it returns.
	errorPaths map[string]error

	writeCount int
}

// memEntry represents a file or directory in memory
type memEntry struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string]*memEntry),
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every subsequent operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

// WriteCount returns how many WriteFile calls succeeded, useful for
// asserting that dry runs mutate nothing
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

// Paths returns all file and directory paths, sorted, for snapshot
// comparisons in tests
func (m *MemoryFS) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkError(name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	entry, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}

	return &memFileInfo{name: filepath.Base(name), entry: entry}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkError(name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}

	entry, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	if entry.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}

	content := make([]byte, len(entry.content))
	copy(content, entry.content)
	return content, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError(name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	name = filepath.Clean(name)
	if entry, ok := m.files[name]; ok && entry.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[name] = &memEntry{content: content, mode: perm, modTime: time.Now()}
	m.writeCount++
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError(path); err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}

	path = filepath.Clean(path)
	for p := path; p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		if entry, ok := m.files[p]; ok {
			if !entry.isDir {
				return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
			}
			continue
		}
		m.files[p] = &memEntry{mode: perm | fs.ModeDir, modTime: time.Now(), isDir: true}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError(oldpath); err != nil {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: err}
	}
	if err := m.checkError(newpath); err != nil {
		return &fs.PathError{Op: "rename", Path: newpath, Err: err}
	}

	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)

	entry, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}

	m.files[newpath] = entry
	delete(m.files, oldpath)
	return nil
}

// memFileInfo implements fs.FileInfo for in-memory entries
type memFileInfo struct {
	name  string
	entry *memEntry
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return int64(len(fi.entry.content)) }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.entry.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.entry.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.entry.isDir }
func (fi *memFileInfo) Sys() interface{}   { return nil }
