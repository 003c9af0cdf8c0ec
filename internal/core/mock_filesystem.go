package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Directories are
// tracked explicitly so ReadDir works on nested trees, and every successful
// write is recorded so tests can assert on I/O churn.
type MockFileSystem struct {
	mu     sync.Mutex
	files  map[string][]byte
	dirs   map[string]bool
	writes []string

	// ReadErrors and WriteErrors inject failures for specific paths.
	ReadErrors  map[string]error
	WriteErrors map[string]error
}

// NewMockFileSystem creates an empty in-memory filesystem rooted at "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string][]byte),
		dirs:        map[string]bool{"/": true},
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

// SetFile stores content at path, creating parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.files[path] = slices.Clone(data)
	m.addParents(path)
}

// SetDir registers an empty directory.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.addParents(path)
}

// File returns the current content at path.
func (m *MockFileSystem) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// Writes returns the paths written since creation or the last ResetWrites.
func (m *MockFileSystem) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.writes)
}

// ResetWrites clears the write log.
func (m *MockFileSystem) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}

func (m *MockFileSystem) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			return
		}
	}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err, ok := m.ReadErrors[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err, ok := m.WriteErrors[path]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}
	if !m.dirs[filepath.Dir(path)] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	m.files[path] = slices.Clone(data)
	m.writes = append(m.writes, path)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.dirs[path] {
		return mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.SetDir(path)
	return nil
}

func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	if m.dirs[path] {
		delete(m.dirs, path)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
}

// ReadDir lists direct children sorted by name, like os.ReadDir.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	seen := make(map[string]os.DirEntry)
	for p, data := range m.files {
		if filepath.Dir(p) == path {
			name := filepath.Base(p)
			seen[name] = fs.FileInfoToDirEntry(mockFileInfo{name: name, size: int64(len(data))})
		}
	}
	for d := range m.dirs {
		if d != path && filepath.Dir(d) == path {
			name := filepath.Base(d)
			seen[name] = fs.FileInfoToDirEntry(mockFileInfo{name: name, dir: true})
		}
	}

	entries := make([]os.DirEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string { return fi.name }
func (fi mockFileInfo) Size() int64  { return fi.size }
func (fi mockFileInfo) Mode() os.FileMode {
	if fi.dir {
		return fs.ModeDir | PermDir
	}
	return PermFile
}
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }
