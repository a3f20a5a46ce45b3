package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are cleaned with filepath.Clean before lookup.
type MockFileSystem struct {
	mu     sync.Mutex
	files  map[string]mockFile
	writes []string

	// WriteErr, when set, is returned by every WriteFile call.
	WriteErr error
	// ReadErr, when set, is returned by every ReadFile call.
	ReadErr error
}

type mockFile struct {
	data []byte
	perm os.FileMode
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string]mockFile)}
}

// SetFile stores data at path with mode 0644.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.SetFileWithPerm(p, data, 0o644)
}

// SetFileWithPerm stores data at path with the given mode.
func (m *MockFileSystem) SetFileWithPerm(p string, data []byte, perm os.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(p)] = mockFile{data: append([]byte(nil), data...), perm: perm}
}

// GetFile returns the stored contents of path.
func (m *MockFileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[filepath.Clean(p)]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), f.data...), true
}

// Writes returns the paths passed to WriteFile, in call order.
func (m *MockFileSystem) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.GetFile(p)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.writes = append(m.writes, filepath.Clean(p))
	m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.SetFileWithPerm(p, data, perm)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[filepath.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: filepath.Base(p), size: int64(len(f.data)), mode: f.perm}, nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() os.FileMode  { return i.mode }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return false }
func (i mockFileInfo) Sys() any           { return nil }
