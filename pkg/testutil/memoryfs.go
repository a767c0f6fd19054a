package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// MemoryFS implements the types.FS storage port with in-memory storage.
// It tracks write counts so idempotence tests can assert that a second
// generation run produced no observable writes.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte

	writeCount int
}

// NewMemoryFS creates an empty in-memory filesystem.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{files: make(map[string][]byte)}
}

func (m *MemoryFS) normalize(name string) string {
	return filepath.Clean(name)
}

// Exists reports whether name holds a file or is a prefix directory of one.
func (m *MemoryFS) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = m.normalize(name)
	if _, ok := m.files[name]; ok {
		return true
	}
	prefix := name + string(filepath.Separator)
	for path := range m.files {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[m.normalize(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[m.normalize(name)] = stored
	m.writeCount++
	return nil
}

func (m *MemoryFS) Glob(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []string
	for path := range m.files {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// WriteCount returns the number of WriteFile calls so far.
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

// Snapshot returns a copy of the full path -> content map.
func (m *MemoryFS) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := make(map[string]string, len(m.files))
	for path, data := range m.files {
		snap[path] = string(data)
	}
	return snap
}

// MustContent returns the content at name or an empty string.
func (m *MemoryFS) MustContent(name string) string {
	data, err := m.ReadFile(name)
	if err != nil {
		return ""
	}
	return string(data)
}
