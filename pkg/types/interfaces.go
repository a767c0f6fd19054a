package types

import "io/fs"

// FS is the storage port used by the generator. Implementations must make
// WriteFile create missing parent directories. The OS implementation lives
// in pkg/filesystem; pkg/testutil provides an in-memory one for tests.
type FS interface {
	// Exists reports whether a file or directory exists at name.
	Exists(name string) bool

	// ReadFile returns the contents of the file at name.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to name, creating parent directories as needed.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Glob returns the paths matching pattern (doublestar syntax).
	Glob(pattern string) ([]string, error)
}

// Reporter receives file-level notifications during a generation run.
// Calls are purely observational and never affect control flow.
type Reporter interface {
	Added(path string)
	Overwritten(path string)
	SkippedExisting(path string)
	Injected(path string)
}
