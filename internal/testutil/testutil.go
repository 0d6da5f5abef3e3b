// Package testutil provides filesystem fixtures for scanner and cleaner
// tests. All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture is a temporary directory tree the tests build projects in.
type Fixture struct {
	T    *testing.T
	Root string
}

// NewFixture creates an empty fixture rooted in a temp directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, Root: t.TempDir()}
}

// Path returns the absolute path for a relative path within the fixture.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.Root, relPath)
}

// CreateFile creates a file of the given size, creating parent directories
// as needed, and returns its absolute path.
func (f *Fixture) CreateFile(relPath string, size int) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, make([]byte, size), 0o644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateDir creates a directory (and parents) and returns its absolute path.
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(fullPath, 0o755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateRustProject lays out a Cargo project with a target directory holding
// size bytes of build output. Returns the target path.
func (f *Fixture) CreateRustProject(relPath string, size int) string {
	f.T.Helper()

	f.CreateFile(filepath.Join(relPath, "Cargo.toml"), 64)
	f.CreateFile(filepath.Join(relPath, "src", "main.rs"), 32)
	f.CreateFile(filepath.Join(relPath, "target", "debug", "app"), size)
	return f.Path(filepath.Join(relPath, "target"))
}

// CreateNodeProject lays out an npm project with a node_modules directory
// holding size bytes. Returns the node_modules path.
func (f *Fixture) CreateNodeProject(relPath string, size int) string {
	f.T.Helper()

	f.CreateFile(filepath.Join(relPath, "package.json"), 64)
	f.CreateFile(filepath.Join(relPath, "node_modules", "lodash", "index.js"), size)
	return f.Path(filepath.Join(relPath, "node_modules"))
}

// CreatePythonProject lays out a Python project with a __pycache__ directory
// holding size bytes. Returns the __pycache__ path.
func (f *Fixture) CreatePythonProject(relPath string, size int) string {
	f.T.Helper()

	f.CreateFile(filepath.Join(relPath, "main.py"), 32)
	f.CreateFile(filepath.Join(relPath, "__pycache__", "main.cpython-312.pyc"), size)
	return f.Path(filepath.Join(relPath, "__pycache__"))
}

// CreateSwiftPackage lays out a Swift package: a Package.swift manifest
// alongside .build output of the given size. Returns the package root path.
func (f *Fixture) CreateSwiftPackage(relPath string, size int) string {
	f.T.Helper()

	f.CreateFile(filepath.Join(relPath, "Package.swift"), 64)
	f.CreateFile(filepath.Join(relPath, ".build", "debug", "app"), size)
	f.CreateFile(filepath.Join(relPath, "Package.resolved"), 16)
	return f.Path(relPath)
}

// Exists reports whether the path exists.
func (f *Fixture) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
