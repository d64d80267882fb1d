// Package adapter contains UI and infrastructure adapters for the cutgen CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a project tree and writing harness directories. It
// hides direct `os` access so the workflow logic can be tested against an
// in-memory filesystem.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order. Errors reported for
	// unreadable entries are passed to fn, which decides whether to continue.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadDir lists the entries of a directory sorted by name.
	ReadDir(path m.Path) ([]os.FileInfo, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// ClearDir makes path an existing, empty directory.
	ClearDir(path m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with an afero filesystem: the
// OS filesystem in production, a memory or read-only one in tests and checks.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter over the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter over the given afero filesystem.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// ReadOnly returns an adapter sharing the same files that rejects writes.
func (a *LocalSourceFSAdapter) ReadOnly() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: afero.NewReadOnlyFs(a.fs)}
}

// Walk iterates over everything under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// ReadDir lists a directory sorted by file name.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	ok, err := afero.IsDir(a.fs, string(path))
	return err == nil && ok
}

// ClearDir creates path if needed and removes everything inside it.
func (a *LocalSourceFSAdapter) ClearDir(path m.Path) error {
	dir := string(path)

	info, err := a.fs.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return a.fs.MkdirAll(dir, 0o750)
	case err != nil:
		return err
	case !info.IsDir():
		if err := a.fs.Remove(dir); err != nil {
			return err
		}

		return a.fs.MkdirAll(dir, 0o750)
	}

	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := a.RemoveAll(m.Path(filepath.Join(dir, entry.Name()))); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return a.fs.RemoveAll(string(path))
}

// WriteFile writes content to a file with the given permissions, creating
// missing parent directories.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := a.fs.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return afero.WriteFile(a.fs, string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
