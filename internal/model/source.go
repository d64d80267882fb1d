// Package model defines the data structures shared by the harness generator.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Ext returns the file name extension, including the dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// Module is a directory grouping a platform subtree, a configuration subtree
// and a unit-test subtree for one logical software component.
type Module struct {
	Name string
	Path Path
}

// TestTarget is a single function requested for isolation, backed by a
// TEST_<function> directory under the module's unit-test subtree.
type TestTarget struct {
	Module   Module
	Function string
	Dir      Path
}

// OutputDir returns the directory the generator owns for this target.
func (t TestTarget) OutputDir(name string) Path {
	return Path(filepath.Join(string(t.Dir), name))
}

// String returns the "<module>: <function>" label used in reports.
func (t TestTarget) String() string {
	return t.Module.Name + ": " + t.Function
}
