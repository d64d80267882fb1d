package domain

import (
	"fmt"
	"log/slog"
	"os"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// DiscoverModules lists the module directories under the project root in
// lexical order. When only is non-empty, modules not named in it are skipped.
func DiscoverModules(fs adapter.SourceFSAdapter, layout Layout, root m.Path, only []string) ([]m.Module, error) {
	modulesRoot := layout.ModulesRoot(root)

	if !fs.IsDir(modulesRoot) {
		return nil, fmt.Errorf("%w: %s", ErrModulesRootNotFound, modulesRoot)
	}

	entries, err := fs.ReadDir(modulesRoot)
	if err != nil {
		return nil, fmt.Errorf("list modules in %s: %w", modulesRoot, err)
	}

	filter := make(map[string]bool, len(only))
	for _, name := range only {
		filter[name] = true
	}

	var modules []m.Module

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if len(filter) > 0 && !filter[entry.Name()] {
			continue
		}

		modules = append(modules, m.Module{
			Name: entry.Name(),
			Path: fs.JoinPath(string(modulesRoot), entry.Name()),
		})
	}

	return modules, nil
}

// DiscoverTargets lists every test target of the given modules: each
// unit-test directory carrying the target prefix and a non-empty function
// name, in lexical order. Modules without a unit-test directory have none.
func DiscoverTargets(fs adapter.SourceFSAdapter, layout Layout, modules []m.Module) []m.TestTarget {
	var targets []m.TestTarget

	for _, module := range modules {
		unitRoot := fs.JoinPath(string(module.Path), layout.UnitTestsDir)
		if !fs.IsDir(unitRoot) {
			slog.Debug("module has no unit tests", "module", module.Name)
			continue
		}

		entries, err := fs.ReadDir(unitRoot)
		if err != nil {
			slog.Warn("Failed to list unit tests", "module", module.Name, "error", err)
			continue
		}

		targets = append(targets, targetsIn(fs, layout, module, unitRoot, entries)...)
	}

	return targets
}

func targetsIn(fs adapter.SourceFSAdapter, layout Layout, module m.Module, unitRoot m.Path, entries []os.FileInfo) []m.TestTarget {
	var targets []m.TestTarget

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		function := layout.TargetFunction(entry.Name())
		if function == "" {
			continue
		}

		targets = append(targets, m.TestTarget{
			Module:   module,
			Function: function,
			Dir:      fs.JoinPath(string(unitRoot), entry.Name()),
		})
	}

	return targets
}

// SourceRoots returns the existing source subtrees of a module in traversal
// order.
func SourceRoots(fs adapter.SourceFSAdapter, layout Layout, module m.Module) []m.Path {
	var roots []m.Path

	for _, sub := range layout.SourceSubtrees() {
		root := fs.JoinPath(string(module.Path), sub)
		if fs.IsDir(root) {
			roots = append(roots, root)
		}
	}

	return roots
}
