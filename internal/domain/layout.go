// Package domain implements harness generation: target discovery, definition
// and declaration lookup, header flattening, visibility rewriting and the
// synthesis of the per-target wrapper files.
package domain

import (
	"path/filepath"
	"strings"

	"cutgen.dev/pkg/cutgen/internal/domain/csource"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// Layout names the directories of a project tree.
type Layout struct {
	// ModulesDir is the directory under the project root holding one
	// sub-directory per module.
	ModulesDir       string
	PlatformDir      string
	ConfigurationDir string
	UnitTestsDir     string
	// TargetPrefix marks unit-test directories; the rest of the name is the
	// function under test.
	TargetPrefix string
	// OutputDir is the directory inside each target that the generator owns.
	OutputDir  string
	KnownTypes csource.TypeSet
}

// DefaultLayout returns the conventional project layout.
func DefaultLayout() Layout {
	return Layout{
		ModulesDir:       "code",
		PlatformDir:      "platform",
		ConfigurationDir: "configuration",
		UnitTestsDir:     "unitTests",
		TargetPrefix:     "TEST_",
		OutputDir:        "src",
		KnownTypes:       csource.DefaultKnownTypes(),
	}
}

// WithDefaults fills every empty field from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	def := DefaultLayout()

	fill := func(v *string, d string) {
		if strings.TrimSpace(*v) == "" {
			*v = d
		}
	}

	fill(&l.ModulesDir, def.ModulesDir)
	fill(&l.PlatformDir, def.PlatformDir)
	fill(&l.ConfigurationDir, def.ConfigurationDir)
	fill(&l.UnitTestsDir, def.UnitTestsDir)
	fill(&l.TargetPrefix, def.TargetPrefix)
	fill(&l.OutputDir, def.OutputDir)

	if len(l.KnownTypes) == 0 {
		l.KnownTypes = def.KnownTypes
	}

	return l
}

// SourceSubtrees returns the module sub-directories searched for sources, in
// traversal order.
func (l Layout) SourceSubtrees() []string {
	return []string{l.PlatformDir, l.ConfigurationDir}
}

// ModulesRoot returns the modules directory of a project root.
func (l Layout) ModulesRoot(root m.Path) m.Path {
	return m.Path(filepath.Join(string(root), l.ModulesDir))
}

// TargetFunction returns the function named by a unit-test directory, or ""
// when the directory is not a target.
func (l Layout) TargetFunction(dirName string) string {
	if !strings.HasPrefix(dirName, l.TargetPrefix) {
		return ""
	}

	return dirName[len(l.TargetPrefix):]
}
