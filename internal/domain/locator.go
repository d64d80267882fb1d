package domain

import (
	"fmt"
	"log/slog"
	"os"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/domain/csource"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// Definition ranks: a candidate only replaces the current best when its rank
// is strictly higher, so the first file in traversal order wins ties.
const (
	rankNone = iota
	rankFortran
	rankHeader
	rankSource
)

var fortranExtensions = map[string]bool{
	".f": true, ".F": true, ".f90": true, ".F90": true, ".for": true, ".ftn": true,
}

func definitionRank(path m.Path) int {
	switch ext := path.Ext(); {
	case ext == ".c":
		return rankSource
	case ext == ".h":
		return rankHeader
	case fortranExtensions[ext]:
		return rankFortran
	default:
		return rankNone
	}
}

// IsSourceFile reports whether path is a file the locator reads.
func IsSourceFile(path m.Path) bool {
	return definitionRank(path) != rankNone
}

func isHeader(path m.Path) bool {
	return path.Ext() == ".h"
}

// Locator finds definitions, declarations and headers inside a module's
// source subtrees.
type Locator struct {
	fs     adapter.SourceFSAdapter
	reader adapter.SourceReader
	layout Layout
}

// NewLocator creates a locator walking fs and reading file text through reader.
func NewLocator(fs adapter.SourceFSAdapter, reader adapter.SourceReader, layout Layout) *Locator {
	return &Locator{fs: fs, reader: reader, layout: layout}
}

// ModuleFiles returns the files below the module's platform then
// configuration subtree accepted by accept, each subtree in lexical order.
// Unreadable directories are logged and skipped.
func (l *Locator) ModuleFiles(module m.Module, accept func(m.Path) bool) []m.Path {
	var files []m.Path

	for _, root := range SourceRoots(l.fs, l.layout, module) {
		err := l.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				slog.Warn("Skipping unreadable path", "path", path, "error", err)
				return nil
			}

			if !info.IsDir() && accept(m.Path(path)) {
				files = append(files, m.Path(path))
			}

			return nil
		})
		if err != nil {
			slog.Warn("Failed to walk module subtree", "root", root, "error", err)
		}
	}

	return files
}

func (l *Locator) readText(path m.Path) (string, bool) {
	text, err := l.reader.ReadText(path)
	if err != nil {
		slog.Warn("Skipping unreadable file", "path", path, "error", err)
		return "", false
	}

	return text, true
}

// FindDefinition selects the definition of function: .c files first, then
// headers, then Fortran routines; within a rank the first file in traversal
// order wins.
func (l *Locator) FindDefinition(module m.Module, function string) (m.ExtractedDefinition, error) {
	var (
		best     m.ExtractedDefinition
		bestRank = rankNone
	)

	for _, path := range l.ModuleFiles(module, IsSourceFile) {
		rank := definitionRank(path)
		if rank <= bestRank {
			continue
		}

		text, ok := l.readText(path)
		if !ok {
			continue
		}

		if rank == rankFortran {
			if routine, found := csource.ExtractFortranRoutine(text, function); found {
				best = m.ExtractedDefinition{Language: m.LanguageFortran, SourcePath: path, DefinitionText: routine}
				bestRank = rank
			}

			continue
		}

		if definition, prototype, found := csource.ExtractDefinition(text, function); found {
			best = m.ExtractedDefinition{
				Language:       m.LanguageC,
				SourcePath:     path,
				DefinitionText: definition,
				Prototype:      prototype,
			}
			bestRank = rank

			if rank == rankSource {
				break
			}
		}
	}

	if bestRank == rankNone {
		return m.ExtractedDefinition{}, fmt.Errorf("%w: %s in module %s", ErrDefinitionNotFound, function, module.Name)
	}

	slog.Debug("definition located", "module", module.Name, "function", function, "path", best.SourcePath)

	return best, nil
}

// FindDeclaration returns the first declaration of function found in the
// module's headers, or the zero Declaration.
func (l *Locator) FindDeclaration(module m.Module, function string) m.Declaration {
	for _, path := range l.ModuleFiles(module, isHeader) {
		text, ok := l.readText(path)
		if !ok {
			continue
		}

		doc, prototype, found := csource.FindDeclaration(text, function)
		if !found {
			continue
		}

		return m.Declaration{DocComment: doc, Prototype: prototype, HeaderPath: path}
	}

	return m.Declaration{}
}
