package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"cutgen.dev/pkg/cutgen/internal/domain/csource"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

const (
	externBlockHeader   = "/* extern variables from module headers */"
	variableBlockHeader = "/* file-scope variables from %s */"
)

var guardUnsafe = regexp.MustCompile(`[^A-Za-z0-9_]`)

// HarnessHeaderName is the generated declaration header of a target.
func HarnessHeaderName(function string) string {
	return function + ".h"
}

// HarnessSourceName is the generated wrapper source of a target.
func HarnessSourceName(function string) string {
	return function + ".c"
}

// IncludeGuard returns the include-guard macro of a target's header:
// "ReadX" becomes "READX_H_".
func IncludeGuard(function string) string {
	return strings.ToUpper(guardUnsafe.ReplaceAllString(function+"_h", "_")) + "_"
}

// Harness is the input of the synthesizer for one target.
type Harness struct {
	Function    string
	Definition  m.ExtractedDefinition
	Declaration m.Declaration
	// Headers are the flattened module headers after the visibility rewrite.
	Headers []m.HeaderFile
	// Variables are the converted file-scope variables of the definition's
	// source file.
	Variables []string
}

// Prototype returns the declaration to publish: the module header's when one
// was found, else the one derived from the definition.
func (h Harness) Prototype() string {
	if h.Declaration.Found() {
		return csource.StripQualifiers(h.Declaration.Prototype)
	}

	return csource.StripQualifiers(h.Definition.Prototype)
}

// HeaderFile renders "<function>.h".
func (h Harness) HeaderFile() m.GeneratedFile {
	guard := IncludeGuard(h.Function)

	body := h.Prototype()
	if h.Definition.Language == m.LanguageFortran {
		body = fmt.Sprintf("/* %s was extracted from a Fortran routine; provide a C-compatible declaration if needed. */", h.Function)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString(body)
	fmt.Fprintf(&b, "\n\n#endif /* %s */\n", guard)

	return m.GeneratedFile{Name: HarnessHeaderName(h.Function), Content: b.String()}
}

// SourceFile renders "<function>.c".
func (h Harness) SourceFile() m.GeneratedFile {
	var b strings.Builder

	b.WriteString(h.includes())
	b.WriteString("\n\n")

	if h.Definition.Language == m.LanguageFortran {
		fmt.Fprintf(&b, "/* Fortran routine extracted from %s */\n", h.Definition.SourcePath.Base())
		b.WriteString("#if 0\n")
		b.WriteString(h.Definition.DefinitionText)
		b.WriteString("#endif\n")

		return m.GeneratedFile{Name: HarnessSourceName(h.Function), Content: b.String()}
	}

	if externs := h.externVariables(); len(externs) > 0 {
		b.WriteString(externBlockHeader + "\n")
		b.WriteString(strings.Join(externs, "\n"))
		b.WriteString("\n\n")
	}

	if len(h.Variables) > 0 {
		fmt.Fprintf(&b, variableBlockHeader+"\n", h.Definition.SourcePath.Base())

		for _, v := range h.Variables {
			b.WriteString(v)
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	b.WriteString(h.Definition.DefinitionText)

	return m.GeneratedFile{Name: HarnessSourceName(h.Function), Content: b.String()}
}

// includes returns the include block: the harness header first, then every
// other flattened header sorted and deduplicated.
func (h Harness) includes() string {
	own := HarnessHeaderName(h.Function)

	names := make([]string, 0, len(h.Headers))
	seen := map[string]bool{own: true}

	for _, header := range h.Headers {
		if seen[header.FlattenedName] {
			continue
		}

		seen[header.FlattenedName] = true
		names = append(names, header.FlattenedName)
	}

	sort.Strings(names)

	lines := []string{fmt.Sprintf("#include \"%s\"", own)}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("#include \"%s\"", name))
	}

	return strings.Join(lines, "\n")
}

// externVariables collects the extern variable declarations of the
// flattened headers, in include order, deduplicated.
func (h Harness) externVariables() []string {
	headers := append([]m.HeaderFile(nil), h.Headers...)
	sort.SliceStable(headers, func(i, j int) bool { return headers[i].FlattenedName < headers[j].FlattenedName })

	var out []string

	seen := map[string]bool{}

	for _, header := range headers {
		for _, decl := range csource.ExternVariables(header.Content) {
			if seen[decl] {
				continue
			}

			seen[decl] = true
			out = append(out, decl)
		}
	}

	return out
}

// Files returns the flattened headers followed by the two generated files,
// sorted by name.
func (h Harness) Files() []m.GeneratedFile {
	files := make([]m.GeneratedFile, 0, len(h.Headers)+2)

	for _, header := range h.Headers {
		files = append(files, m.GeneratedFile{Name: header.FlattenedName, Content: header.Content})
	}

	files = append(files, h.HeaderFile(), h.SourceFile())
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files
}
