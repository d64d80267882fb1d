package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// flatNamer hands out collision-free basenames for headers copied into one
// flat directory.
type flatNamer struct {
	taken   map[string]bool
	counter map[string]int
}

func newFlatNamer(reserved ...string) *flatNamer {
	n := &flatNamer{taken: map[string]bool{}, counter: map[string]int{}}
	for _, name := range reserved {
		n.taken[name] = true
		n.counter[name] = 1
	}

	return n
}

// claim returns base when it is free, otherwise "<stem>__<N><ext>" for the
// smallest N >= 2 not yet handed out.
func (n *flatNamer) claim(base string) string {
	if !n.taken[base] {
		n.taken[base] = true
		n.counter[base] = 1

		return base
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := max(n.counter[base], 1) + 1; ; i++ {
		candidate := fmt.Sprintf("%s__%d%s", stem, i, ext)
		if !n.taken[candidate] {
			n.taken[candidate] = true
			n.counter[base] = i

			return candidate
		}
	}
}

// CollectHeaders reads every module header in traversal order and assigns it
// a flattened name. The harness header "<function>.h" is reserved, so a module
// header with that name is renamed rather than overwritten.
func (l *Locator) CollectHeaders(module m.Module, function string) []m.HeaderFile {
	namer := newFlatNamer(HarnessHeaderName(function))

	var headers []m.HeaderFile

	for _, path := range l.ModuleFiles(module, isHeader) {
		text, ok := l.readText(path)
		if !ok {
			continue
		}

		headers = append(headers, m.HeaderFile{
			OriginalPath:  path,
			FlattenedName: namer.claim(path.Base()),
			Content:       text,
		})
	}

	return headers
}
