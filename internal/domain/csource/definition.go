package csource

import (
	"regexp"
	"strings"
)

// Span is a half-open byte range [Start, End) of a text.
type Span struct {
	Start int
	End   int
}

// DefinitionSpan is a function definition found in a C text.
type DefinitionSpan struct {
	Span
	// Open is the index of the body's opening brace.
	Open int
	// Prototype is the normalized, qualifier-free signature ending in ';'.
	Prototype string
}

func definitionPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^[ \t]*` +
			`(?:[\w\*\(\)\[\]\s]+?\s+)?` +
			`\b` + regexp.QuoteMeta(name) + `\b` +
			`[ \t]*\([^;]*?\)` +
			`[ \t\r\n]*\{`,
	)
}

// FindDefinitions returns every file-scope definition of the function name,
// in text order. Candidates whose body is not terminated are dropped.
func FindDefinitions(src *Source, name string) []DefinitionSpan {
	var spans []DefinitionSpan

	masked := src.Masked()

	for _, loc := range definitionPattern(name).FindAllStringIndex(masked, -1) {
		start := loc[0]
		for start < loc[1] && isSpace(masked[start]) {
			start++
		}

		if src.BraceDepth(start) != 0 || src.InDirective(start) {
			continue
		}

		open := loc[1] - 1

		closeIdx, err := src.MatchBrace(open)
		if err != nil {
			continue
		}

		spans = append(spans, DefinitionSpan{
			Span:      Span{Start: start, End: closeIdx + 1},
			Open:      open,
			Prototype: NormalizePrototype(src.CodeText(start, open)),
		})
	}

	return spans
}

// ExtractDefinition returns the first definition of name in text with its
// signature qualifier-stripped (the body is copied verbatim) together with
// the normalized prototype.
func ExtractDefinition(text, name string) (definition, prototype string, ok bool) {
	src := Scan(text)

	spans := FindDefinitions(src, name)
	if len(spans) == 0 {
		return "", "", false
	}

	span := spans[0]
	signature := StripQualifiers(src.CodeText(span.Start, span.Open))
	body := strings.TrimRight(text[span.Open:span.End], " \t\r\n")

	return signature + "\n" + body + "\n", span.Prototype, true
}

func fortranStartPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?im)^[ \t]*(?:recursive[ \t]+)?(?:pure[ \t]+)?(?:elemental[ \t]+)?` +
			`(function|subroutine)[ \t]+` + regexp.QuoteMeta(name) + `\b.*$`,
	)
}

var fortranGenericEnd = regexp.MustCompile(`(?im)^[ \t]*end\b.*$`)

// ExtractFortranRoutine returns the function or subroutine block named name,
// from its opening line through its end statement.
func ExtractFortranRoutine(text, name string) (string, bool) {
	m := fortranStartPattern(name).FindStringSubmatchIndex(text)
	if m == nil {
		return "", false
	}

	start, headerEnd := m[0], m[1]
	kind := strings.ToLower(text[m[2]:m[3]])

	endPattern := regexp.MustCompile(`(?im)^[ \t]*end[ \t]+` + kind + `\b.*$`)

	end := endPattern.FindStringIndex(text[headerEnd:])
	if end == nil {
		end = fortranGenericEnd.FindStringIndex(text[headerEnd:])
		if end == nil {
			return "", false
		}
	}

	return strings.TrimRight(text[start:headerEnd+end[1]], " \t\r\n") + "\n", true
}
