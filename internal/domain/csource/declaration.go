package csource

import (
	"strings"
)

// DeclarationSpans returns every file-scope declaration statement of the
// function name: an occurrence of name followed by '(' that is not inside a
// comment, literal or preprocessor line, and whose statement reaches a ';'
// with no '{' in between. Spans run from the statement start through the ';'.
func DeclarationSpans(src *Source, name string) []Span {
	var spans []Span

	masked := src.Masked()

	for from := 0; ; {
		idx := src.IndexIdent(name, from)
		if idx < 0 {
			break
		}

		from = idx + len(name)

		if src.InDirective(idx) || src.BraceDepth(idx) != 0 {
			continue
		}

		paren := from
		for paren < len(masked) && isSpace(masked[paren]) {
			paren++
		}

		if paren >= len(masked) || masked[paren] != '(' {
			continue
		}

		semi := src.NextSemicolon(paren)
		if semi < 0 {
			continue
		}

		if strings.IndexByte(masked[paren:semi], '{') >= 0 {
			continue
		}

		spans = append(spans, Span{Start: src.StatementStart(idx), End: semi + 1})
		from = semi + 1
	}

	return spans
}

// FindDeclaration returns the first declaration of name in a header text,
// normalized and qualifier-stripped, and the documentation block directly
// above it (empty when there is none).
func FindDeclaration(text, name string) (docComment, prototype string, ok bool) {
	src := Scan(text)

	spans := DeclarationSpans(src, name)
	if len(spans) == 0 {
		return "", "", false
	}

	span := spans[0]
	prototype = normalizeDeclaration(src.CodeText(span.Start, span.End))

	return DocCommentAbove(src, span.Start), prototype, true
}

// DocCommentAbove returns the Doxygen block comment (opened with /** or /*!)
// that ends immediately before declStart with only whitespace in between.
// The block is returned trailing-trimmed with a final newline, or empty.
func DocCommentAbove(src *Source, declStart int) string {
	text := src.Text()

	k := declStart - 1
	for k >= 0 && isSpace(text[k]) {
		k--
	}

	if k < 1 || text[k] != '/' || text[k-1] != '*' || src.StateAt(k) != BlockComment {
		return ""
	}

	start := src.BlockCommentStart(k)
	if start < 0 || start+3 > len(text) {
		return ""
	}

	if opener := text[start : start+3]; opener != "/**" && opener != "/*!" {
		return ""
	}

	return strings.TrimRight(text[start:k+1], " \t\r\n") + "\n"
}
