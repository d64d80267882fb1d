package csource

import (
	"regexp"
	"sort"
	"strings"
)

// TypeSet is the whitelist of base types whose bare declarations are
// promoted to extern. Custom typedefs are not recognised unless added.
type TypeSet map[string]struct{}

// DefaultKnownTypes returns the built-in whitelist of primitive and standard
// C types.
func DefaultKnownTypes() TypeSet {
	return NewTypeSet(
		"int", "char", "float", "double", "void", "short", "long", "signed", "unsigned",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t",
		"int8_t", "int16_t", "int32_t", "int64_t",
		"bool", "size_t", "struct", "union", "enum",
	)
}

// NewTypeSet builds a TypeSet from names.
func NewTypeSet(names ...string) TypeSet {
	set := make(TypeSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}

	return set
}

// Has reports whether name is in the set.
func (t TypeSet) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Names returns the set's members in sorted order.
func (t TypeSet) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

var (
	leadingIdentPattern  = regexp.MustCompile(`^[A-Za-z_]\w*`)
	functionPointerParen = regexp.MustCompile(`\(\s*\*`)
	externPattern        = regexp.MustCompile(`\bextern\b`)
)

// RewriteHeader applies both visibility rules to a header: variables are
// promoted to extern and every declaration of function is removed. Running
// it on its own output is a no-op.
func RewriteHeader(text, function string, known TypeSet) string {
	return RemoveDeclarations(PromoteVariables(text, known), function)
}

// PromoteVariables rewrites module-private variable declarations so they
// link externally, and strips static/inline from function prototypes.
// Decisions are made on the masked view, so comments and literals are never
// edited.
func PromoteVariables(text string, known TypeSet) string {
	src := Scan(text)
	lines := strings.Split(text, "\n")
	codeLines := strings.Split(src.Masked(), "\n")

	offset := 0
	for i, line := range lines {
		code := codeLines[i]
		first := offset + len(code) - len(strings.TrimLeft(code, " \t\r"))

		// Members and locals (anything inside braces) are left alone.
		if first >= src.Len() || src.BraceDepth(first) == 0 {
			lines[i] = promoteLine(line, code, known)
		}

		offset += len(line) + 1
	}

	return strings.Join(lines, "\n")
}

func promoteLine(line, code string, known TypeSet) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line
	}

	if HasQualifier(code) {
		return rewriteQualifiedLine(line, code)
	}

	if externPattern.MatchString(code) || strings.ContainsAny(code, "{=") || !strings.HasSuffix(trimmed, ";") {
		return line
	}

	base := leadingIdentPattern.FindString(trimmed)
	if base == "void" || !known.Has(base) || looksLikePrototype(trimmed) {
		return line
	}

	// "struct tag;" is a forward declaration, not a variable.
	if isTagKeyword(base) && len(strings.Fields(strings.TrimSuffix(trimmed, ";"))) < 3 {
		return line
	}

	return insertExtern(line, code)
}

func isTagKeyword(word string) bool {
	return word == "struct" || word == "union" || word == "enum"
}

// rewriteQualifiedLine handles a line carrying static or inline.
func rewriteQualifiedLine(line, code string) string {
	trimmed := strings.TrimSpace(code)

	promote := strings.Contains(trimmed, ";") &&
		!looksLikePrototype(trimmed) &&
		!externPattern.MatchString(code) &&
		!strings.ContainsAny(code, "{=")

	if promote {
		if loc := staticPattern.FindStringIndex(code); loc != nil {
			// "static" and "extern" have the same length, so the masked
			// offsets stay valid for the remaining edits.
			line = line[:loc[0]] + "extern" + line[loc[1]:]
			code = code[:loc[0]] + "extern" + code[loc[1]:]
		}
	}

	return stripLineQualifiers(line, code)
}

// stripLineQualifiers deletes the qualifier keywords (and the blanks that
// follow them) found in code from line, keeping indentation.
func stripLineQualifiers(line, code string) string {
	locs := qualifierTrailPattern.FindAllStringIndex(code, -1)
	for i := len(locs) - 1; i >= 0; i-- {
		line = line[:locs[i][0]] + line[locs[i][1]:]
	}

	return line
}

func insertExtern(line, code string) string {
	indent := len(code) - len(strings.TrimLeft(code, " \t"))

	return line[:indent] + "extern " + line[indent:]
}

// looksLikePrototype reports whether a ';'-terminated code statement is a
// function prototype: its parameter list closes right before the ';', it has
// no initializer, and it is not a function-pointer variable.
func looksLikePrototype(stmt string) bool {
	if strings.Contains(stmt, "=") || !strings.Contains(stmt, "(") {
		return false
	}

	if functionPointerParen.MatchString(stmt) {
		return false
	}

	body := strings.TrimSpace(stmt)
	if semi := strings.IndexByte(body, ';'); semi >= 0 {
		body = strings.TrimSpace(body[:semi])
	}

	return strings.HasSuffix(body, ")")
}

// RemoveDeclarations deletes every declaration statement of function from a
// header, from the statement start through its ';'. Definitions are kept.
func RemoveDeclarations(text, function string) string {
	spans := DeclarationSpans(Scan(text), function)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder

	prev := 0
	for _, span := range spans {
		b.WriteString(text[prev:span.Start])
		prev = span.End
	}

	b.WriteString(text[prev:])

	return b.String()
}

// ExternVariables returns the "extern <type> <name>;" lines of a header
// (function declarations excluded), trimmed.
func ExternVariables(text string) []string {
	var out []string

	for _, line := range strings.Split(Mask(text), "\n") {
		code := strings.TrimSpace(line)
		if !strings.HasPrefix(code, "extern ") || !strings.HasSuffix(code, ";") {
			continue
		}

		if strings.Contains(code, "(") && !functionPointerParen.MatchString(code) {
			continue
		}

		out = append(out, NormalizeSpace(code))
	}

	return out
}
