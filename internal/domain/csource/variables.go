package csource

import (
	"regexp"
	"strings"
)

var (
	typedefPattern = regexp.MustCompile(`^typedef\b`)
	externPrefix   = regexp.MustCompile(`^extern\b`)
)

type braceKind uint8

const (
	braceOther braceKind = iota
	braceBody
	braceLinkage
)

// FileScopeStatements returns the ';'-terminated statements found at
// brace, paren and bracket depth zero of a C text, trimmed and with leading
// comments and preprocessor lines removed. A function body closing at depth
// zero also ends a statement.
func FileScopeStatements(text string) []string {
	src := Scan(text)
	masked := src.Masked()

	var (
		statements []string
		braces     []braceKind
		paren      int
		bracket    int
		depth      int
	)

	start := 0

	for i := 0; i < len(masked); i++ {
		if src.InDirective(i) {
			continue
		}

		switch masked[i] {
		case '(':
			paren++
		case ')':
			paren = max(0, paren-1)
		case '[':
			bracket++
		case ']':
			bracket = max(0, bracket-1)
		case '{':
			if paren != 0 || bracket != 0 {
				continue
			}

			kind := braceOther

			switch {
			case precededByExtern(masked, i):
				kind = braceLinkage
				start = i + 1
			case depth == 0 && prevCodeByte(masked, i) == ')':
				kind = braceBody
			}

			braces = append(braces, kind)

			if kind != braceLinkage {
				depth++
			}
		case '}':
			if paren != 0 || bracket != 0 || len(braces) == 0 {
				continue
			}

			kind := braces[len(braces)-1]
			braces = braces[:len(braces)-1]

			if kind == braceLinkage {
				start = i + 1

				continue
			}

			depth = max(0, depth-1)
			if depth == 0 && kind == braceBody {
				start = i + 1
			}
		case ';':
			if depth != 0 || paren != 0 || bracket != 0 {
				continue
			}

			from := src.SkipTrivia(start, i)
			start = i + 1

			if stmt := strings.TrimSpace(src.CodeText(from, i+1)); stmt != ";" {
				statements = append(statements, stmt)
			}
		}
	}

	return statements
}

func prevCodeByte(masked string, i int) byte {
	for j := i - 1; j >= 0; j-- {
		if !isSpace(masked[j]) {
			return masked[j]
		}
	}

	return 0
}

// isVariableStatement reports whether a file-scope statement defines or
// declares a variable.
func isVariableStatement(stmt string) bool {
	code := Mask(stmt)

	if strings.HasPrefix(code, "#") || typedefPattern.MatchString(code) || externPrefix.MatchString(code) {
		return false
	}

	// Bare prototype: parentheses, no initializer, not a function pointer.
	if strings.Contains(code, "(") && !strings.Contains(code, "=") && !functionPointerParen.MatchString(code) {
		return false
	}

	// Type definition without a declarator: "struct s { ... };".
	if closeBrace := strings.LastIndexByte(code, '}'); closeBrace >= 0 && !strings.Contains(code[:closeBrace], "=") {
		if strings.TrimSpace(code[closeBrace+1:]) == ";" {
			return false
		}
	}

	return true
}

// ConvertVariable rewrites an extracted variable statement for the harness:
// initialized definitions keep their initializer with qualifiers removed,
// everything else becomes an extern declaration.
func ConvertVariable(stmt string) string {
	cleaned := strings.TrimSpace(stripLineQualifiers(stmt, Mask(stmt)))

	if strings.Contains(Mask(cleaned), "=") {
		return cleaned
	}

	if !externPrefix.MatchString(cleaned) {
		cleaned = "extern " + cleaned
	}

	return cleaned
}

// ExtractFileScopeVariables returns the converted file-scope variable
// statements of a C source, deduplicated by whitespace-normalized text in
// first-seen order.
func ExtractFileScopeVariables(text string) []string {
	var out []string

	seen := make(map[string]struct{})

	for _, stmt := range FileScopeStatements(text) {
		if !isVariableStatement(stmt) {
			continue
		}

		converted := ConvertVariable(stmt)

		key := NormalizeSpace(converted)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, converted)
	}

	return out
}
