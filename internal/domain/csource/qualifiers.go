package csource

import (
	"regexp"
	"strings"
)

var (
	qualifierPattern      = regexp.MustCompile(`(?i)\bstatic_inline\b|\bstatic\b|\binline\b`)
	qualifierTrailPattern = regexp.MustCompile(`(?i)(?:\bstatic_inline\b|\bstatic\b|\binline\b)[ \t]*`)
	staticPattern         = regexp.MustCompile(`(?i)\bstatic\b`)
	whitespacePattern     = regexp.MustCompile(`\s+`)
)

// NormalizeSpace collapses every whitespace run to a single space and trims
// the result.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// StripQualifiers removes static, inline and static_inline (any case) from a
// signature and collapses whitespace.
func StripQualifiers(s string) string {
	out := NormalizeSpace(qualifierPattern.ReplaceAllString(s, ""))

	return strings.ReplaceAll(out, " (", "(")
}

// HasQualifier reports whether s contains a static or inline keyword.
func HasQualifier(s string) bool {
	return qualifierPattern.MatchString(s)
}

// NormalizePrototype turns a definition signature into a prototype: the text
// is cut after the parameter list, qualifiers are removed and a ';' is
// appended.
func NormalizePrototype(signature string) string {
	sig := NormalizeSpace(signature)
	if rp := strings.LastIndexByte(sig, ')'); rp >= 0 {
		sig = sig[:rp+1]
	}

	return StripQualifiers(sig) + ";"
}

// normalizeDeclaration cleans a declaration statement the same way without
// truncating it.
func normalizeDeclaration(stmt string) string {
	decl := StripQualifiers(stmt)
	if !strings.HasSuffix(decl, ";") {
		decl += ";"
	}

	return decl
}
