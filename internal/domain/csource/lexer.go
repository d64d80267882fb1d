// Package csource implements the lexical analysis behind harness generation:
// comment/literal masking, brace matching, definition and declaration
// lookup, qualifier rewriting and file-scope variable extraction for C
// sources.
//
// Nothing here builds a syntax tree. Every scan works over a Source, which
// records the lexical state of each byte so callers can search the masked
// view and slice the original text with the same offsets.
package csource

import (
	"errors"
	"strings"
	"sync"
)

// ErrUnterminatedBrace is returned when an opening brace has no structural
// match before the end of the text.
var ErrUnterminatedBrace = errors.New("unterminated brace")

// ErrNotBrace is returned when MatchBrace is called on a byte that is not a
// code '{'.
var ErrNotBrace = errors.New("not an opening brace")

// State is the lexical state a byte was read in.
type State uint8

// Lexer states.
const (
	Code State = iota
	LineComment
	BlockComment
	String
	Char
)

func (s State) String() string {
	switch s {
	case Code:
		return "code"
	case LineComment:
		return "line-comment"
	case BlockComment:
		return "block-comment"
	case String:
		return "string"
	case Char:
		return "char"
	default:
		return "unknown"
	}
}

// Source is a scanned C text. It is immutable and safe for concurrent use.
type Source struct {
	text   string
	states []State
	masked string

	layoutOnce sync.Once
	depth      []int32
	directive  []bool
}

// Scan runs the lexer over text.
func Scan(text string) *Source {
	states := make([]State, len(text))
	state := Code
	escaped := false
	n := len(text)

	for i := 0; i < n; i++ {
		c := text[i]

		switch state {
		case Code:
			switch {
			case c == '/' && i+1 < n && text[i+1] == '/':
				state = LineComment
				states[i], states[i+1] = LineComment, LineComment
				i++

				continue
			case c == '/' && i+1 < n && text[i+1] == '*':
				state = BlockComment
				states[i], states[i+1] = BlockComment, BlockComment
				i++

				continue
			case c == '"':
				state = String
			case c == '\'':
				state = Char
			}

			states[i] = state
		case LineComment:
			if c == '\n' {
				state = Code
				states[i] = Code

				continue
			}

			states[i] = LineComment
		case BlockComment:
			states[i] = BlockComment

			if c == '*' && i+1 < n && text[i+1] == '/' {
				states[i+1] = BlockComment
				state = Code
				i++
			}
		case String, Char:
			states[i] = state

			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '\n':
				// An unescaped newline cannot occur inside a literal; recover
				// instead of masking the remainder of the file.
				state = Code
				states[i] = Code
			case state == String && c == '"', state == Char && c == '\'':
				state = Code
			}
		}
	}

	return &Source{text: text, states: states, masked: buildMask(text, states)}
}

func buildMask(text string, states []State) string {
	out := []byte(text)

	for i, st := range states {
		if st != Code && out[i] != '\n' {
			out[i] = ' '
		}
	}

	return string(out)
}

// Mask returns text with every byte inside a comment, string literal or
// character literal replaced by a space. Newlines are kept so the result has
// the same length and line structure as the input.
func Mask(text string) string {
	return Scan(text).Masked()
}

// Text returns the original text.
func (s *Source) Text() string { return s.text }

// Masked returns the masked view of the text.
func (s *Source) Masked() string { return s.masked }

// Len returns the length of the text in bytes.
func (s *Source) Len() int { return len(s.text) }

// StateAt returns the lexical state of byte i.
func (s *Source) StateAt(i int) State { return s.states[i] }

// IsCode reports whether byte i is outside comments and literals.
func (s *Source) IsCode(i int) bool {
	return i >= 0 && i < len(s.states) && s.states[i] == Code
}

// BlockCommentStart returns the offset of the "/*" opening the block comment
// that contains byte i, or -1 when i is not inside a block comment.
func (s *Source) BlockCommentStart(i int) int {
	if i < 0 || i >= len(s.text) || s.states[i] != BlockComment {
		return -1
	}

	open := -1

	for j := 0; j <= i; j++ {
		if s.states[j] != BlockComment {
			open = -1
			continue
		}

		if open < 0 {
			// Skip the '*' of the opener so "/*/" is not read as a close.
			open = j
			j++

			continue
		}

		if s.text[j] == '*' && j+1 < len(s.text) && s.text[j+1] == '/' {
			if j+1 >= i {
				return open
			}

			open = -1
			j++
		}
	}

	return open
}

// CodeText returns text[start:end] with comment bytes replaced by spaces.
// Literals are kept verbatim.
func (s *Source) CodeText(start, end int) string {
	out := []byte(s.text[start:end])

	for i := range out {
		st := s.states[start+i]
		if (st == LineComment || st == BlockComment) && out[i] != '\n' {
			out[i] = ' '
		}
	}

	return string(out)
}

// MatchBrace returns the index of the '}' closing the '{' at open. Braces in
// comments, literals and preprocessor lines do not count.
func (s *Source) MatchBrace(open int) (int, error) {
	if open < 0 || open >= len(s.text) || s.masked[open] != '{' {
		return -1, ErrNotBrace
	}

	s.computeLayout()

	depth := 0

	for i := open; i < len(s.masked); i++ {
		if s.directive[i] {
			continue
		}

		switch s.masked[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return -1, ErrUnterminatedBrace
}

// NextSemicolon returns the index of the first code ';' at or after from, or
// -1.
func (s *Source) NextSemicolon(from int) int {
	if from < 0 {
		from = 0
	}

	if from >= len(s.masked) {
		return -1
	}

	idx := strings.IndexByte(s.masked[from:], ';')
	if idx < 0 {
		return -1
	}

	return from + idx
}

// BraceDepth returns the number of open code braces before byte i. Linkage
// blocks (extern "C" { ... }) are transparent.
func (s *Source) BraceDepth(i int) int {
	s.computeLayout()

	if i >= len(s.depth) {
		i = len(s.depth) - 1
	}

	if i < 0 {
		return 0
	}

	return int(s.depth[i])
}

// InDirective reports whether byte i belongs to a preprocessor line,
// including its backslash continuations.
func (s *Source) InDirective(i int) bool {
	s.computeLayout()

	return i >= 0 && i < len(s.directive) && s.directive[i]
}

func (s *Source) computeLayout() {
	s.layoutOnce.Do(func() {
		n := len(s.masked)
		s.depth = make([]int32, n)
		s.directive = make([]bool, n)

		var (
			depth   int32
			counted []bool
		)

		lineStart := true
		inDirective := false

		for i := 0; i < n; i++ {
			c := s.masked[i]

			if lineStart && c != ' ' && c != '\t' && c != '\r' && c != '\n' {
				lineStart = false
				inDirective = c == '#'
			}

			s.depth[i] = depth
			s.directive[i] = inDirective && c != '\n'

			if c == '\n' {
				lineStart = true

				if inDirective && !continuesLine(s.text, i) {
					inDirective = false
				}

				if inDirective {
					// Continuation lines belong to the directive.
					lineStart = false
				}

				continue
			}

			if inDirective {
				continue
			}

			switch c {
			case '{':
				isCounted := !precededByExtern(s.masked, i)
				counted = append(counted, isCounted)

				if isCounted {
					depth++
				}
			case '}':
				if len(counted) == 0 {
					continue
				}

				last := counted[len(counted)-1]
				counted = counted[:len(counted)-1]

				if last && depth > 0 {
					depth--
				}
			}
		}
	})
}

// continuesLine reports whether the physical line ending at the newline nl
// ends with a backslash.
func continuesLine(text string, nl int) bool {
	j := nl - 1
	if j >= 0 && text[j] == '\r' {
		j--
	}

	return j >= 0 && text[j] == '\\'
}

// precededByExtern reports whether the code token before index i is the
// keyword extern, which makes the brace a linkage specification.
func precededByExtern(masked string, i int) bool {
	j := i - 1
	for j >= 0 && isSpace(masked[j]) {
		j--
	}

	end := j + 1
	for j >= 0 && isIdentByte(masked[j]) {
		j--
	}

	return masked[j+1:end] == "extern"
}

// StatementStart walks back from i to the nearest preceding code ';', '{' or
// '}' and then forward past whitespace, comments and preprocessor lines. The
// result is the first byte of the statement containing i.
func (s *Source) StatementStart(i int) int {
	start := strings.LastIndexAny(s.masked[:i], ";{}")
	for start >= 0 && s.InDirective(start) {
		start = strings.LastIndexAny(s.masked[:start], ";{}")
	}

	return s.SkipTrivia(start+1, i)
}

// SkipTrivia advances from i past whitespace, comments and preprocessor
// lines, stopping at limit.
func (s *Source) SkipTrivia(i, limit int) int {
	for i < limit {
		if isSpace(s.text[i]) || !s.IsCode(i) || s.InDirective(i) {
			i++

			continue
		}

		break
	}

	return i
}

// IndexIdent returns the index of the first code occurrence of name at or
// after from that is delimited by non-identifier bytes, or -1.
func (s *Source) IndexIdent(name string, from int) int {
	if name == "" {
		return -1
	}

	for from <= len(s.masked)-len(name) {
		idx := strings.Index(s.masked[from:], name)
		if idx < 0 {
			return -1
		}

		idx += from
		end := idx + len(name)

		if (idx == 0 || !isIdentByte(s.masked[idx-1])) && (end == len(s.masked) || !isIdentByte(s.masked[end])) {
			return idx
		}

		from = idx + 1
	}

	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
