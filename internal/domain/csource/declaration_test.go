package csource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diagHeader = `#ifndef DIAG_H
#define DIAG_H

#include <stdint.h>

/**
 * @brief Reads X.
 */
static uint8_t ReadX(uint8_t id);

#endif
`

func TestFindDeclaration(t *testing.T) {
	t.Run("prototype with doxygen block", func(t *testing.T) {
		doc, proto, ok := FindDeclaration(diagHeader, "ReadX")
		require.True(t, ok)
		assert.Equal(t, "uint8_t ReadX(uint8_t id);", proto)
		assert.Equal(t, "/**\n * @brief Reads X.\n */\n", doc)
	})

	t.Run("bang-style doxygen block", func(t *testing.T) {
		doc, proto, ok := FindDeclaration("/*! Resets. */\n\nextern void Reset(void);\n", "Reset")
		require.True(t, ok)
		assert.Equal(t, "extern void Reset(void);", proto)
		assert.Equal(t, "/*! Resets. */\n", doc)
	})

	t.Run("plain comment is not documentation", func(t *testing.T) {
		doc, _, ok := FindDeclaration("/* plain */\nint f(void);\n", "f")
		require.True(t, ok)
		assert.Empty(t, doc)
	})

	t.Run("code between comment and declaration", func(t *testing.T) {
		doc, proto, ok := FindDeclaration("/** doc */\nint x;\nint f(void);\n", "f")
		require.True(t, ok)
		assert.Equal(t, "int f(void);", proto)
		assert.Empty(t, doc)
	})

	t.Run("multi-line prototype", func(t *testing.T) {
		_, proto, ok := FindDeclaration("static inline uint16_t Sum(uint8_t a, /* lhs */\n    uint8_t b);\n", "Sum")
		require.True(t, ok)
		assert.Equal(t, "uint16_t Sum(uint8_t a, uint8_t b);", proto)
	})

	t.Run("inside linkage block", func(t *testing.T) {
		text := "#ifdef __cplusplus\nextern \"C\" {\n#endif\nint f(void);\n#ifdef __cplusplus\n}\n#endif\n"

		_, proto, ok := FindDeclaration(text, "f")
		require.True(t, ok)
		assert.Equal(t, "int f(void);", proto)
	})
}

func TestFindDeclaration_Rejections(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"mentioned in a comment", "/* ReadX(1); */\n// ReadX(2);\n"},
		{"mentioned in a string", "const char *s = \"ReadX(3);\";\n"},
		{"inside a define", "#define CALL() ReadX(3);\n"},
		{"inside a continued define", "#define CALL() \\\n  ReadX(3);\n"},
		{"definition", "static inline int ReadX(int a) { return a; }\n"},
		{"call inside a body", "static inline int g(void) { return ReadX(1); }\n"},
		{"no terminating semicolon", "int ReadX(int a)\n"},
		{"longer identifier", "int ReadXY(void);\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := FindDeclaration(tt.text, "ReadX")
			assert.False(t, ok)
		})
	}
}

func TestDeclarationSpans(t *testing.T) {
	text := "int ReadX(void);\nextern int ReadX(void);\n"

	spans := DeclarationSpans(Scan(text), "ReadX")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 16}, spans[0])
	assert.Equal(t, strings.Index(text, "extern"), spans[1].Start)
	assert.Equal(t, len(text)-1, spans[1].End)
}

func TestDocCommentAbove(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "last of two blocks", text: "/** first */ /** second */\nint f(void);", want: "/** second */\n"},
		{name: "bang opener", text: "/*! brief */\nint f(void);", want: "/*! brief */\n"},
		{name: "no comment", text: "int f(void);"},
		{name: "plain block", text: "/* plain */\nint f(void);"},
		{name: "opener inside string", text: "const char *banner = \"/**\";\n/* not doc */\nint f(void);"},
		{name: "opener inside line comment", text: "// see /** below\n/* plain */\nint f(void);"},
		{name: "plain block after doc block", text: "/** doc */\n/* plain */\nint f(void);"},
		{name: "code between", text: "/** doc */ int x;\nint f(void);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Scan(tt.text)
			assert.Equal(t, tt.want, DocCommentAbove(src, strings.Index(tt.text, "int f")))
		})
	}
}

func TestFindDeclaration_PlainCommentIsNotDoc(t *testing.T) {
	doc, proto, ok := FindDeclaration("const char *banner = \"/**\";\n/* not doc */\nint Foo(void);\n", "Foo")

	assert.True(t, ok)
	assert.Equal(t, "int Foo(void);", proto)
	assert.Empty(t, doc)
}

func TestSource_BlockCommentStart(t *testing.T) {
	text := "a /*/ x */ b /**/ c"
	src := Scan(text)

	assert.Equal(t, 2, src.BlockCommentStart(strings.Index(text, "x")))
	assert.Equal(t, 2, src.BlockCommentStart(strings.Index(text, "*/ b")+1))
	assert.Equal(t, 13, src.BlockCommentStart(strings.Index(text, "/ c")-1))
	assert.Equal(t, -1, src.BlockCommentStart(0))
	assert.Equal(t, -1, src.BlockCommentStart(strings.Index(text, "b")))
}
