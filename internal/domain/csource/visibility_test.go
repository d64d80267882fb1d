package csource

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPromoteVariables(t *testing.T) {
	in := "static uint8_t tbl[10];\n" +
		"uint16_t counter;\n" +
		"void helper(void);\n" +
		"static inline uint8_t Get(void);\n" +
		"int (*cb)(int);\n" +
		"extern int ok;\n" +
		"static int init = 3;\n" +
		"struct Fwd;\n" +
		"struct S s;\n" +
		"  static const char *name;\n" +
		"/* static int c; */\n" +
		"MyType custom;\n"

	want := "extern uint8_t tbl[10];\n" +
		"extern uint16_t counter;\n" +
		"void helper(void);\n" +
		"uint8_t Get(void);\n" +
		"extern int (*cb)(int);\n" +
		"extern int ok;\n" +
		"int init = 3;\n" +
		"struct Fwd;\n" +
		"extern struct S s;\n" +
		"  extern const char *name;\n" +
		"/* static int c; */\n" +
		"MyType custom;\n"

	got := PromoteVariables(in, DefaultKnownTypes())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("PromoteVariables() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, got, PromoteVariables(got, DefaultKnownTypes()), "second pass must be a no-op")
}

func TestPromoteVariables_CustomTypes(t *testing.T) {
	got := PromoteVariables("MyType custom;\n", NewTypeSet("MyType"))
	assert.Equal(t, "extern MyType custom;\n", got)
}

func TestPromoteVariables_LeavesBracedScopesAlone(t *testing.T) {
	in := "struct S {\n  int a;\n  uint8_t b;\n};\nstatic inline int g(void)\n{\n  int tmp;\n  return 0;\n}\n"
	want := "struct S {\n  int a;\n  uint8_t b;\n};\nint g(void)\n{\n  int tmp;\n  return 0;\n}\n"

	assert.Equal(t, want, PromoteVariables(in, DefaultKnownTypes()))
}

func TestRemoveDeclarations(t *testing.T) {
	t.Run("removes the statement and keeps the rest", func(t *testing.T) {
		in := "#ifndef A_H\n#define A_H\nint keep(void);\n/** doc */\nuint8_t ReadX(uint8_t id);\nint other(void);\n#endif\n"
		want := "#ifndef A_H\n#define A_H\nint keep(void);\n/** doc */\n\nint other(void);\n#endif\n"

		assert.Equal(t, want, RemoveDeclarations(in, "ReadX"))
	})

	t.Run("removes every declaration", func(t *testing.T) {
		assert.Equal(t, "\n\n", RemoveDeclarations("int ReadX(void);\nextern int ReadX(void);\n", "ReadX"))
	})

	t.Run("keeps definitions", func(t *testing.T) {
		in := "static inline uint8_t ReadX(uint8_t id) { return id; }\n"
		assert.Equal(t, in, RemoveDeclarations(in, "ReadX"))
	})

	t.Run("ignores comments, strings and macros", func(t *testing.T) {
		in := "/* ReadX(1); */\n#define CALL ReadX(2);\nconst char *s = \"ReadX(3);\";\n"
		assert.Equal(t, in, RemoveDeclarations(in, "ReadX"))
	})
}

func TestRewriteHeader_Idempotent(t *testing.T) {
	once := RewriteHeader(diagHeader, "ReadX", DefaultKnownTypes())
	twice := RewriteHeader(once, "ReadX", DefaultKnownTypes())

	assert.Equal(t, once, twice)
	assert.NotContains(t, once, "ReadX(")
	assert.Contains(t, once, "#include <stdint.h>")
	assert.Contains(t, once, "#endif")
}

func TestExternVariables(t *testing.T) {
	text := "extern uint8_t tbl[10];\n" +
		"extern int f(void);\n" +
		"extern  int  (*cb)(int);\n" +
		"/* extern int no; */\n" +
		" int x;\n" +
		"extern uint16_t counter; /* trailing */\n"

	want := []string{"extern uint8_t tbl[10];", "extern int (*cb)(int);", "extern uint16_t counter;"}
	assert.Equal(t, want, ExternVariables(text))
}

func TestTypeSet(t *testing.T) {
	set := NewTypeSet(" b ", "a", "")

	assert.Equal(t, []string{"a", "b"}, set.Names())
	assert.True(t, set.Has("a"))
	assert.False(t, set.Has(""))
	assert.True(t, DefaultKnownTypes().Has("uint8_t"))
}
