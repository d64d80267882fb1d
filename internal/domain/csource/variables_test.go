package csource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const diagSource = `#include "diag.h"

#define MAX 10

/* lookup table */
static uint8_t tbl[MAX];
static const uint8_t init[3] = {1, 2, 3};
uint16_t counter;
extern int shared;
typedef int myint;
static void helper(void);
static void (*cb)(void);
struct S { int a; };
static uint8_t  tbl[MAX];

static uint8_t ReadX(uint8_t id)
{
  static int calls;
  return tbl[id];
}
static int after = 0;
`

func TestExtractFileScopeVariables(t *testing.T) {
	want := []string{
		"extern uint8_t tbl[MAX];",
		"const uint8_t init[3] = {1, 2, 3};",
		"extern uint16_t counter;",
		"extern void (*cb)(void);",
		"int after = 0;",
	}

	assert.Equal(t, want, ExtractFileScopeVariables(diagSource))
}

func TestFileScopeStatements_LinkageBlock(t *testing.T) {
	text := "extern \"C\" {\nstatic int a;\n}\nint b;\n"

	assert.Equal(t, []string{"static int a;", "int b;"}, FileScopeStatements(text))
}

func TestConvertVariable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"declaration becomes extern", "static uint8_t x;", "extern uint8_t x;"},
		{"initializer is kept", "static int y = 4;", "int y = 4;"},
		{"already extern", "extern int z;", "extern int z;"},
		{"qualifier inside string survives", `static const char *name = "static inline";`, `const char *name = "static inline";`},
		{"array without size", `static char tag[];`, `extern char tag[];`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertVariable(tt.in))
		})
	}
}
