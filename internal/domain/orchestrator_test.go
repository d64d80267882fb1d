package domain_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/domain"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

const projectRoot = "/project"

// writeProject lays files out below the project root.
func writeProject(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(projectRoot, rel)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func newOrchestrator(t *testing.T, fs afero.Fs) domain.Orchestrator {
	t.Helper()

	fsAdapter := adapter.NewSourceFSAdapter(fs)
	cache, err := adapter.NewSourceCache(fsAdapter, adapter.DefaultSourceCacheSize)
	require.NoError(t, err)

	return domain.NewOrchestrator(fsAdapter, cache, domain.DefaultLayout())
}

func target(module, function string) m.TestTarget {
	modulePath := filepath.Join(projectRoot, "code", module)

	return m.TestTarget{
		Module:   m.Module{Name: module, Path: m.Path(modulePath)},
		Function: function,
		Dir:      m.Path(filepath.Join(modulePath, "unitTests", "TEST_"+function)),
	}
}

func readOutput(t *testing.T, fs afero.Fs, tgt m.TestTarget) map[string]string {
	t.Helper()

	dir := string(tgt.OutputDir("src"))

	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)

	out := make(map[string]string, len(entries))

	for _, e := range entries {
		data, err := afero.ReadFile(fs, filepath.Join(dir, e.Name()))
		require.NoError(t, err)

		out[e.Name()] = string(data)
	}

	return out
}

var diagProject = map[string]string{
	"code/Diag/platform/diag.c": "#include \"diag.h\"\n\nstatic uint8_t ReadX(uint8_t id) { return tbl[id]; }\n",
	"code/Diag/platform/diag.h": "/**\n * @brief Reads X.\n */\nstatic uint8_t ReadX(uint8_t id);\n",
	"code/Diag/configuration/table.h": "static uint8_t tbl[10];\n",
	"code/Diag/unitTests/TEST_ReadX/test_ReadX.c": "/* hand written */\n",
}

func TestOrchestrator_Process_EndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)

	tgt := target("Diag", "ReadX")
	result := newOrchestrator(t, fs).Process(context.Background(), tgt)

	require.NoError(t, result.Err)
	assert.Equal(t, m.Generated, result.Status)
	assert.Equal(t, m.Path(projectRoot+"/code/Diag/platform/diag.c"), result.SourcePath)
	assert.Equal(t, m.Path(projectRoot+"/code/Diag/platform/diag.h"), result.DeclarationHeader)
	assert.True(t, result.HasDocComment)

	want := map[string]string{
		"ReadX.h": "#ifndef READX_H_\n#define READX_H_\n\nuint8_t ReadX(uint8_t id);\n\n#endif /* READX_H_ */\n",
		"ReadX.c": "#include \"ReadX.h\"\n#include \"diag.h\"\n#include \"table.h\"\n\n" +
			"/* extern variables from module headers */\nextern uint8_t tbl[10];\n\n" +
			"uint8_t ReadX(uint8_t id)\n{ return tbl[id]; }\n",
		"diag.h":  "/**\n * @brief Reads X.\n */\n\n",
		"table.h": "extern uint8_t tbl[10];\n",
	}

	if diff := cmp.Diff(want, readOutput(t, fs, tgt)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	// Files outside the output directory are untouched.
	handWritten, err := afero.ReadFile(fs, projectRoot+"/code/Diag/unitTests/TEST_ReadX/test_ReadX.c")
	require.NoError(t, err)
	assert.Equal(t, "/* hand written */\n", string(handWritten))
}

func TestOrchestrator_Process_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)
	writeProject(t, fs, map[string]string{
		"code/Diag/unitTests/TEST_ReadX/src/stale.h": "old\n",
	})

	tgt := target("Diag", "ReadX")
	orch := newOrchestrator(t, fs)

	first := orch.Process(context.Background(), tgt)
	require.Equal(t, m.Generated, first.Status)

	firstOut := readOutput(t, fs, tgt)
	assert.NotContains(t, firstOut, "stale.h")

	second := orch.Process(context.Background(), tgt)
	require.Equal(t, m.Generated, second.Status)

	assert.Equal(t, firstOut, readOutput(t, fs, tgt))
}

func TestOrchestrator_Process_MissingDefinition(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, map[string]string{
		"code/Abs/platform/abs.h":           "static int level;\nint Foo(void);\n",
		"code/Abs/platform/abs.c":           "int Bar(void) { return 0; }\n",
		"code/Abs/unitTests/TEST_Foo/x.txt": "",
	})

	tgt := target("Abs", "Foo")
	result := newOrchestrator(t, fs).Process(context.Background(), tgt)

	assert.Equal(t, m.Missing, result.Status)
	require.ErrorIs(t, result.Err, domain.ErrDefinitionNotFound)

	out := readOutput(t, fs, tgt)
	assert.Equal(t, map[string]string{"abs.h": "extern int level;\n\n"}, out)
}

func TestOrchestrator_Process_DefinitionInHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, map[string]string{
		"code/Mod/platform/util.h": "static inline int Clamp(int v) { return v < 0 ? 0 : v; }\n",
	})

	tgt := target("Mod", "Clamp")
	result := newOrchestrator(t, fs).Process(context.Background(), tgt)

	require.Equal(t, m.Generated, result.Status)
	assert.Empty(t, result.DeclarationHeader)
	assert.False(t, result.HasDocComment)

	out := readOutput(t, fs, tgt)
	assert.Contains(t, out["Clamp.h"], "\nint Clamp(int v);\n")
	assert.Contains(t, out["Clamp.c"], "int Clamp(int v)\n{ return v < 0 ? 0 : v; }\n")
	assert.NotContains(t, out["Clamp.c"], "file-scope variables")
	assert.NotContains(t, out["util.h"], "inline")
}

func TestOrchestrator_Process_ReservedHeaderName(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, map[string]string{
		"code/Mod/platform/Calc.h": "#define CALC_LIMIT 4\nint Calc(int a);\n",
		"code/Mod/platform/Calc.c": "#include \"Calc.h\"\nint Calc(int a) { return a * CALC_LIMIT; }\n",
	})

	tgt := target("Mod", "Calc")
	result := newOrchestrator(t, fs).Process(context.Background(), tgt)
	require.Equal(t, m.Generated, result.Status)

	out := readOutput(t, fs, tgt)
	require.Contains(t, out, "Calc__2.h")
	assert.Equal(t, "#define CALC_LIMIT 4\n\n", out["Calc__2.h"])
	assert.Contains(t, out["Calc.h"], "#ifndef CALC_H_")
	assert.Contains(t, out["Calc.c"], "#include \"Calc.h\"\n#include \"Calc__2.h\"\n")
}

func TestOrchestrator_Process_FileScopeVariables(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, map[string]string{
		"code/Mon/platform/mon.c": "static uint16_t samples[8];\nstatic int gain = 2;\n\n" +
			"static int Scale(int v)\n{\n  return v * gain;\n}\n",
	})

	tgt := target("Mon", "Scale")
	result := newOrchestrator(t, fs).Process(context.Background(), tgt)
	require.Equal(t, m.Generated, result.Status)

	want := "#include \"Scale.h\"\n\n" +
		"/* file-scope variables from mon.c */\nextern uint16_t samples[8];\nint gain = 2;\n\n" +
		"int Scale(int v)\n{\n  return v * gain;\n}\n"

	assert.Equal(t, want, readOutput(t, fs, tgt)["Scale.c"])
}

func TestOrchestrator_Plan_DoesNotWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)

	tgt := target("Diag", "ReadX")
	plan := newOrchestrator(t, fs).Plan(context.Background(), tgt)

	require.Equal(t, m.Generated, plan.Status)

	var names []string
	for _, f := range plan.Files {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ReadX.c", "ReadX.h", "diag.h", "table.h"}, names)

	exists, err := afero.DirExists(fs, string(tgt.OutputDir("src")))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrchestrator_Process_ReadOnlyFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)

	readOnly := adapter.NewSourceFSAdapter(fs).ReadOnly()
	cache, err := adapter.NewSourceCache(readOnly, 8)
	require.NoError(t, err)

	orch := domain.NewOrchestrator(readOnly, cache, domain.DefaultLayout())
	result := orch.Process(context.Background(), target("Diag", "ReadX"))

	assert.Equal(t, m.Failed, result.Status)
	assert.Error(t, result.Err)
}

func TestOrchestrator_Plan_CanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newOrchestrator(t, fs).Plan(ctx, target("Diag", "ReadX"))

	assert.Equal(t, m.Failed, result.Status)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestOrchestrator_Locate(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, diagProject)

	orch := newOrchestrator(t, fs)

	found := orch.Locate(context.Background(), target("Diag", "ReadX"))
	assert.True(t, found.Found)
	assert.Equal(t, m.LanguageC, found.Language)
	assert.Equal(t, m.Path(projectRoot+"/code/Diag/platform/diag.c"), found.SourcePath)

	missing := orch.Locate(context.Background(), target("Diag", "Nope"))
	assert.False(t, missing.Found)
	assert.Empty(t, missing.SourcePath)
}
