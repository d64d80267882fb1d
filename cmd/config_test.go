package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cutgen", configBaseName)
	assert.Equal(t, "cutgen.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "module", moduleFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "report", reportFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.modules", moduleConfigKey)
	assert.Equal(t, "report.file", reportConfigKey)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "CUTGEN", envPrefix)
	assert.Equal(t, ".cutgen.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestLayoutFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		layout := layoutFromConfig()

		assert.Equal(t, "code", layout.ModulesDir)
		assert.Equal(t, "platform", layout.PlatformDir)
		assert.Equal(t, "configuration", layout.ConfigurationDir)
		assert.Equal(t, "unitTests", layout.UnitTestsDir)
		assert.Equal(t, "TEST_", layout.TargetPrefix)
		assert.Equal(t, "src", layout.OutputDir)
		assert.True(t, layout.KnownTypes.Has("uint8_t"))
	})

	t.Run("overrides and extra known types", func(t *testing.T) {
		viper.Set(layoutModulesDirKey, "modules")
		viper.Set(layoutTargetPrefixKey, "UT_")
		viper.Set(knownTypesConfigKey, []string{"MyType", "Reg32"})
		t.Cleanup(func() {
			viper.Set(layoutModulesDirKey, "code")
			viper.Set(layoutTargetPrefixKey, "TEST_")
			viper.Set(knownTypesConfigKey, []string{})
		})

		layout := layoutFromConfig()

		assert.Equal(t, "modules", layout.ModulesDir)
		assert.Equal(t, "UT_", layout.TargetPrefix)
		assert.Equal(t, "platform", layout.PlatformDir)
		assert.True(t, layout.KnownTypes.Has("MyType"))
		assert.True(t, layout.KnownTypes.Has("Reg32"))
		assert.True(t, layout.KnownTypes.Has("int"))
	})
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, "absent.yaml"))

		assert.NoError(t, readConfig(v))
	})

	t.Run("no file in search path is ignored", func(t *testing.T) {
		v := viper.New()
		v.SetConfigName("cutgen")
		v.AddConfigPath(dir)

		assert.NoError(t, readConfig(v))
	})

	t.Run("valid file is loaded", func(t *testing.T) {
		path := filepath.Join(dir, "good.yaml")
		require.NoError(t, os.WriteFile(path, []byte("run:\n  parallel: 4\n"), 0o644))

		v := viper.New()
		v.SetConfigFile(path)

		require.NoError(t, readConfig(v))
		assert.Equal(t, 4, v.GetInt(runParallelConfigKey))
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("run: [unclosed\n"), 0o644))

		v := viper.New()
		v.SetConfigFile(path)

		assert.ErrorContains(t, readConfig(v), "read config")
	})
}
