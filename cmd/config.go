package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/domain"
	"cutgen.dev/pkg/cutgen/internal/domain/csource"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cutgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	moduleFlagName      = "module"
	runParallelFlagName = "parallel"
	reportFlagName      = "report"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	moduleConfigKey      = "run.modules"
	runParallelConfigKey = "run.parallel"
	reportConfigKey      = "report.file"
	cacheSizeConfigKey   = "cache.size"
	knownTypesConfigKey  = "rewrite.known_types"
	watchDebounceKey     = "watch.debounce"

	layoutModulesDirKey       = "layout.modules_dir"
	layoutPlatformDirKey      = "layout.platform_dir"
	layoutConfigurationDirKey = "layout.configuration_dir"
	layoutUnitTestsDirKey     = "layout.unit_tests_dir"
	layoutTargetPrefixKey     = "layout.target_prefix"
	layoutOutputDirKey        = "layout.output_dir"

	defaultRunParallel = 1

	envPrefix = "CUTGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cutgen.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	layout := domain.DefaultLayout()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(moduleConfigKey, []string{})
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(reportConfigKey, "")
	viper.SetDefault(cacheSizeConfigKey, adapter.DefaultSourceCacheSize)
	viper.SetDefault(knownTypesConfigKey, []string{})
	viper.SetDefault(watchDebounceKey, adapter.DefaultWatchDebounce.String())

	viper.SetDefault(layoutModulesDirKey, layout.ModulesDir)
	viper.SetDefault(layoutPlatformDirKey, layout.PlatformDir)
	viper.SetDefault(layoutConfigurationDirKey, layout.ConfigurationDir)
	viper.SetDefault(layoutUnitTestsDirKey, layout.UnitTestsDir)
	viper.SetDefault(layoutTargetPrefixKey, layout.TargetPrefix)
	viper.SetDefault(layoutOutputDirKey, layout.OutputDir)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := readConfig(viper.GetViper()); err != nil {
		slog.Warn("Ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

// readConfig loads the config file into v. A missing file is not an error.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config: %w", err)
}

// layoutFromConfig builds the project layout from configuration. Extra
// known types extend the built-in whitelist.
func layoutFromConfig() domain.Layout {
	known := csource.DefaultKnownTypes().Names()
	known = append(known, viper.GetStringSlice(knownTypesConfigKey)...)

	return domain.Layout{
		ModulesDir:       viper.GetString(layoutModulesDirKey),
		PlatformDir:      viper.GetString(layoutPlatformDirKey),
		ConfigurationDir: viper.GetString(layoutConfigurationDirKey),
		UnitTestsDir:     viper.GetString(layoutUnitTestsDirKey),
		TargetPrefix:     viper.GetString(layoutTargetPrefixKey),
		OutputDir:        viper.GetString(layoutOutputDirKey),
		KnownTypes:       csource.NewTypeSet(known...),
	}.WithDefaults()
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
