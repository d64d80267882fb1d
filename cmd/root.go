// Package cmd provides the root command and CLI setup for cutgen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/controller"
	"cutgen.dev/pkg/cutgen/internal/domain"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// Exit statuses of the CLI.
const (
	exitMissingDefinitions = 1
	exitModulesRootMissing = 2
)

var fsAdapter *adapter.LocalSourceFSAdapter
var sourceCache *adapter.SourceCache
var reportStore adapter.ReportStore
var sourceWatcher adapter.SourceWatcher
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var checkWorkflow domain.Workflow
var ui controller.UI

// moduleFilter restricts a run to the named modules.
var moduleFilter []string

// parallelFlag is the number of targets processed concurrently.
var parallelFlag int

// reportFlag is the path of the YAML run report.
var reportFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	layout := layoutFromConfig()

	fsAdapter = adapter.NewLocalSourceFSAdapter()

	cache, err := adapter.NewSourceCache(fsAdapter, viper.GetInt(cacheSizeConfigKey))
	cobra.CheckErr(err)

	sourceCache = cache
	reportStore = adapter.NewYAMLReportStore(fsAdapter)
	sourceWatcher = adapter.NewFSNotifyWatcher(viper.GetDuration(watchDebounceKey))
	orchestrator = domain.NewOrchestrator(fsAdapter, sourceCache, layout)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		sourceWatcher,
		ui,
		orchestrator,
		layout,
	)

	// check shares the cache but can never write.
	readOnly := fsAdapter.ReadOnly()
	checkWorkflow = domain.NewWorkflow(
		readOnly,
		reportStore,
		sourceWatcher,
		ui,
		domain.NewOrchestrator(readOnly, sourceCache, layout),
		layout,
	)
}

const rootHelp = `The root is the project directory holding the modules directory
(default: current directory). Layout, parallelism and logging can be set in
cutgen.yaml or through CUTGEN_* environment variables.`

const rootLongDescription = `Cutgen extracts C functions from their modules so they can be unit tested
in isolation. For every unitTests/TEST_<function> directory it copies the
module headers into src/, makes module-private variables reachable, and
writes <function>.c and <function>.h wrapping the extracted definition.

` + rootHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "cutgen [root]",
		Short:        "C unit-test harness generator",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Generate(cmd.Context(), generateArgs(args))
			return err
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&moduleFilter, moduleFlagName, "m", viper.GetStringSlice(moduleConfigKey), "only process the named module (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(moduleFlagName), moduleConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of targets processed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "write a YAML run report to this file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status: a missing
// modules directory is fatal, anything else (misses included) is 1.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrModulesRootNotFound) {
		return exitModulesRootMissing
	}

	return exitMissingDefinitions
}

func rootPath(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return m.Path(".")
	}

	return m.Path(args[0])
}

func generateArgs(args []string) domain.GenerateArgs {
	return domain.GenerateArgs{
		Root:    rootPath(args),
		Modules: viper.GetStringSlice(moduleConfigKey),
		Threads: viper.GetInt(runParallelConfigKey),
		Report:  m.Path(viper.GetString(reportConfigKey)),
	}
}
