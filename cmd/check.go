package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cutgen.dev/pkg/cutgen/internal/domain"
)

const checkLongDescription = `Run the whole generation in memory and compare it with the src/ directories
on disk. Stale, missing and unexpected files are reported with a unified
diff, and the command fails if anything differs. Nothing is written.

` + rootHelp

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Verify generated harnesses are up to date",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkWorkflow.Check(cmd.Context(), domain.CheckArgs{
				Root:    rootPath(args),
				Modules: viper.GetStringSlice(moduleConfigKey),
				Threads: viper.GetInt(runParallelConfigKey),
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
