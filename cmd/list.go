package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cutgen.dev/pkg/cutgen/internal/domain"
)

const listLongDescription = `List the test targets of every module and where each function definition
would be taken from. Nothing is written.

` + rootHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List test targets and their definitions",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.List(cmd.Context(), domain.ListArgs{
				Root:    rootPath(args),
				Modules: viper.GetStringSlice(moduleConfigKey),
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
