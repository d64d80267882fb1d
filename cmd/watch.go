package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cutgen.dev/pkg/cutgen/internal/domain"
)

const watchLongDescription = `Generate once, then keep watching the platform and configuration trees of
every module and regenerate the affected modules when sources change.
Stop with Ctrl+C.

` + rootHelp

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Regenerate harnesses when module sources change",
		Long:  watchLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{GenerateArgs: generateArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
