// Package controller provides output adapters for displaying generation results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// UI defines the interface for reporting progress and results.
// Implementations can use different output methods (plain text, coloured text).
type UI interface {
	DisplayRunInfo(ctx context.Context, root m.Path, targets int, threads int)
	DisplayTargetResult(ctx context.Context, result m.TargetResult)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayTargets(ctx context.Context, listings []m.TargetListing)
	DisplayDrift(ctx context.Context, drift []m.FileDrift)
	DisplayWatchInfo(ctx context.Context, roots []m.Path)
}

// NewUI returns the UI for cmd's output; colour is enabled on terminals.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewColorUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
