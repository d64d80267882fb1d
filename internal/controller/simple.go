package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

type styler func(string) string

func plain(s string) string { return s }

func render(st lipgloss.Style) styler { return func(s string) string { return st.Render(s) } }

// SimpleUI implements UI by printing lines to the command's output.
type SimpleUI struct {
	cmd *cobra.Command

	good styler
	bad  styler
	warn styler
	dim  styler
}

// NewSimpleUI creates a new SimpleUI without colour.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, good: plain, bad: plain, warn: plain, dim: plain}
}

// NewColorUI creates a SimpleUI whose status tags are coloured with lipgloss.
func NewColorUI(cmd *cobra.Command) *SimpleUI {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:  cmd,
		good: render(r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)),
		bad:  render(r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)),
		warn: render(r.NewStyle().Foreground(lipgloss.Color("3"))),
		dim:  render(r.NewStyle().Faint(true)),
	}
}

// DisplayRunInfo reports how many targets are about to be processed.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, root m.Path, targets int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if threads > 1 {
		s.printf("%s\n", s.dim(fmt.Sprintf("Processing %d target(s) under %s with %d worker(s)", targets, root, threads)))
	}
}

// DisplayTargetResult prints one OK/MISS/FAIL line.
func (s *SimpleUI) DisplayTargetResult(ctx context.Context, result m.TargetResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch result.Status {
	case m.Generated:
		s.printf("%s %s <- %s\n", s.good("OK"), result.Target, result.SourcePath)
	case m.Missing:
		s.printf("%s %s\n", s.bad("MISS"), result.Target)
	default:
		s.printf("%s %s: %v\n", s.bad("FAIL"), result.Target, result.Err)
	}
}

// DisplaySummary prints the totals line.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	line := fmt.Sprintf("Done. processed: %d, generated: %d, missing: %d", summary.Processed, summary.Generated, summary.Missing)
	if summary.Failed > 0 {
		line += fmt.Sprintf(", failed: %d", summary.Failed)
	}

	s.printf("%s\n", line)
}

// DisplayTargets prints a table of discovered targets.
func (s *SimpleUI) DisplayTargets(ctx context.Context, listings []m.TargetListing) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderTargetTable(listings))
}

func renderTargetTable(listings []m.TargetListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Function", "Definition", "Source"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	found := 0

	for _, l := range listings {
		status := "missing"
		if l.Found {
			status = string(l.Language)
			found++
		}

		table.Append([]string{l.Target.Module.Name, l.Target.Function, status, string(l.SourcePath)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(listings)),
		"",
		fmt.Sprintf("%d found", found),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDrift prints every difference found by a check run.
func (s *SimpleUI) DisplayDrift(ctx context.Context, drift []m.FileDrift) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(drift) == 0 {
		s.printf("%s all harness directories are up to date\n", s.good("OK"))
		return
	}

	for _, d := range drift {
		s.printf("%s %s: %s (%s)\n", s.warn("STALE"), d.Target, d.Name, d.Kind)

		if d.Diff != "" {
			s.printf("%s", d.Diff)
		}
	}

	s.printf("%d file(s) out of date\n", len(drift))
}

// DisplayWatchInfo announces the watched directories.
func (s *SimpleUI) DisplayWatchInfo(ctx context.Context, roots []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.dim(fmt.Sprintf("Watching %d source tree(s), press Ctrl+C to stop", len(roots))))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
