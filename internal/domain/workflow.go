package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/controller"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// GenerateArgs selects what a generation run processes.
type GenerateArgs struct {
	Root m.Path
	// Modules restricts the run to the named modules; empty means all.
	Modules []string
	Threads int
	// Report, when set, is where the YAML run report is written.
	Report m.Path
}

// CheckArgs selects what a check run compares.
type CheckArgs struct {
	Root    m.Path
	Modules []string
	Threads int
}

// ListArgs selects what a list run reports.
type ListArgs struct {
	Root    m.Path
	Modules []string
}

// WatchArgs configures a watch session; every change regenerates the
// affected modules with the embedded GenerateArgs.
type WatchArgs struct {
	GenerateArgs
}

// Workflow defines the user-facing operations of the generator.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) (m.Summary, error)
	Check(ctx context.Context, args CheckArgs) ([]m.FileDrift, error)
	List(ctx context.Context, args ListArgs) ([]m.TargetListing, error)
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.SourceWatcher
	controller.UI
	Orchestrator

	layout Layout
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.SourceWatcher,
	ui controller.UI,
	orchestrator Orchestrator,
	layout Layout,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		SourceWatcher:   watcher,
		UI:              ui,
		Orchestrator:    orchestrator,
		layout:          layout.WithDefaults(),
	}
}

func (w *workflow) targets(root m.Path, only []string) ([]m.TestTarget, error) {
	modules, err := DiscoverModules(w.SourceFSAdapter, w.layout, root, only)
	if err != nil {
		return nil, err
	}

	return DiscoverTargets(w.SourceFSAdapter, w.layout, modules), nil
}

// runTargets applies fn to every target with at most threads running at
// once and returns the results in target order.
func runTargets[T any](ctx context.Context, targets []m.TestTarget, threads int, fn func(context.Context, m.TestTarget) T) ([]T, error) {
	results := make([]T, len(targets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(threads, 1))

	for i, target := range targets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = fn(groupCtx, target)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.Summary, error) {
	targets, err := w.targets(args.Root, args.Modules)
	if err != nil {
		slog.Error("Failed to discover targets", "root", args.Root, "error", err)
		return m.Summary{}, err
	}

	w.DisplayRunInfo(ctx, args.Root, len(targets), args.Threads)

	results, err := runTargets(ctx, targets, args.Threads, w.Process)
	if err != nil {
		return m.Summary{}, fmt.Errorf("generate: %w", err)
	}

	var summary m.Summary

	for _, result := range results {
		summary.Add(result)
		w.DisplayTargetResult(ctx, result)
	}

	w.DisplaySummary(ctx, summary)

	slog.Info("Generation finished",
		"root", args.Root,
		"processed", summary.Processed,
		"generated", summary.Generated,
		"missing", summary.Missing,
		"failed", summary.Failed)

	if args.Report != "" {
		if err := w.SaveReport(args.Report, summary); err != nil {
			return summary, fmt.Errorf("save report: %w", err)
		}
	}

	if summary.Missing > 0 || summary.Failed > 0 {
		return summary, fmt.Errorf("%w: %d missing, %d failed of %d targets",
			ErrMissingDefinitions, summary.Missing, summary.Failed, summary.Processed)
	}

	return summary, nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) ([]m.FileDrift, error) {
	targets, err := w.targets(args.Root, args.Modules)
	if err != nil {
		return nil, err
	}

	plans, err := runTargets(ctx, targets, args.Threads, w.Plan)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	var drift []m.FileDrift

	for _, plan := range plans {
		drift = append(drift, w.compare(plan)...)
	}

	w.DisplayDrift(ctx, drift)

	if len(drift) > 0 {
		return drift, fmt.Errorf("%w: %d file(s)", ErrHarnessDrift, len(drift))
	}

	return nil, nil
}

// compare diffs a planned output directory against the one on disk.
func (w *workflow) compare(plan m.TargetResult) []m.FileDrift {
	dir := plan.Target.OutputDir(w.layout.OutputDir)

	existing := map[string]bool{}

	if w.IsDir(dir) {
		entries, err := w.ReadDir(dir)
		if err != nil {
			slog.Warn("Failed to list output directory", "dir", dir, "error", err)
		}

		for _, e := range entries {
			existing[e.Name()] = true
		}
	}

	var drift []m.FileDrift

	for _, f := range plan.Files {
		if !existing[f.Name] {
			drift = append(drift, m.FileDrift{Target: plan.Target, Name: f.Name, Kind: m.DriftMissing})
			continue
		}

		delete(existing, f.Name)

		current, err := w.ReadFile(w.JoinPath(string(dir), f.Name))
		if err != nil {
			drift = append(drift, m.FileDrift{Target: plan.Target, Name: f.Name, Kind: m.DriftMissing})
			continue
		}

		if string(current) == f.Content {
			continue
		}

		drift = append(drift, m.FileDrift{
			Target: plan.Target,
			Name:   f.Name,
			Kind:   m.DriftChanged,
			Diff:   unifiedDiff(filepath.Join(w.layout.OutputDir, f.Name), string(current), f.Content),
		})
	}

	for _, e := range sortedKeys(existing) {
		drift = append(drift, m.FileDrift{Target: plan.Target, Name: e, Kind: m.DriftExtra})
	}

	return drift
}

func unifiedDiff(name, current, planned string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(planned),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		slog.Warn("Failed to diff", "file", name, "error", err)
		return ""
	}

	return diff
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func (w *workflow) List(ctx context.Context, args ListArgs) ([]m.TargetListing, error) {
	targets, err := w.targets(args.Root, args.Modules)
	if err != nil {
		return nil, err
	}

	listings := make([]m.TargetListing, 0, len(targets))
	for _, target := range targets {
		listings = append(listings, w.Locate(ctx, target))
	}

	w.DisplayTargets(ctx, listings)

	return listings, nil
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if _, err := w.Generate(ctx, args.GenerateArgs); err != nil && !errors.Is(err, ErrMissingDefinitions) {
		return err
	}

	modules, err := DiscoverModules(w.SourceFSAdapter, w.layout, args.Root, args.Modules)
	if err != nil {
		return err
	}

	var roots []m.Path
	for _, module := range modules {
		roots = append(roots, SourceRoots(w.SourceFSAdapter, w.layout, module)...)
	}

	w.DisplayWatchInfo(ctx, roots)

	modulesRoot := w.layout.ModulesRoot(args.Root)

	return w.SourceWatcher.Watch(ctx, roots, IsSourceFile, func(paths []m.Path) {
		affected := affectedModules(modulesRoot, paths)
		if len(affected) == 0 {
			return
		}

		slog.Info("Regenerating after change", "modules", strings.Join(affected, ","))

		run := args.GenerateArgs
		run.Modules = affected

		w.Invalidate()

		if _, err := w.Generate(ctx, run); err != nil && !errors.Is(err, ErrMissingDefinitions) {
			slog.Error("Regeneration failed", "modules", affected, "error", err)
		}
	})
}

// affectedModules maps changed file paths to the sorted names of the modules
// containing them.
func affectedModules(modulesRoot m.Path, paths []m.Path) []string {
	set := map[string]bool{}

	for _, p := range paths {
		rel, err := filepath.Rel(string(modulesRoot), string(p))
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}

		name, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
		set[name] = true
	}

	return sortedKeys(set)
}
