package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cutgen.dev/pkg/cutgen/internal/adapter"
	"cutgen.dev/pkg/cutgen/internal/domain/csource"
	m "cutgen.dev/pkg/cutgen/internal/model"
)

// Orchestrator runs the generation pipeline for one test target: collect and
// rewrite headers, locate the definition and declaration, synthesize the
// wrapper files, rewrite again and persist.
type Orchestrator interface {
	// Plan computes the target's output directory contents without writing.
	Plan(ctx context.Context, target m.TestTarget) m.TargetResult
	// Process clears the target's output directory and writes the plan.
	Process(ctx context.Context, target m.TestTarget) m.TargetResult
	// Locate reports where the target's definition would come from.
	Locate(ctx context.Context, target m.TestTarget) m.TargetListing
	// Invalidate forgets every source read so far.
	Invalidate()
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	reader    adapter.SourceReader
	locator   *Locator
	layout    Layout
}

// NewOrchestrator constructs an Orchestrator that reads module sources through
// reader and writes output through fsAdapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, reader adapter.SourceReader, layout Layout) Orchestrator {
	layout = layout.WithDefaults()

	return &orchestrator{
		fsAdapter: fsAdapter,
		reader:    reader,
		locator:   NewLocator(fsAdapter, reader, layout),
		layout:    layout,
	}
}

func (o *orchestrator) Plan(ctx context.Context, target m.TestTarget) m.TargetResult {
	result := m.TargetResult{Target: target}

	if err := ctx.Err(); err != nil {
		result.Status = m.Failed
		result.Err = err

		return result
	}

	headers := o.locator.CollectHeaders(target.Module, target.Function)
	o.rewriteHeaders(headers, target.Function)

	definition, err := o.locator.FindDefinition(target.Module, target.Function)
	if err != nil {
		slog.Debug("definition missing", "target", target.String(), "error", err)

		result.Status = m.Missing
		result.Err = err
		result.Files = headerFiles(headers)

		return result
	}

	declaration := o.locator.FindDeclaration(target.Module, target.Function)

	harness := Harness{
		Function:    target.Function,
		Definition:  definition,
		Declaration: declaration,
		Headers:     headers,
		Variables:   o.fileScopeVariables(definition),
	}

	// The synthesized header is never rewritten; only module headers are.
	files := harness.Files()
	o.rewriteGenerated(files, target.Function)

	result.Status = m.Generated
	result.SourcePath = definition.SourcePath
	result.DeclarationHeader = declaration.HeaderPath
	result.HasDocComment = declaration.DocComment != ""
	result.Files = files

	return result
}

func (o *orchestrator) rewriteHeaders(headers []m.HeaderFile, function string) {
	for i := range headers {
		headers[i].Content = csource.RewriteHeader(headers[i].Content, function, o.layout.KnownTypes)
	}
}

func (o *orchestrator) rewriteGenerated(files []m.GeneratedFile, function string) {
	for i := range files {
		name := files[i].Name
		if name == HarnessHeaderName(function) || name == HarnessSourceName(function) {
			continue
		}

		files[i].Content = csource.RewriteHeader(files[i].Content, function, o.layout.KnownTypes)
	}
}

func (o *orchestrator) fileScopeVariables(definition m.ExtractedDefinition) []string {
	if definition.Language != m.LanguageC || definition.SourcePath.Ext() != ".c" {
		return nil
	}

	text, ok := o.locator.readText(definition.SourcePath)
	if !ok {
		return nil
	}

	return csource.ExtractFileScopeVariables(text)
}

func headerFiles(headers []m.HeaderFile) []m.GeneratedFile {
	files := make([]m.GeneratedFile, 0, len(headers))
	for _, h := range headers {
		files = append(files, m.GeneratedFile{Name: h.FlattenedName, Content: h.Content})
	}

	return files
}

func (o *orchestrator) Process(ctx context.Context, target m.TestTarget) m.TargetResult {
	result := o.Plan(ctx, target)
	if result.Status == m.Failed {
		return result
	}

	if err := o.persist(target, result.Files); err != nil {
		slog.Error("Failed to write harness", "target", target.String(), "error", err)

		result.Status = m.Failed
		result.Err = errors.Join(result.Err, err)
	}

	return result
}

func (o *orchestrator) persist(target m.TestTarget, files []m.GeneratedFile) error {
	dir := target.OutputDir(o.layout.OutputDir)

	if err := o.fsAdapter.ClearDir(dir); err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}

	for _, f := range files {
		path := o.fsAdapter.JoinPath(string(dir), f.Name)
		if err := o.fsAdapter.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return nil
}

func (o *orchestrator) Locate(ctx context.Context, target m.TestTarget) m.TargetListing {
	listing := m.TargetListing{Target: target}

	if ctx.Err() != nil {
		return listing
	}

	definition, err := o.locator.FindDefinition(target.Module, target.Function)
	if err != nil {
		return listing
	}

	listing.Found = true
	listing.Language = definition.Language
	listing.SourcePath = definition.SourcePath

	return listing
}

func (o *orchestrator) Invalidate() {
	o.reader.Purge()
}
