package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// ReportStore persists run summaries.
type ReportStore interface {
	SaveReport(path m.Path, summary m.Summary) error
}

type runReport struct {
	Processed int            `yaml:"processed"`
	Generated int            `yaml:"generated"`
	Missing   int            `yaml:"missing"`
	Failed    int            `yaml:"failed"`
	Targets   []targetReport `yaml:"targets"`
}

type targetReport struct {
	Module      string   `yaml:"module"`
	Function    string   `yaml:"function"`
	Dir         string   `yaml:"dir"`
	Status      string   `yaml:"status"`
	Source      string   `yaml:"source,omitempty"`
	Declaration string   `yaml:"declaration,omitempty"`
	DocComment  bool     `yaml:"doc_comment,omitempty"`
	Files       []string `yaml:"files,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

// YAMLReportStore writes summaries as YAML documents.
type YAMLReportStore struct {
	fs SourceFSAdapter
}

// NewYAMLReportStore creates a report store writing through fs.
func NewYAMLReportStore(fs SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReport writes summary to path.
func (s *YAMLReportStore) SaveReport(path m.Path, summary m.Summary) error {
	report := runReport{
		Processed: summary.Processed,
		Generated: summary.Generated,
		Missing:   summary.Missing,
		Failed:    summary.Failed,
		Targets:   make([]targetReport, 0, len(summary.Results)),
	}

	for _, r := range summary.Results {
		entry := targetReport{
			Module:      r.Target.Module.Name,
			Function:    r.Target.Function,
			Dir:         string(r.Target.Dir),
			Status:      r.Status.String(),
			Source:      string(r.SourcePath),
			Declaration: string(r.DeclarationHeader),
			DocComment:  r.HasDocComment,
		}

		for _, f := range r.Files {
			entry.Files = append(entry.Files, f.Name)
		}

		if r.Err != nil {
			entry.Error = r.Err.Error()
		}

		report.Targets = append(report.Targets, entry)
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
