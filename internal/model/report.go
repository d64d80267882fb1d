package model

// TargetStatus is the outcome of processing one test target.
type TargetStatus int

const (
	// Generated indicates the harness was written.
	Generated TargetStatus = iota
	// Missing indicates the function definition could not be located.
	Missing
	// Failed indicates an I/O error prevented generation.
	Failed
)

func (s TargetStatus) String() string {
	switch s {
	case Generated:
		return "generated"
	case Missing:
		return "missing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// TargetResult records what happened to a single test target.
type TargetResult struct {
	Target            TestTarget
	Status            TargetStatus
	SourcePath        Path
	DeclarationHeader Path
	HasDocComment     bool
	Files             []GeneratedFile
	Err               error
}

// Summary aggregates the results of one run.
type Summary struct {
	Processed int
	Generated int
	Missing   int
	Failed    int
	Results   []TargetResult
}

// Add folds a result into the summary totals.
func (s *Summary) Add(result TargetResult) {
	s.Processed++

	switch result.Status {
	case Generated:
		s.Generated++
	case Missing:
		s.Missing++
	case Failed:
		s.Failed++
	}

	s.Results = append(s.Results, result)
}
