package model

// DriftKind classifies how a generated file differs from what is on disk.
type DriftKind string

const (
	// DriftMissing means the file would be generated but does not exist.
	DriftMissing DriftKind = "missing"
	// DriftChanged means the file exists with different content.
	DriftChanged DriftKind = "changed"
	// DriftExtra means the file exists but would not be generated.
	DriftExtra DriftKind = "extra"
)

// FileDrift is one difference between a target's output directory and the
// content a fresh run would produce.
type FileDrift struct {
	Target TestTarget
	Name   string
	Kind   DriftKind
	// Diff is a unified diff for changed files.
	Diff string
}

// TargetListing describes a discovered target without generating anything.
type TargetListing struct {
	Target     TestTarget
	Found      bool
	Language   Language
	SourcePath Path
}
