package domain

import "errors"

var (
	// ErrModulesRootNotFound is returned when the project has no modules
	// directory. It is the only condition that aborts a whole run.
	ErrModulesRootNotFound = errors.New("modules root not found")
	// ErrDefinitionNotFound marks a target whose function is not defined in
	// its module.
	ErrDefinitionNotFound = errors.New("definition not found")
	// ErrMissingDefinitions is returned by a run in which at least one target
	// could not be generated.
	ErrMissingDefinitions = errors.New("missing definitions")
	// ErrHarnessDrift is returned by a check that found stale output.
	ErrHarnessDrift = errors.New("harness out of date")
)
