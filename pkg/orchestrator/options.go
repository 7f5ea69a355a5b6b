package orchestrator

import "github.com/goliatone/go-notegen/pkg/notes"

// ProcessingOptions control the pipeline stages a build runs through.
type ProcessingOptions struct {
	// ValidateBeforeBuild runs context validation ahead of resolution.
	ValidateBeforeBuild bool
	// ApplyTransformations evaluates the engine's variable transformation
	// rules before rendering.
	ApplyTransformations bool
	// IncludeDebugInfo records extra processing flags on the context metadata.
	IncludeDebugInfo bool
	// ValidationLevel selects the depth of the pre-build validation run.
	ValidationLevel notes.Level
	// FailOnValidationErrors aborts the build when validation finds errors.
	// The renderer is never invoked for an aborted build.
	FailOnValidationErrors bool
}

// DefaultProcessingOptions returns the stock pipeline settings: validate at
// standard depth without failing the build, apply transformations, no debug
// flags.
func DefaultProcessingOptions() ProcessingOptions {
	return ProcessingOptions{
		ValidateBeforeBuild:    true,
		ApplyTransformations:   true,
		IncludeDebugInfo:       false,
		ValidationLevel:        notes.LevelStandard,
		FailOnValidationErrors: false,
	}
}
