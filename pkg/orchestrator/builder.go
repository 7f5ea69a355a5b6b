// Package orchestrator wires context building, validation, resolution, and
// rendering into a single fluent pipeline.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/renderers/typst"
	"github.com/goliatone/go-notegen/pkg/schema"
)

// TemplateBuilder is the fluent entry point for document generation. Like the
// context builder it is an immutable value: every With*/For* method returns a
// modified copy, so a configured builder can be shared and branched safely.
type TemplateBuilder struct {
	contextBuilder notes.ContextBuilder
	reference      notes.Reference
	hasReference   bool
	renderer       render.Renderer
	renderOptions  render.RenderOptions
	options        ProcessingOptions
	hasOptions     bool
}

// NewTemplateBuilder returns a builder with default processing options and
// the Typst renderer.
func NewTemplateBuilder() TemplateBuilder {
	return TemplateBuilder{
		contextBuilder: notes.NewContextBuilder(),
	}
}

// ForCourse sets the course id.
func (b TemplateBuilder) ForCourse(courseID string) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithCourseID(courseID)
	return b
}

// WithConfig supplies the user configuration.
func (b TemplateBuilder) WithConfig(cfg config.Config) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithConfig(cfg)
	return b
}

// WithTemplateConfig supplies the template configuration document.
func (b TemplateBuilder) WithTemplateConfig(tc schema.TemplateConfig) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithTemplateConfig(tc)
	return b
}

// WithTitle sets the document title.
func (b TemplateBuilder) WithTitle(title string) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithTitle(title)
	return b
}

// WithSections overrides the generated section list.
func (b TemplateBuilder) WithSections(sections []string) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithSections(sections)
	return b
}

// WithVariable adds a substitution variable.
func (b TemplateBuilder) WithVariable(key, value string) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithVariable(key, value)
	return b
}

// WithCustomField adds a free-form context field.
func (b TemplateBuilder) WithCustomField(key, value string) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithCustomField(key, value)
	return b
}

// WithClock overrides the wall clock, mainly for tests.
func (b TemplateBuilder) WithClock(clock notes.Clock) TemplateBuilder {
	b.contextBuilder = b.contextBuilder.WithClock(clock)
	return b
}

// UsingTemplate selects the named template definition.
func (b TemplateBuilder) UsingTemplate(name string) TemplateBuilder {
	b.reference = notes.NewReference(name)
	b.hasReference = true
	return b
}

// UsingReference selects a full template reference, variant included.
func (b TemplateBuilder) UsingReference(ref notes.Reference) TemplateBuilder {
	b.reference = ref
	b.hasReference = true
	return b
}

// WithVariant pins an explicit variant. A variant that does not exist for the
// selected template fails the build rather than falling back.
func (b TemplateBuilder) WithVariant(variant string) TemplateBuilder {
	b.reference = b.reference.WithVariant(variant)
	return b
}

// WithRenderer swaps the output renderer.
func (b TemplateBuilder) WithRenderer(renderer render.Renderer) TemplateBuilder {
	b.renderer = renderer
	return b
}

// WithRenderOptions sets renderer options.
func (b TemplateBuilder) WithRenderOptions(options render.RenderOptions) TemplateBuilder {
	b.renderOptions = options
	return b
}

// WithProcessingOptions replaces the processing options wholesale.
func (b TemplateBuilder) WithProcessingOptions(options ProcessingOptions) TemplateBuilder {
	b.options = options
	b.hasOptions = true
	return b
}

// WithValidationLevel adjusts only the validation depth.
func (b TemplateBuilder) WithValidationLevel(level notes.Level) TemplateBuilder {
	options := b.effectiveOptions()
	options.ValidationLevel = level
	return b.WithProcessingOptions(options)
}

// FailOnValidationErrors makes error-severity findings abort the build.
func (b TemplateBuilder) FailOnValidationErrors() TemplateBuilder {
	options := b.effectiveOptions()
	options.FailOnValidationErrors = true
	return b.WithProcessingOptions(options)
}

func (b TemplateBuilder) effectiveOptions() ProcessingOptions {
	if b.hasOptions {
		return b.options
	}
	return DefaultProcessingOptions()
}

func (b TemplateBuilder) effectiveRenderer() render.Renderer {
	if b.renderer != nil {
		return b.renderer
	}
	return typst.New()
}

// Build runs the full pipeline and returns the rendered document. Validation
// and transformation stages run according to the processing options; when
// FailOnValidationErrors is set and validation finds errors, the build stops
// before resolution and the renderer is never called.
func (b TemplateBuilder) Build(ctx context.Context) ([]byte, error) {
	content, _, _, err := b.run(ctx)
	return content, err
}

// BuildWithValidation always validates, regardless of ValidateBeforeBuild,
// and returns the validation result and context summary alongside the
// content. Error gating still follows FailOnValidationErrors; an aborted
// build returns the result with nil content.
func (b TemplateBuilder) BuildWithValidation(ctx context.Context) ([]byte, notes.ValidationResult, notes.ContextSummary, error) {
	options := b.effectiveOptions()
	options.ValidateBeforeBuild = true
	content, tctx, result, err := b.WithProcessingOptions(options).run(ctx)

	var summary notes.ContextSummary
	if tctx != nil {
		summary = tctx.Summary()
	}
	return content, result, summary, err
}

// BuildWithMetadata returns the content together with the processing metadata
// and context summary. Stage gating is identical to Build.
func (b TemplateBuilder) BuildWithMetadata(ctx context.Context) ([]byte, notes.Metadata, notes.ContextSummary, error) {
	content, tctx, _, err := b.run(ctx)
	if err != nil {
		return nil, notes.Metadata{}, notes.ContextSummary{}, err
	}
	return content, tctx.Metadata, tctx.Summary(), nil
}

// Validate builds the context and runs validation only. The renderer and the
// resolution step are never touched.
func (b TemplateBuilder) Validate() (notes.ValidationResult, error) {
	tctx, err := b.contextBuilder.Build()
	if err != nil {
		return notes.ValidationResult{}, err
	}
	return notes.ValidateContext(tctx, b.effectiveOptions().ValidationLevel), nil
}

func (b TemplateBuilder) run(ctx context.Context) ([]byte, *notes.TemplateContext, notes.ValidationResult, error) {
	if !b.hasReference {
		return nil, nil, notes.ValidationResult{}, fmt.Errorf("orchestrator: no template selected")
	}

	options := b.effectiveOptions()

	tctx, err := b.contextBuilder.Build()
	if err != nil {
		return nil, nil, notes.ValidationResult{}, err
	}

	var result notes.ValidationResult
	if options.ValidateBeforeBuild {
		result = notes.ValidateContext(tctx, options.ValidationLevel)
		if options.IncludeDebugInfo {
			tctx.Metadata.ProcessingFlags = append(tctx.Metadata.ProcessingFlags,
				fmt.Sprintf("validated:%s", options.ValidationLevel))
		}
		if options.FailOnValidationErrors && result.HasErrors() {
			return nil, tctx, result, &notes.ValidationFailedError{Errors: result.ErrorCount()}
		}
	}

	if options.ApplyTransformations {
		if err := tctx.ApplyTransformations(); err != nil {
			return nil, tctx, result, err
		}
	}

	doc, err := notes.Resolve(tctx, b.reference)
	if err != nil {
		return nil, tctx, result, err
	}

	renderer := b.effectiveRenderer()
	if options.IncludeDebugInfo {
		tctx.Metadata.ProcessingFlags = append(tctx.Metadata.ProcessingFlags, "renderer:"+renderer.Name())
	}

	content, err := renderer.Render(ctx, doc, b.renderOptions)
	if err != nil {
		return nil, tctx, result, fmt.Errorf("orchestrator: render %s: %w", renderer.Name(), err)
	}
	return content, tctx, result, nil
}
