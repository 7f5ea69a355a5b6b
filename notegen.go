// Package notegen generates Typst note documents from configuration-driven
// templates. The root package re-exports the common types and offers
// one-call entry points; the full pipeline lives in pkg/orchestrator.
package notegen

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-notegen/internal/loader"
	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/orchestrator"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/schema"
)

// RenderOptions aliases render.RenderOptions for callers configuring output
// through the root package.
type RenderOptions = render.RenderOptions

// ProcessingOptions aliases orchestrator.ProcessingOptions.
type ProcessingOptions = orchestrator.ProcessingOptions

// Reference aliases notes.Reference.
type Reference = notes.Reference

// Request describes one generation call. Exactly one of Source, Document, or
// TemplateConfig supplies the template configuration; Source and Document go
// through the loader/parser stages first.
type Request struct {
	// Source locates the template configuration to load. FS is required for
	// fs-kind sources.
	Source schema.Source
	FS     fs.FS
	// Document supplies a pre-loaded configuration payload.
	Document *schema.Document
	// TemplateConfig supplies an already-parsed configuration.
	TemplateConfig *schema.TemplateConfig

	// Config is the user configuration; nil falls back to config.Default().
	Config *config.Config

	CourseID     string
	Title        string
	Template     string
	Variant      string
	Sections     []string
	Variables    map[string]string
	CustomFields map[string]string

	Renderer      render.Renderer
	RenderOptions render.RenderOptions
	Options       *orchestrator.ProcessingOptions
	Clock         notes.Clock
}

// NewTemplateBuilder exposes the fluent builder from the root package.
func NewTemplateBuilder() orchestrator.TemplateBuilder {
	return orchestrator.NewTemplateBuilder()
}

// DefaultProcessingOptions exposes the stock pipeline settings.
func DefaultProcessingOptions() orchestrator.ProcessingOptions {
	return orchestrator.DefaultProcessingOptions()
}

// Generate resolves the template configuration named by the request and runs
// the full pipeline, returning the rendered document.
func Generate(ctx context.Context, req Request) ([]byte, error) {
	builder, err := builderFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	return builder.Build(ctx)
}

// Validate builds the context for the request and runs validation without
// rendering anything.
func Validate(ctx context.Context, req Request) (notes.ValidationResult, error) {
	builder, err := builderFromRequest(ctx, req)
	if err != nil {
		return notes.ValidationResult{}, err
	}
	return builder.Validate()
}

func builderFromRequest(ctx context.Context, req Request) (orchestrator.TemplateBuilder, error) {
	tc, err := templateConfigFromRequest(ctx, req)
	if err != nil {
		return orchestrator.TemplateBuilder{}, err
	}

	cfg := config.Default()
	if req.Config != nil {
		cfg = *req.Config
	}

	builder := orchestrator.NewTemplateBuilder().
		ForCourse(req.CourseID).
		WithConfig(cfg).
		WithTemplateConfig(tc).
		UsingTemplate(req.Template)

	if req.Variant != "" {
		builder = builder.WithVariant(req.Variant)
	}
	if req.Title != "" {
		builder = builder.WithTitle(req.Title)
	}
	if req.Sections != nil {
		builder = builder.WithSections(req.Sections)
	}
	for key, value := range req.Variables {
		builder = builder.WithVariable(key, value)
	}
	for key, value := range req.CustomFields {
		builder = builder.WithCustomField(key, value)
	}
	if req.Clock != nil {
		builder = builder.WithClock(req.Clock)
	}
	if req.Renderer != nil {
		builder = builder.WithRenderer(req.Renderer)
	}
	builder = builder.WithRenderOptions(req.RenderOptions)
	if req.Options != nil {
		builder = builder.WithProcessingOptions(*req.Options)
	}
	return builder, nil
}

func templateConfigFromRequest(ctx context.Context, req Request) (schema.TemplateConfig, error) {
	switch {
	case req.TemplateConfig != nil:
		return *req.TemplateConfig, nil
	case req.Document != nil:
		return schema.Parse(*req.Document)
	case req.Source != nil:
		l := loader.New(loader.WithFS(req.FS))
		doc, err := l.Load(ctx, req.Source)
		if err != nil {
			return schema.TemplateConfig{}, err
		}
		return schema.Parse(doc)
	default:
		return schema.TemplateConfig{}, fmt.Errorf("notegen: request needs a source, document, or template config")
	}
}
