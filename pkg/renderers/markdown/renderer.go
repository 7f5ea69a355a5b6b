// Package markdown renders resolved documents as plain Markdown, a lighter
// alternative to the Typst renderer for preview and plain-text workflows.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/render"
)

// Renderer emits a Markdown document: title heading, a metadata list, and one
// second-level heading per section.
type Renderer struct{}

// New creates a Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "text/markdown"
}

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, doc notes.ResolvedDocument, options render.RenderOptions) ([]byte, error) {
	ctx := doc.Context

	meta := []string{
		fmt.Sprintf("- Course: %s", courseLine(ctx.CourseID, ctx.CourseName)),
		fmt.Sprintf("- Author: %s", ctx.Author),
		fmt.Sprintf("- Date: %s", ctx.Date),
		fmt.Sprintf("- Semester: %s", ctx.Semester),
	}

	parts := []string{
		"# " + ctx.Title,
		strings.Join(meta, "\n"),
	}
	for _, section := range doc.Sections() {
		block := "## " + section
		if options.SectionPlaceholder != "" {
			block += "\n\n" + options.SectionPlaceholder
		}
		parts = append(parts, block)
	}

	return []byte(strings.Join(parts, "\n\n") + "\n"), nil
}

func courseLine(id, name string) string {
	if name == "" {
		return id
	}
	return id + " " + name
}
