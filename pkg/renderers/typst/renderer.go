// Package typst renders resolved documents as Typst source targeting a
// locally installed template package.
package typst

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/render"
)

// Renderer emits Typst source: a package import, a show rule invoking the
// resolved template function, and one heading per section.
type Renderer struct{}

// New creates a Typst renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "typst"
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "text/x-typst"
}

// Render implements render.Renderer. Output depends only on the document and
// options; identical inputs produce byte-identical Typst source.
func (r *Renderer) Render(_ context.Context, doc notes.ResolvedDocument, options render.RenderOptions) ([]byte, error) {
	tc := doc.Context.TemplateConfig
	if tc == nil {
		return nil, notes.ErrConfigurationAbsent
	}

	function := doc.Function()
	if function == "" {
		return nil, fmt.Errorf("typst: template %q declares no render function", doc.Definition.Name)
	}

	// The package declares its own version; the user-config template version
	// only fills in when the document omits one.
	version := tc.Metadata.Version
	if version == "" {
		version = doc.Context.TemplateVersion
	}

	parts := []string{
		fmt.Sprintf("#import %q:*", fmt.Sprintf("@local/%s:%s", tc.Metadata.Name, version)),
		showRule(function, doc),
	}
	for _, section := range doc.Sections() {
		parts = append(parts, sectionBlock(section, options.SectionPlaceholder))
	}

	return []byte(strings.Join(parts, "\n\n") + "\n"), nil
}

func showRule(function string, doc notes.ResolvedDocument) string {
	ctx := doc.Context
	created := ctx.Metadata.CreationDate

	params := []string{
		fmt.Sprintf("course: %q", ctx.CourseID),
		fmt.Sprintf("course-name: %q", ctx.CourseName),
		fmt.Sprintf("title: %q", ctx.Title),
		fmt.Sprintf("date: datetime(year: %d, month: %d, day: %d)", created.Year(), int(created.Month()), created.Day()),
		fmt.Sprintf("author: %q", ctx.Author),
		fmt.Sprintf("semester: %q", ctx.Semester),
	}

	var b strings.Builder
	b.WriteString("#show: ")
	b.WriteString(function)
	b.WriteString(".with(\n  ")
	b.WriteString(strings.Join(params, ",\n  "))
	b.WriteString("\n)")
	return b.String()
}

func sectionBlock(name, placeholder string) string {
	if placeholder == "" {
		return "= " + name
	}
	return "= " + name + "\n\n" + placeholder
}
