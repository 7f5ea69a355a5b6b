package render

import (
	"context"

	"github.com/goliatone/go-notegen/pkg/notes"
)

// Renderer converts a resolved document into output bytes (Typst source for
// the default renderer). Implementations must be pure: the same document and
// options always produce the same output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc notes.ResolvedDocument, options RenderOptions) ([]byte, error)
}
