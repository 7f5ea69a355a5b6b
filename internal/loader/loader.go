// Package loader implements schema.Loader for disk and fs.FS sources.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-notegen/pkg/schema"
)

// Loader reads template configuration documents. File sources hit the OS
// filesystem; fs sources read from the configured fs.FS.
type Loader struct {
	fsys fs.FS
}

// Option configures the loader.
type Option func(*Loader)

// WithFS supplies the filesystem used for SourceKindFS sources.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// New creates a loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements schema.Loader.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return schema.Document{}, fmt.Errorf("loader: load cancelled: %w", err)
	}
	if src == nil {
		return schema.Document{}, fmt.Errorf("loader: source is required")
	}

	var (
		raw []byte
		err error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		raw, err = os.ReadFile(src.Location())
	case schema.SourceKindFS:
		if l.fsys == nil {
			return schema.Document{}, fmt.Errorf("loader: no filesystem configured for fs source %q", src.Location())
		}
		raw, err = fs.ReadFile(l.fsys, src.Location())
	default:
		return schema.Document{}, fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, fmt.Errorf("loader: read %s: %w", src.Location(), err)
	}

	doc, err := schema.NewDocument(src, raw)
	if err != nil {
		return schema.Document{}, fmt.Errorf("loader: wrap %s: %w", src.Location(), err)
	}
	return doc, nil
}
