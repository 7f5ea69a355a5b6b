package render

// RenderOptions describe per-request data renderers can use to customise
// output without touching the resolution pipeline.
type RenderOptions struct {
	// SectionPlaceholder is emitted as the body of every generated section
	// heading. Empty by default, leaving the section for the user to fill.
	SectionPlaceholder string
}
