package notes

import "github.com/goliatone/go-notegen/pkg/schema"

// ResolvedDocument is the fully resolved input renderers consume: the
// context, the matched definition, and the selected variant (nil when the
// base definition applies).
type ResolvedDocument struct {
	Context    *TemplateContext
	Definition schema.TemplateDefinition
	Variant    *schema.TemplateVariant
}

// Function returns the render-function identifier to invoke: the variant's
// override when present, otherwise the definition's.
func (d ResolvedDocument) Function() string {
	if d.Variant != nil && d.Variant.Function != "" {
		return d.Variant.Function
	}
	return d.Definition.Function
}

// Sections resolves the section list for the document body. Context sections
// take precedence; otherwise variant override sections replace the defaults
// entirely, variant additional sections append to them, and the definition's
// default sections are the fallback, so the result is never empty as long as
// the definition declares defaults.
func (d ResolvedDocument) Sections() []string {
	if len(d.Context.Sections) > 0 {
		return cloneStrings(d.Context.Sections)
	}
	if d.Variant != nil {
		if len(d.Variant.OverrideSections) > 0 {
			return cloneStrings(d.Variant.OverrideSections)
		}
		if len(d.Variant.AdditionalSections) > 0 {
			sections := cloneStrings(d.Definition.DefaultSections)
			return append(sections, d.Variant.AdditionalSections...)
		}
	}
	return cloneStrings(d.Definition.DefaultSections)
}
