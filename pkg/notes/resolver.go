package notes

import "github.com/goliatone/go-notegen/pkg/schema"

// ResolveDefinition finds the template definition a reference names.
func ResolveDefinition(ctx *TemplateContext, ref Reference) (schema.TemplateDefinition, error) {
	if ctx.TemplateConfig == nil {
		return schema.TemplateDefinition{}, ErrConfigurationAbsent
	}
	def, ok := ctx.TemplateConfig.Definition(ref.Name)
	if !ok {
		return schema.TemplateDefinition{}, &TemplateNotFoundError{Name: ref.Name}
	}
	return def, nil
}

// ResolveVariant picks the variant that applies to this generation, or nil
// when the base definition should be used.
//
// An explicit variant name must match both the template and the name; a miss
// is an error, never a silent fallback. Without an explicit name the variants
// are filtered to the definition and the effective course type (or the "all"
// sentinel) and the first declared match wins. No match is the common case
// and not an error.
func ResolveVariant(ctx *TemplateContext, def schema.TemplateDefinition, ref Reference) (*schema.TemplateVariant, error) {
	if ctx.TemplateConfig == nil {
		return nil, ErrConfigurationAbsent
	}

	if ref.Variant != "" {
		for _, variant := range ctx.TemplateConfig.Variants {
			if variant.Template == def.Name && variant.Name == ref.Variant {
				v := variant
				return &v, nil
			}
		}
		return nil, &VariantNotFoundError{Variant: ref.Variant, Template: def.Name}
	}

	courseType := EffectiveCourseType(ctx)
	for _, variant := range ctx.TemplateConfig.Variants {
		if variant.Template != def.Name {
			continue
		}
		if variant.AppliesTo(courseType) {
			v := variant
			return &v, nil
		}
	}
	return nil, nil
}

// EffectiveCourseType resolves the course type used for variant selection:
// the course mapping first (exact id, then first matching pattern in
// declaration order), falling back to the context's baseline classification.
func EffectiveCourseType(ctx *TemplateContext) string {
	if ctx.TemplateConfig != nil {
		if courseType, ok := ctx.TemplateConfig.CourseMapping.Resolve(ctx.CourseID); ok {
			return courseType
		}
	}
	return ctx.Metadata.CourseType
}

// Resolve runs definition and variant resolution in one step and records the
// chosen variant on the context metadata.
func Resolve(ctx *TemplateContext, ref Reference) (ResolvedDocument, error) {
	def, err := ResolveDefinition(ctx, ref)
	if err != nil {
		return ResolvedDocument{}, err
	}
	variant, err := ResolveVariant(ctx, def, ref)
	if err != nil {
		return ResolvedDocument{}, err
	}
	if variant != nil {
		ctx.Metadata.VariantUsed = variant.Name
	}
	return ResolvedDocument{Context: ctx, Definition: def, Variant: variant}, nil
}
