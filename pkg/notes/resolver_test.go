package notes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/schema"
	"github.com/goliatone/go-notegen/pkg/testsupport"
)

func buildContext(t *testing.T, courseID string) *notes.TemplateContext {
	t.Helper()

	ctx, err := notes.NewContextBuilder().
		WithCourseID(courseID).
		WithConfig(testsupport.SampleConfig()).
		WithTemplateConfig(testsupport.SampleTemplateConfig()).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ctx
}

func TestResolveWithoutConfiguration(t *testing.T) {
	ctx, err := notes.NewContextBuilder().
		WithCourseID("01005").
		WithConfig(testsupport.SampleConfig()).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, err = notes.Resolve(ctx, notes.LectureReference())
	if !errors.Is(err, notes.ErrConfigurationAbsent) {
		t.Fatalf("error = %v, want ErrConfigurationAbsent", err)
	}
}

func TestResolveUnknownTemplate(t *testing.T) {
	ctx := buildContext(t, "01005")

	var notFound *notes.TemplateNotFoundError
	_, err := notes.Resolve(ctx, notes.NewReference("thesis"))
	if !errors.As(err, &notFound) || notFound.Name != "thesis" {
		t.Fatalf("error = %v, want template not found", err)
	}
}

func TestResolveImplicitVariantByMapping(t *testing.T) {
	// 01005 matches the 01xxx mapping entry, so the math-note variant applies.
	ctx := buildContext(t, "01005")

	doc, err := notes.Resolve(ctx, notes.LectureReference())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.Variant == nil || doc.Variant.Name != "math-note" {
		t.Fatalf("variant = %+v, want math-note", doc.Variant)
	}
	if ctx.Metadata.VariantUsed != "math-note" {
		t.Fatalf("VariantUsed = %q", ctx.Metadata.VariantUsed)
	}
	if diff := cmp.Diff([]string{"Theorems", "Proofs", "Examples"}, doc.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	// The variant declares no function override.
	if doc.Function() != "dtu-note" {
		t.Fatalf("function = %q", doc.Function())
	}
}

func TestResolveImplicitVariantFunctionOverride(t *testing.T) {
	ctx := buildContext(t, "02101")

	doc, err := notes.Resolve(ctx, notes.AssignmentReference())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.Variant == nil || doc.Variant.Name != "programming-assignment" {
		t.Fatalf("variant = %+v", doc.Variant)
	}
	if doc.Function() != "dtu-code-assignment" {
		t.Fatalf("function = %q", doc.Function())
	}
	// Additional sections append to the definition defaults.
	if diff := cmp.Diff([]string{"Problem 1", "Problem 2", "Code Listing"}, doc.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveBaseDefinitionWhenNoVariantApplies(t *testing.T) {
	// 25200 classifies as physics; no variant covers it.
	ctx := buildContext(t, "25200")

	doc, err := notes.Resolve(ctx, notes.LectureReference())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.Variant != nil {
		t.Fatalf("variant = %+v, want nil", doc.Variant)
	}
	if ctx.Metadata.VariantUsed != "" {
		t.Fatalf("VariantUsed = %q, want empty", ctx.Metadata.VariantUsed)
	}
	if diff := cmp.Diff([]string{"Key Concepts", "Examples"}, doc.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveExplicitVariantMissIsAnError(t *testing.T) {
	ctx := buildContext(t, "01005")

	var notFound *notes.VariantNotFoundError
	_, err := notes.Resolve(ctx, notes.LectureReference().WithVariant("physics-note"))
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want variant not found", err)
	}
	if notFound.Variant != "physics-note" || notFound.Template != "note" {
		t.Fatalf("error detail = %+v", notFound)
	}
}

func TestResolveExplicitVariantOnTemplateWithoutVariants(t *testing.T) {
	tc := testsupport.SampleTemplateConfig()
	tc.Variants = nil

	ctx, err := notes.NewContextBuilder().
		WithCourseID("01005").
		WithConfig(testsupport.SampleConfig()).
		WithTemplateConfig(tc).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var notFound *notes.VariantNotFoundError
	_, err = notes.Resolve(ctx, notes.LectureReference().WithVariant("anything"))
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want variant not found, never base-definition fallback", err)
	}
}

func TestResolveExplicitVariantIgnoresCourseType(t *testing.T) {
	// 25200 is physics, but an explicit request pins math-note anyway.
	ctx := buildContext(t, "25200")

	doc, err := notes.Resolve(ctx, notes.LectureReference().WithVariant("math-note"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.Variant == nil || doc.Variant.Name != "math-note" {
		t.Fatalf("variant = %+v", doc.Variant)
	}
}

func TestResolveFirstDeclaredVariantWins(t *testing.T) {
	tc := testsupport.SampleTemplateConfig()
	tc.Variants = append([]schema.TemplateVariant{
		{
			Name:             "eager-note",
			Template:         "note",
			CourseTypes:      []string{schema.CourseTypeAll},
			OverrideSections: []string{"First"},
		},
	}, tc.Variants...)

	ctx, err := notes.NewContextBuilder().
		WithCourseID("01005").
		WithConfig(testsupport.SampleConfig()).
		WithTemplateConfig(tc).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	doc, err := notes.Resolve(ctx, notes.LectureReference())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.Variant == nil || doc.Variant.Name != "eager-note" {
		t.Fatalf("variant = %+v, want first declared match", doc.Variant)
	}
}

func TestEffectiveCourseTypeFallsBackToClassification(t *testing.T) {
	tc := testsupport.SampleTemplateConfig()
	tc.CourseMapping = schema.NewCourseMapping()

	ctx, err := notes.NewContextBuilder().
		WithCourseID("01005").
		WithConfig(testsupport.SampleConfig()).
		WithTemplateConfig(tc).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := notes.EffectiveCourseType(ctx); got != "math" {
		t.Fatalf("EffectiveCourseType = %q, want baseline classification", got)
	}
}

func TestContextSectionsOverrideEverything(t *testing.T) {
	ctx, err := notes.NewContextBuilder().
		WithCourseID("01005").
		WithConfig(testsupport.SampleConfig()).
		WithTemplateConfig(testsupport.SampleTemplateConfig()).
		WithSections([]string{"Only This"}).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	doc, err := notes.Resolve(ctx, notes.LectureReference())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"Only This"}, doc.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}
