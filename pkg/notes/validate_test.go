package notes_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/schema"
	"github.com/goliatone/go-notegen/pkg/testsupport"
)

type validationInputs struct {
	CourseID       string
	Config         config.Config
	TemplateConfig schema.TemplateConfig
}

func validationContext(t *testing.T, mutate func(*validationInputs)) *notes.TemplateContext {
	t.Helper()

	in := validationInputs{
		CourseID:       "01005",
		Config:         testsupport.SampleConfig(),
		TemplateConfig: testsupport.SampleTemplateConfig(),
	}
	if mutate != nil {
		mutate(&in)
	}

	ctx, err := notes.NewContextBuilder().
		WithCourseID(in.CourseID).
		WithConfig(in.Config).
		WithTemplateConfig(in.TemplateConfig).
		WithClock(notes.ClockAt(testsupport.FixedTime)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ctx
}

func TestValidateCleanContext(t *testing.T) {
	ctx := validationContext(t, nil)
	result := notes.ValidateContext(ctx, notes.LevelStandard)
	if !result.IsClean() {
		t.Fatalf("issues = %+v, want clean", result.Issues)
	}
}

func TestValidateStandardReportsWarnings(t *testing.T) {
	ctx := validationContext(t, func(in *validationInputs) {
		in.Config.Author = ""
		in.CourseID = "99999" // not in the course registry
	})

	result := notes.ValidateContext(ctx, notes.LevelStandard)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %+v", result.Issues)
	}
	if result.WarningCount() != 2 {
		t.Fatalf("warning count = %d, issues = %+v", result.WarningCount(), result.Issues)
	}
}

func TestValidateMinimalDropsWarnings(t *testing.T) {
	ctx := validationContext(t, func(in *validationInputs) {
		in.Config.Author = ""
	})

	result := notes.ValidateContext(ctx, notes.LevelMinimal)
	if !result.IsClean() {
		t.Fatalf("minimal kept non-errors: %+v", result.Issues)
	}
}

func TestValidateMissingBuiltinVariables(t *testing.T) {
	ctx := validationContext(t, func(in *validationInputs) {
		in.TemplateConfig.Engine = &schema.EngineConfig{
			Variables: schema.VariableConfig{
				BuiltinVariables: []string{"course_id", "title", "campus"},
			},
			Validation: schema.ValidationConfig{ValidateVariables: true},
		}
	})

	result := notes.ValidateContext(ctx, notes.LevelMinimal)
	if result.ErrorCount() != 1 {
		t.Fatalf("error count = %d, issues = %+v", result.ErrorCount(), result.Issues)
	}
	issue := result.Issues[0]
	if issue.Category != "variables" || issue.Severity != notes.SeverityError {
		t.Fatalf("issue = %+v", issue)
	}
}

func TestValidateComprehensiveEnvironment(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")

	ctx := validationContext(t, func(in *validationInputs) {
		in.Config.Paths.TemplatesDir = existing
		in.Config.Paths.NotesDir = missing
	})

	result := notes.ValidateContext(ctx, notes.LevelComprehensive)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %+v", result.Issues)
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Category == "environment" && issue.Location == missing {
			found = true
		}
		if issue.Category == "environment" && issue.Location == existing {
			t.Fatalf("existing path reported missing: %+v", issue)
		}
	}
	if !found {
		t.Fatalf("missing path not reported: %+v", result.Issues)
	}
}

func TestValidateComprehensiveConfigConsistency(t *testing.T) {
	ctx := validationContext(t, func(in *validationInputs) {
		in.TemplateConfig.Templates = append(in.TemplateConfig.Templates, schema.TemplateDefinition{
			Name:     "note", // duplicate
			Function: "dtu-note-2",
		})
		in.TemplateConfig.Variants = append(in.TemplateConfig.Variants, schema.TemplateVariant{
			Name:     "orphan",
			Template: "no-such-template",
		})
	})

	result := notes.ValidateContext(ctx, notes.LevelComprehensive)
	if result.ErrorCount() != 2 {
		t.Fatalf("error count = %d, issues = %+v", result.ErrorCount(), result.Issues)
	}
	for _, issue := range result.Issues {
		if issue.Severity == notes.SeverityError && issue.Category != "configuration" {
			t.Fatalf("unexpected error category: %+v", issue)
		}
	}
}

func TestValidateStandardSkipsConfigConsistency(t *testing.T) {
	ctx := validationContext(t, func(in *validationInputs) {
		in.TemplateConfig.Variants = append(in.TemplateConfig.Variants, schema.TemplateVariant{
			Name:     "orphan",
			Template: "no-such-template",
		})
	})

	result := notes.ValidateContext(ctx, notes.LevelStandard)
	if result.HasErrors() {
		t.Fatalf("standard level ran configuration checks: %+v", result.Issues)
	}
}

func TestSeverityAndLevelStrings(t *testing.T) {
	if notes.SeverityError.String() != "error" || notes.SeverityWarning.String() != "warning" || notes.SeverityInfo.String() != "info" {
		t.Fatal("severity strings changed")
	}
	if notes.LevelMinimal.String() != "minimal" || notes.LevelStandard.String() != "standard" || notes.LevelComprehensive.String() != "comprehensive" {
		t.Fatal("level strings changed")
	}
}
