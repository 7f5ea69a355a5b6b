package notes

import (
	"fmt"
	"os"
)

// Severity ranks a validation issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Level selects how much validation runs. Levels are inclusive: Standard
// keeps everything Minimal checks plus lower severities, Comprehensive adds
// environment and configuration self-consistency checks.
type Level int

const (
	LevelMinimal Level = iota
	LevelStandard
	LevelComprehensive
)

func (l Level) String() string {
	switch l {
	case LevelMinimal:
		return "minimal"
	case LevelStandard:
		return "standard"
	case LevelComprehensive:
		return "comprehensive"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Issue is one validation finding. Issues are never deduplicated: every rule
// that fires produces its own entry.
type Issue struct {
	Severity   Severity
	Category   string
	Message    string
	Suggestion string
	Location   string
}

// ValidationResult collects the issues one validation run produced.
type ValidationResult struct {
	Issues []Issue
}

// HasErrors reports whether any issue is error severity.
func (r ValidationResult) HasErrors() bool {
	return r.ErrorCount() > 0
}

// HasWarnings reports whether any issue is warning severity.
func (r ValidationResult) HasWarnings() bool {
	return r.count(SeverityWarning) > 0
}

// ErrorCount counts error-severity issues.
func (r ValidationResult) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount counts warning-severity issues.
func (r ValidationResult) WarningCount() int {
	return r.count(SeverityWarning)
}

// IsClean reports whether no issues were recorded at all.
func (r ValidationResult) IsClean() bool {
	return len(r.Issues) == 0
}

func (r ValidationResult) count(severity Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// ValidateContext runs the checks for the requested level against a built
// context. Minimal retains only error-severity findings from the structural
// checks; Standard retains all severities; Comprehensive adds environment
// diagnostics (configured paths) and template-configuration self-consistency.
func ValidateContext(ctx *TemplateContext, level Level) ValidationResult {
	issues := structuralIssues(ctx)

	if level == LevelMinimal {
		var errs []Issue
		for _, issue := range issues {
			if issue.Severity == SeverityError {
				errs = append(errs, issue)
			}
		}
		return ValidationResult{Issues: errs}
	}

	if level == LevelComprehensive {
		issues = append(issues, environmentIssues(ctx)...)
		if ctx.TemplateConfig != nil {
			issues = append(issues, configIssues(ctx)...)
		}
	}

	return ValidationResult{Issues: issues}
}

func structuralIssues(ctx *TemplateContext) []Issue {
	var issues []Issue

	if ctx.Author == "" {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Category:   "context",
			Message:    "author name is empty",
			Suggestion: "set the author in the configuration",
		})
	}

	if ctx.CourseName == "" {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Category:   "context",
			Message:    fmt.Sprintf("course name not found for %q", ctx.CourseID),
			Suggestion: "add the course to the course registry",
		})
	}

	if ctx.EngineConfig.Validation.ValidateVariables {
		for _, name := range ctx.EngineConfig.Variables.BuiltinVariables {
			if _, ok := ctx.Variables[name]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Category: "variables",
					Message:  fmt.Sprintf("required variable %q is missing", name),
				})
			}
		}
	}

	return issues
}

// environmentIssues stats the configured paths. This is the only place the
// validator touches the filesystem, and it only reads, per the external
// interface contract.
func environmentIssues(ctx *TemplateContext) []Issue {
	var issues []Issue
	for _, dir := range []struct {
		label string
		path  string
	}{
		{label: "templates directory", path: ctx.Config.Paths.TemplatesDir},
		{label: "notes directory", path: ctx.Config.Paths.NotesDir},
	} {
		if dir.path == "" {
			continue
		}
		if _, err := os.Stat(dir.path); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: "environment",
				Message:  fmt.Sprintf("%s %q does not exist", dir.label, dir.path),
				Location: dir.path,
			})
		}
	}
	return issues
}

func configIssues(ctx *TemplateContext) []Issue {
	var issues []Issue
	tc := ctx.TemplateConfig

	seen := make(map[string]bool, len(tc.Templates))
	for _, def := range tc.Templates {
		if seen[def.Name] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Category: "configuration",
				Message:  fmt.Sprintf("duplicate template definition %q", def.Name),
			})
		}
		seen[def.Name] = true
	}

	for _, variant := range tc.Variants {
		if _, ok := tc.Definition(variant.Template); !ok {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "configuration",
				Message:    fmt.Sprintf("variant %q references unknown template %q", variant.Name, variant.Template),
				Suggestion: "fix the variant's template reference",
			})
		}
	}

	return issues
}
