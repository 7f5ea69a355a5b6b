// Package testsupport provides shared fixtures and helpers for the engine's
// contract tests.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/schema"
)

// FixedTime is the clock instant shared by deterministic tests: a spring
// semester date so semester formatting is stable.
var FixedTime = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// SampleConfig returns a user configuration with a small course registry.
func SampleConfig() config.Config {
	cfg := config.Default()
	cfg.Author = "Test Author"
	cfg.Courses = map[string]string{
		"01005": "Mathematics 1",
		"02101": "Introductory Programming",
	}
	return cfg
}

// SampleTemplateConfig returns a template configuration exercising
// definitions, variants, and the course mapping.
func SampleTemplateConfig() schema.TemplateConfig {
	return schema.TemplateConfig{
		Metadata: schema.Metadata{
			Name:    "dtu-notes",
			Version: "1.2.0",
		},
		Templates: []schema.TemplateDefinition{
			{
				Name:            "note",
				Function:        "dtu-note",
				DefaultSections: []string{"Key Concepts", "Examples"},
				CourseTypes:     []string{"all"},
			},
			{
				Name:            "assignment",
				Function:        "dtu-assignment",
				DefaultSections: []string{"Problem 1", "Problem 2"},
				CourseTypes:     []string{"all"},
			},
		},
		Variants: []schema.TemplateVariant{
			{
				Name:             "math-note",
				Template:         "note",
				CourseTypes:      []string{"math"},
				OverrideSections: []string{"Theorems", "Proofs", "Examples"},
			},
			{
				Name:               "programming-assignment",
				Template:           "assignment",
				CourseTypes:        []string{"programming"},
				Function:           "dtu-code-assignment",
				AdditionalSections: []string{"Code Listing"},
			},
		},
		CourseMapping: schema.NewCourseMapping(
			schema.CourseMappingEntry{Pattern: "01xxx", CourseType: "math"},
			schema.CourseMappingEntry{Pattern: "02xxx", CourseType: "programming"},
		),
	}
}

// LoadTemplateConfig reads and parses a fixture file.
func LoadTemplateConfig(t *testing.T, path string) schema.TemplateConfig {
	t.Helper()

	tc, err := LoadTemplateConfigFromPath(path)
	if err != nil {
		t.Fatalf("load template config: %v", err)
	}
	return tc
}

// LoadTemplateConfigFromPath returns a parsed fixture without requiring
// testing.T, allowing callers to wire fixtures in setup functions.
func LoadTemplateConfigFromPath(path string) (schema.TemplateConfig, error) {
	if path == "" {
		return schema.TemplateConfig{}, errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.TemplateConfig{}, fmt.Errorf("testsupport: read fixture: %w", err)
	}
	tc, err := schema.ParseBytes(data)
	if err != nil {
		return schema.TemplateConfig{}, fmt.Errorf("testsupport: parse fixture: %w", err)
	}
	return tc, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteGolden writes data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
