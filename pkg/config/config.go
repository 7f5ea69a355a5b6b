// Package config holds the user configuration snapshot the generation engine
// consumes: author identity, the course registry, semester formatting, and
// per-document-kind section defaults. The engine copies the snapshot into
// each context at build time, so callers can mutate their live configuration
// without affecting in-flight generations.
package config

import (
	"fmt"
	"strings"
)

// SemesterFormat selects how semesters are rendered. The three named formats
// cover the common styles; any other non-empty value is treated as a custom
// pattern with {year}, {season}, {s}, and {yy} substitution tokens.
type SemesterFormat string

const (
	// SemesterYearSeason renders "2024 Spring".
	SemesterYearSeason SemesterFormat = "year-season"
	// SemesterSeasonYear renders "Spring 2024".
	SemesterSeasonYear SemesterFormat = "season-year"
	// SemesterShortForm renders "S24".
	SemesterShortForm SemesterFormat = "short"
)

// NotePreferences carries per-document-kind defaults.
type NotePreferences struct {
	IncludeDateInTitle bool     `yaml:"include_date_in_title"`
	LectureSections    []string `yaml:"lecture_sections"`
	AssignmentSections []string `yaml:"assignment_sections"`
}

// Paths names the directories the wider tool works in. The engine never
// reads or writes them; comprehensive validation only reports missing ones.
type Paths struct {
	TemplatesDir string `yaml:"templates_dir"`
	NotesDir     string `yaml:"notes_dir"`
}

// Config is the user configuration snapshot.
type Config struct {
	Author          string            `yaml:"author"`
	Courses         map[string]string `yaml:"courses,omitempty"`
	SemesterFormat  SemesterFormat    `yaml:"semester_format,omitempty"`
	TemplateVersion string            `yaml:"template_version,omitempty"`
	NotePreferences NotePreferences   `yaml:"note_preferences"`
	Paths           Paths             `yaml:"paths"`
}

// Default returns a snapshot with the stock section lists and formats.
func Default() Config {
	return Config{
		SemesterFormat:  SemesterYearSeason,
		TemplateVersion: "1.0.0",
		NotePreferences: NotePreferences{
			IncludeDateInTitle: true,
			LectureSections: []string{
				"Key Concepts",
				"Mathematical Framework",
				"Examples",
				"Important Points",
				"Questions & Follow-up",
				"Connections to Previous Material",
				"Next Class Preview",
			},
			AssignmentSections: []string{
				"Problem 1",
				"Problem 2",
				"Problem 3",
			},
		},
	}
}

// CourseName resolves a course id against the registry. Unknown ids yield an
// empty string rather than an error; the validator reports them as warnings.
func (c Config) CourseName(courseID string) string {
	return c.Courses[courseID]
}

// FormatSemester renders a semester according to the configured format.
func (c Config) FormatSemester(year int, spring bool) string {
	season := "Fall"
	short := "F"
	if spring {
		season = "Spring"
		short = "S"
	}

	switch c.SemesterFormat {
	case SemesterYearSeason, "":
		return fmt.Sprintf("%d %s", year, season)
	case SemesterSeasonYear:
		return fmt.Sprintf("%s %d", season, year)
	case SemesterShortForm:
		return fmt.Sprintf("%s%02d", short, year%100)
	default:
		replacer := strings.NewReplacer(
			"{year}", fmt.Sprintf("%d", year),
			"{season}", season,
			"{s}", short,
			"{yy}", fmt.Sprintf("%02d", year%100),
		)
		return replacer.Replace(string(c.SemesterFormat))
	}
}
