package config

import "testing"

func TestFormatSemester(t *testing.T) {
	cases := []struct {
		name   string
		format SemesterFormat
		year   int
		spring bool
		want   string
	}{
		{name: "year season spring", format: SemesterYearSeason, year: 2024, spring: true, want: "2024 Spring"},
		{name: "year season fall", format: SemesterYearSeason, year: 2024, spring: false, want: "2024 Fall"},
		{name: "empty defaults to year season", format: "", year: 2025, spring: true, want: "2025 Spring"},
		{name: "season year", format: SemesterSeasonYear, year: 2024, spring: false, want: "Fall 2024"},
		{name: "short spring", format: SemesterShortForm, year: 2024, spring: true, want: "S24"},
		{name: "short fall", format: SemesterShortForm, year: 2024, spring: false, want: "F24"},
		{name: "short single digit year", format: SemesterShortForm, year: 2009, spring: true, want: "S09"},
		{name: "custom pattern", format: "{season} term {yy}", year: 2024, spring: true, want: "Spring term 24"},
		{name: "custom with all tokens", format: "{s}{yy} ({year} {season})", year: 2026, spring: false, want: "F26 (2026 Fall)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{SemesterFormat: tc.format}
			if got := cfg.FormatSemester(tc.year, tc.spring); got != tc.want {
				t.Fatalf("FormatSemester(%d, %v) = %q, want %q", tc.year, tc.spring, got, tc.want)
			}
		})
	}
}

func TestCourseName(t *testing.T) {
	cfg := Config{Courses: map[string]string{"01005": "Mathematics 1"}}
	if got := cfg.CourseName("01005"); got != "Mathematics 1" {
		t.Fatalf("CourseName = %q", got)
	}
	if got := cfg.CourseName("99999"); got != "" {
		t.Fatalf("unknown course = %q, want empty", got)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SemesterFormat != SemesterYearSeason {
		t.Fatalf("semester format = %q", cfg.SemesterFormat)
	}
	if cfg.TemplateVersion == "" {
		t.Fatal("template version must not be empty")
	}
	if !cfg.NotePreferences.IncludeDateInTitle {
		t.Fatal("lectures include the date in the title by default")
	}
	if len(cfg.NotePreferences.LectureSections) == 0 || len(cfg.NotePreferences.AssignmentSections) == 0 {
		t.Fatal("default section lists must be populated")
	}
}

func TestParseBytesLayersOverDefaults(t *testing.T) {
	cfg, err := ParseBytes([]byte(`
author: Grete Hermann
courses:
  "01005": Mathematics 1
semester_format: short
`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	if cfg.Author != "Grete Hermann" {
		t.Fatalf("author = %q", cfg.Author)
	}
	if cfg.SemesterFormat != SemesterShortForm {
		t.Fatalf("semester format = %q", cfg.SemesterFormat)
	}
	// Omitted keys keep their defaults.
	if len(cfg.NotePreferences.LectureSections) == 0 {
		t.Fatal("lecture sections lost the default value")
	}
	if cfg.TemplateVersion == "" {
		t.Fatal("template version lost the default value")
	}
}

func TestParseBytesMalformed(t *testing.T) {
	if _, err := ParseBytes([]byte("author: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
