package notes

import (
	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/schema"
)

type kv struct {
	key   string
	value string
}

// ContextBuilder accumulates inputs for a TemplateContext. It is an immutable
// value: every With* method returns a modified copy, and Build constructs the
// context in a single pass, so a builder can be stored and reused without
// hidden aliasing.
type ContextBuilder struct {
	courseID       string
	cfg            *config.Config
	templateConfig *schema.TemplateConfig
	title          *string
	sections       []string
	hasSections    bool
	variables      []kv
	customFields   []kv
	clock          Clock
}

// NewContextBuilder returns an empty builder.
func NewContextBuilder() ContextBuilder {
	return ContextBuilder{}
}

// WithCourseID sets the mandatory course id.
func (b ContextBuilder) WithCourseID(courseID string) ContextBuilder {
	b.courseID = courseID
	return b
}

// WithConfig supplies the mandatory user configuration snapshot.
func (b ContextBuilder) WithConfig(cfg config.Config) ContextBuilder {
	snapshot := cloneConfig(cfg)
	b.cfg = &snapshot
	return b
}

// WithTemplateConfig supplies the template configuration document.
func (b ContextBuilder) WithTemplateConfig(tc schema.TemplateConfig) ContextBuilder {
	snapshot := cloneTemplateConfig(tc)
	b.templateConfig = &snapshot
	return b
}

// WithTitle sets the document title.
func (b ContextBuilder) WithTitle(title string) ContextBuilder {
	b.title = &title
	return b
}

// WithSections overrides the sections emitted into the document body.
func (b ContextBuilder) WithSections(sections []string) ContextBuilder {
	b.sections = cloneStrings(sections)
	b.hasSections = true
	return b
}

// WithVariable adds a substitution variable. Caller variables win over the
// seeded builtins on key collision.
func (b ContextBuilder) WithVariable(key, value string) ContextBuilder {
	b.variables = appendPair(b.variables, key, value)
	return b
}

// WithCustomField adds a free-form field carried on the context.
func (b ContextBuilder) WithCustomField(key, value string) ContextBuilder {
	b.customFields = appendPair(b.customFields, key, value)
	return b
}

// WithClock overrides the wall clock, mainly for tests.
func (b ContextBuilder) WithClock(clock Clock) ContextBuilder {
	b.clock = clock
	return b
}

// Build assembles the context. Course id and configuration are mandatory;
// everything else falls back to defaults.
func (b ContextBuilder) Build() (*TemplateContext, error) {
	if b.courseID == "" {
		return nil, &MissingFieldError{Field: "course_id"}
	}
	if b.cfg == nil {
		return nil, &MissingFieldError{Field: "config"}
	}

	clock := b.clock
	if clock == nil {
		clock = SystemClock()
	}
	now := clock.Now()

	cfg := cloneConfig(*b.cfg)
	courseName := cfg.CourseName(b.courseID)
	semester := cfg.FormatSemester(now.Year(), now.Month() <= 6)

	title := ""
	if b.title != nil {
		title = *b.title
	}

	variables := builtinVariables(b.courseID, title, cfg.Author, semester, now)
	for _, pair := range b.variables {
		variables[pair.key] = pair.value
	}

	customFields := make(map[string]string, len(b.customFields))
	for _, pair := range b.customFields {
		customFields[pair.key] = pair.value
	}

	ctx := &TemplateContext{
		CourseID:        b.courseID,
		CourseName:      courseName,
		Title:           title,
		Author:          cfg.Author,
		Date:            now.Format("2006-01-02"),
		Semester:        semester,
		TemplateVersion: cfg.TemplateVersion,
		Sections:        cloneStrings(b.sections),
		CustomFields:    customFields,
		Variables:       variables,
		Config:          cfg,
		Metadata: Metadata{
			CourseType:     classifyCourseType(b.courseID),
			CreationDate:   now,
			TemplateSource: "custom",
		},
	}

	if b.templateConfig != nil {
		snapshot := cloneTemplateConfig(*b.templateConfig)
		ctx.TemplateConfig = &snapshot
		ctx.EngineConfig = snapshot.EngineOrDefault()
	}

	return ctx, nil
}

func appendPair(pairs []kv, key, value string) []kv {
	out := make([]kv, len(pairs), len(pairs)+1)
	copy(out, pairs)
	return append(out, kv{key: key, value: value})
}

// LectureContext builds a context preloaded with the lecture defaults: the
// configured lecture sections and a dated title when none is supplied.
func LectureContext(courseID string, cfg config.Config, tc schema.TemplateConfig, customTitle string, clock Clock) (*TemplateContext, error) {
	ctx, err := NewContextBuilder().
		WithCourseID(courseID).
		WithConfig(cfg).
		WithTemplateConfig(tc).
		WithClock(clock).
		Build()
	if err != nil {
		return nil, err
	}

	title := customTitle
	if title == "" {
		if cfg.NotePreferences.IncludeDateInTitle {
			title = "Lecture - " + ctx.Metadata.CreationDate.Format("January 02, 2006")
		} else {
			title = "Lecture Notes"
		}
	}
	ctx.Title = title
	ctx.SetVariable(VarTitle, title)
	ctx.Sections = cloneStrings(cfg.NotePreferences.LectureSections)
	ctx.Metadata.TemplateSource = "builtin"
	return ctx, nil
}

// AssignmentContext builds a context preloaded with the assignment defaults
// and an assignment-type classification derived from the title.
func AssignmentContext(courseID, title string, cfg config.Config, tc schema.TemplateConfig, clock Clock) (*TemplateContext, error) {
	if title == "" {
		return nil, &MissingFieldError{Field: "title"}
	}
	ctx, err := NewContextBuilder().
		WithCourseID(courseID).
		WithConfig(cfg).
		WithTemplateConfig(tc).
		WithTitle(title).
		WithClock(clock).
		Build()
	if err != nil {
		return nil, err
	}

	ctx.Sections = cloneStrings(cfg.NotePreferences.AssignmentSections)
	ctx.Metadata.AssignmentType = classifyAssignmentType(title)
	ctx.Metadata.TemplateSource = "builtin"
	return ctx, nil
}
