package notes

import (
	"time"

	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/schema"
)

// Builtin variable names every context carries before caller overrides.
const (
	VarCourseID = "course_id"
	VarTitle    = "title"
	VarAuthor   = "author"
	VarSemester = "semester"
	VarDate     = "date"
	VarYear     = "year"
)

// Metadata carries processing details recorded alongside a context.
type Metadata struct {
	CourseType      string
	AssignmentType  string
	CreationDate    time.Time
	TemplateSource  string
	VariantUsed     string
	ProcessingFlags []string
}

// TemplateContext holds everything one generation request needs: course and
// author details, the resolved semester, sections, substitution variables,
// and owned snapshots of both configurations. A context lives for exactly one
// generation call.
type TemplateContext struct {
	CourseID        string
	CourseName      string
	Title           string
	Author          string
	Date            string
	Semester        string
	TemplateVersion string
	Sections        []string
	CustomFields    map[string]string
	Variables       map[string]string

	Config         config.Config
	TemplateConfig *schema.TemplateConfig
	EngineConfig   schema.EngineConfig
	Metadata       Metadata
}

// SetVariable adds or replaces a substitution variable.
func (c *TemplateContext) SetVariable(key, value string) {
	if c.Variables == nil {
		c.Variables = make(map[string]string)
	}
	c.Variables[key] = value
}

// Variable returns a substitution variable and whether it is present.
func (c *TemplateContext) Variable(key string) (string, bool) {
	value, ok := c.Variables[key]
	return value, ok
}

// Summary condenses the context for debugging and reporting.
func (c *TemplateContext) Summary() ContextSummary {
	return ContextSummary{
		CourseID:      c.CourseID,
		CourseName:    c.CourseName,
		Title:         c.Title,
		CourseType:    c.Metadata.CourseType,
		SectionCount:  len(c.Sections),
		VariableCount: len(c.Variables),
		VariantUsed:   c.Metadata.VariantUsed,
	}
}

// ContextSummary is a compact view of a context, safe to log or print.
type ContextSummary struct {
	CourseID      string
	CourseName    string
	Title         string
	CourseType    string
	SectionCount  int
	VariableCount int
	VariantUsed   string
}

func builtinVariables(courseID, title, author, semester string, now time.Time) map[string]string {
	return map[string]string{
		VarCourseID: courseID,
		VarTitle:    title,
		VarAuthor:   author,
		VarSemester: semester,
		VarDate:     now.Format("2006-01-02"),
		VarYear:     now.Format("2006"),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneConfig(in config.Config) config.Config {
	out := in
	out.Courses = cloneStringMap(in.Courses)
	out.NotePreferences.LectureSections = cloneStrings(in.NotePreferences.LectureSections)
	out.NotePreferences.AssignmentSections = cloneStrings(in.NotePreferences.AssignmentSections)
	return out
}

func cloneTemplateConfig(in schema.TemplateConfig) schema.TemplateConfig {
	out := in
	out.Templates = make([]schema.TemplateDefinition, len(in.Templates))
	for i, def := range in.Templates {
		def.DefaultSections = cloneStrings(def.DefaultSections)
		def.CourseTypes = cloneStrings(def.CourseTypes)
		out.Templates[i] = def
	}
	if in.Variants != nil {
		out.Variants = make([]schema.TemplateVariant, len(in.Variants))
		for i, variant := range in.Variants {
			variant.CourseTypes = cloneStrings(variant.CourseTypes)
			variant.OverrideSections = cloneStrings(variant.OverrideSections)
			variant.AdditionalSections = cloneStrings(variant.AdditionalSections)
			out.Variants[i] = variant
		}
	}
	out.CourseMapping = schema.NewCourseMapping(in.CourseMapping.Entries()...)
	if in.Engine != nil {
		engine := *in.Engine
		engine.Variables.BuiltinVariables = cloneStrings(in.Engine.Variables.BuiltinVariables)
		engine.Variables.Transformations = append([]schema.TransformationRule(nil), in.Engine.Variables.Transformations...)
		out.Engine = &engine
	}
	return out
}
