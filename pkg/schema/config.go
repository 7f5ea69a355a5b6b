package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Metadata describes the template package a configuration document belongs
// to. Name and Version feed the generated import statement.
type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	Repository  string `yaml:"repository,omitempty"`
	Author      string `yaml:"author,omitempty"`
	License     string `yaml:"license,omitempty"`
}

// TemplateDefinition is a named, reusable document skeleton. Function is the
// identifier of the render function the generated document invokes.
type TemplateDefinition struct {
	Name            string   `yaml:"name"`
	Function        string   `yaml:"function"`
	DefaultSections []string `yaml:"default_sections"`
	CourseTypes     []string `yaml:"course_types,omitempty"`
}

// TemplateVariant specialises a TemplateDefinition for specific course types.
// Template must reference an existing definition name; the reference is only
// checked by comprehensive validation, not at decode time.
type TemplateVariant struct {
	Name               string   `yaml:"name"`
	Template           string   `yaml:"template"`
	CourseTypes        []string `yaml:"course_types"`
	Function           string   `yaml:"function,omitempty"`
	OverrideSections   []string `yaml:"override_sections,omitempty"`
	AdditionalSections []string `yaml:"additional_sections,omitempty"`
}

// CourseTypeAll is the sentinel course type that matches every course.
const CourseTypeAll = "all"

// AppliesTo reports whether the variant covers the given course type, either
// explicitly or through the "all" sentinel.
func (v TemplateVariant) AppliesTo(courseType string) bool {
	for _, ct := range v.CourseTypes {
		if ct == courseType || ct == CourseTypeAll {
			return true
		}
	}
	return false
}

// CourseMappingEntry associates one pattern (or exact course id) with a
// course-type label.
type CourseMappingEntry struct {
	Pattern    string
	CourseType string
}

// CourseMapping is an ordered association from course-id patterns to course
// types. YAML decodes it from a mapping node so declaration order survives;
// Resolve depends on that order when several patterns match the same id.
type CourseMapping struct {
	entries []CourseMappingEntry
}

// NewCourseMapping builds a mapping from explicit entries, mainly for tests
// and programmatic configuration.
func NewCourseMapping(entries ...CourseMappingEntry) CourseMapping {
	return CourseMapping{entries: append([]CourseMappingEntry(nil), entries...)}
}

// UnmarshalYAML decodes the mapping from a YAML mapping node, preserving the
// order keys appear in the source document.
func (m *CourseMapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: course_mapping must be a mapping, got %s", value.Tag)
	}
	entries := make([]CourseMappingEntry, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var pattern, courseType string
		if err := value.Content[i].Decode(&pattern); err != nil {
			return fmt.Errorf("schema: course_mapping key: %w", err)
		}
		if err := value.Content[i+1].Decode(&courseType); err != nil {
			return fmt.Errorf("schema: course_mapping value for %q: %w", pattern, err)
		}
		entries = append(entries, CourseMappingEntry{Pattern: pattern, CourseType: courseType})
	}
	m.entries = entries
	return nil
}

// MarshalYAML re-emits the mapping in declaration order.
func (m CourseMapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range m.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Pattern},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.CourseType},
		)
	}
	return node, nil
}

// Entries returns a copy of the mapping in declaration order.
func (m CourseMapping) Entries() []CourseMappingEntry {
	return append([]CourseMappingEntry(nil), m.entries...)
}

// Len reports the number of mapping entries.
func (m CourseMapping) Len() int {
	return len(m.entries)
}

// Resolve maps a course id to a course type. An entry whose pattern equals
// the id exactly wins over pattern matches; otherwise the first declared
// pattern that matches wins. The second return is false when nothing matched.
func (m CourseMapping) Resolve(courseID string) (string, bool) {
	for _, entry := range m.entries {
		if entry.Pattern == courseID {
			return entry.CourseType, true
		}
	}
	for _, entry := range m.entries {
		if MatchesCoursePattern(courseID, entry.Pattern) {
			return entry.CourseType, true
		}
	}
	return "", false
}

// MatchesCoursePattern reports whether a course id matches a fixed-length
// pattern where 'x' or 'X' acts as a single-character wildcard ("01xxx"
// matches "01005"). Patterns of a different length never match.
func MatchesCoursePattern(courseID, pattern string) bool {
	if len(courseID) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		p := pattern[i]
		if p == 'x' || p == 'X' {
			continue
		}
		if p != courseID[i] {
			return false
		}
	}
	return true
}

// VariableConfig lists the builtin variable names every context must carry
// and the transformation rules applied before rendering.
type VariableConfig struct {
	BuiltinVariables []string             `yaml:"builtin_variables,omitempty"`
	Transformations  []TransformationRule `yaml:"transformations,omitempty"`
}

// TransformationRule rewrites one context variable. Template is a template
// expression evaluated against the full variable map; the result replaces the
// variable's value.
type TransformationRule struct {
	Variable string `yaml:"variable"`
	Template string `yaml:"template"`
}

// ValidationConfig toggles engine-level validation behaviour.
type ValidationConfig struct {
	ValidateVariables bool `yaml:"validate_variables,omitempty"`
}

// EngineConfig carries processing rules for the generation engine.
type EngineConfig struct {
	Variables  VariableConfig   `yaml:"variables,omitempty"`
	Validation ValidationConfig `yaml:"validation,omitempty"`
}

// TemplateConfig is the parsed template configuration document: package
// metadata, template definitions, optional variants, an ordered course
// mapping, and optional engine rules. The engine treats it purely as an
// in-memory value; loading lives behind the Loader interface.
type TemplateConfig struct {
	Metadata      Metadata             `yaml:"metadata"`
	Templates     []TemplateDefinition `yaml:"templates"`
	Variants      []TemplateVariant    `yaml:"variants,omitempty"`
	CourseMapping CourseMapping        `yaml:"course_mapping,omitempty"`
	Engine        *EngineConfig        `yaml:"engine,omitempty"`
}

// Definition returns the template definition with the given name.
func (c TemplateConfig) Definition(name string) (TemplateDefinition, bool) {
	for _, def := range c.Templates {
		if def.Name == name {
			return def, true
		}
	}
	return TemplateDefinition{}, false
}

// VariantsFor returns the variants declared for a template definition, in
// declaration order.
func (c TemplateConfig) VariantsFor(template string) []TemplateVariant {
	var out []TemplateVariant
	for _, variant := range c.Variants {
		if variant.Template == template {
			out = append(out, variant)
		}
	}
	return out
}

// EngineOrDefault returns the engine configuration, or a zero value when the
// document omitted the engine block.
func (c TemplateConfig) EngineOrDefault() EngineConfig {
	if c.Engine == nil {
		return EngineConfig{}
	}
	return *c.Engine
}
