package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a template configuration document. It only guarantees the
// payload is well-formed YAML with the expected shape; semantic checks such
// as variant references belong to the validator.
func Parse(doc Document) (TemplateConfig, error) {
	var cfg TemplateConfig
	if err := yaml.Unmarshal(doc.Raw(), &cfg); err != nil {
		return TemplateConfig{}, fmt.Errorf("schema: parse %s: %w", doc.Location(), err)
	}
	return cfg, nil
}

// ParseBytes decodes a template configuration payload that did not come from
// a loader, e.g. embedded fixtures.
func ParseBytes(raw []byte) (TemplateConfig, error) {
	var cfg TemplateConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return TemplateConfig{}, fmt.Errorf("schema: parse document: %w", err)
	}
	return cfg, nil
}
