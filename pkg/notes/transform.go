package notes

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// ApplyTransformations rewrites context variables according to the engine
// configuration. Each rule's template is evaluated against the full variable
// map and the result replaces the named variable. Rules naming a variable the
// context does not carry are skipped and recorded in the processing flags;
// a malformed template is an error.
func (c *TemplateContext) ApplyTransformations() error {
	for _, rule := range c.EngineConfig.Variables.Transformations {
		if rule.Variable == "" || rule.Template == "" {
			continue
		}
		if _, ok := c.Variables[rule.Variable]; !ok {
			c.Metadata.ProcessingFlags = append(c.Metadata.ProcessingFlags, "transform-skipped:"+rule.Variable)
			continue
		}

		tmpl, err := pongo2.FromString(rule.Template)
		if err != nil {
			return fmt.Errorf("notes: parse transformation for %q: %w", rule.Variable, err)
		}

		data := make(pongo2.Context, len(c.Variables))
		for key, value := range c.Variables {
			data[key] = value
		}

		out, err := tmpl.Execute(data)
		if err != nil {
			return fmt.Errorf("notes: apply transformation for %q: %w", rule.Variable, err)
		}

		c.Variables[rule.Variable] = out
		c.Metadata.ProcessingFlags = append(c.Metadata.ProcessingFlags, "transformed:"+rule.Variable)
	}
	return nil
}
