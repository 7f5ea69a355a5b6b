package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/goliatone/go-notegen/pkg/schema"
)

// promptGenerate fills missing generate flags through interactive prompts.
func promptGenerate(flags *generateFlags, tc schema.TemplateConfig) error {
	if flags.course == "" {
		prompt := &survey.Input{
			Message: "Course id:",
			Help:    "Numeric course identifier, e.g. 01005",
		}
		if err := survey.AskOne(prompt, &flags.course, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("prompt course: %w", err)
		}
	}

	if flags.template == "" || flags.template == "note" {
		names := make([]string, 0, len(tc.Templates))
		for _, def := range tc.Templates {
			names = append(names, def.Name)
		}
		if len(names) > 0 {
			prompt := &survey.Select{
				Message: "Template:",
				Options: names,
			}
			if err := survey.AskOne(prompt, &flags.template); err != nil {
				return fmt.Errorf("prompt template: %w", err)
			}
		}
	}

	if flags.title == "" {
		prompt := &survey.Input{
			Message: "Title (empty uses the template default):",
		}
		if err := survey.AskOne(prompt, &flags.title); err != nil {
			return fmt.Errorf("prompt title: %w", err)
		}
	}

	if flags.variant == "" {
		variants := tc.VariantsFor(flags.template)
		if len(variants) > 0 {
			options := []string{"(automatic)"}
			for _, variant := range variants {
				options = append(options, variant.Name)
			}
			choice := options[0]
			prompt := &survey.Select{
				Message: "Variant:",
				Options: options,
			}
			if err := survey.AskOne(prompt, &choice); err != nil {
				return fmt.Errorf("prompt variant: %w", err)
			}
			if choice != options[0] {
				flags.variant = choice
			}
		}
	}

	return nil
}
