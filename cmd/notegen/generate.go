package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-notegen/pkg/notes"
	"github.com/goliatone/go-notegen/pkg/orchestrator"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/renderers/markdown"
	"github.com/goliatone/go-notegen/pkg/renderers/typst"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	course      string
	title       string
	template    string
	variant     string
	renderer    string
	output      string
	sections    []string
	variables   []string
	level       string
	failOnError bool
	interactive bool
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a note document",
		Long: `Generate renders a document from a named template.

Examples:
  # Lecture notes for a course
  notegen generate --course 01005 --template note

  # An assignment with an explicit variant
  notegen generate --course 02101 --template assignment --variant programming-assignment --title "Exercise 3"

  # Prompt for the missing details
  notegen generate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.course, "course", "", "course id, e.g. 01005")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title (templates may default it)")
	cmd.Flags().StringVar(&flags.template, "template", "note", "template name")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "explicit template variant")
	cmd.Flags().StringVar(&flags.renderer, "renderer", "typst", "output renderer (typst, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringSliceVar(&flags.sections, "section", nil, "override the generated sections")
	cmd.Flags().StringArrayVar(&flags.variables, "set", nil, "set a template variable, key=value")
	cmd.Flags().StringVar(&flags.level, "level", "standard", "validation level (minimal, standard, comprehensive)")
	cmd.Flags().BoolVar(&flags.failOnError, "strict", false, "abort when validation finds errors")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for missing details")
	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	cfg, tc, err := loadConfigs(cmd)
	if err != nil {
		return err
	}

	if flags.interactive {
		if err := promptGenerate(&flags, tc); err != nil {
			return err
		}
	}
	if flags.course == "" {
		return fmt.Errorf("a course id is required (use --course or --interactive)")
	}

	level, err := parseLevel(flags.level)
	if err != nil {
		return err
	}
	renderer, err := pickRenderer(flags.renderer)
	if err != nil {
		return err
	}

	options := orchestrator.DefaultProcessingOptions()
	options.ValidationLevel = level
	options.FailOnValidationErrors = flags.failOnError

	builder := orchestrator.NewTemplateBuilder().
		ForCourse(flags.course).
		WithConfig(cfg).
		WithTemplateConfig(tc).
		UsingTemplate(flags.template).
		WithRenderer(renderer).
		WithProcessingOptions(options)

	if flags.variant != "" {
		builder = builder.WithVariant(flags.variant)
	}
	if flags.title != "" {
		builder = builder.WithTitle(flags.title)
	}
	if len(flags.sections) > 0 {
		builder = builder.WithSections(flags.sections)
	}
	for _, pair := range flags.variables {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set value %q, want key=value", pair)
		}
		builder = builder.WithVariable(key, value)
	}

	content, result, summary, err := builder.BuildWithValidation(cmd.Context())
	printIssues(cmd, result)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		s := styles()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %d sections)\n",
			s.Success.Render("wrote"), flags.output, summary.CourseID, summary.SectionCount)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(content))
	return nil
}

func pickRenderer(name string) (render.Renderer, error) {
	registry := render.NewRegistry()
	registry.MustRegister(typst.New())
	registry.MustRegister(markdown.New())
	return registry.Get(name)
}

func parseLevel(name string) (notes.Level, error) {
	switch name {
	case "minimal":
		return notes.LevelMinimal, nil
	case "standard", "":
		return notes.LevelStandard, nil
	case "comprehensive":
		return notes.LevelComprehensive, nil
	default:
		return notes.LevelStandard, fmt.Errorf("unknown validation level %q", name)
	}
}

func printIssues(cmd *cobra.Command, result notes.ValidationResult) {
	s := styles()
	for _, issue := range result.Issues {
		label := s.Dim.Render(issue.Severity.String())
		switch issue.Severity {
		case notes.SeverityError:
			label = s.Error.Render(issue.Severity.String())
		case notes.SeverityWarning:
			label = s.Warning.Render(issue.Severity.String())
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s [%s] %s\n", label, issue.Category, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", s.Dim.Render(issue.Suggestion))
		}
	}
}
