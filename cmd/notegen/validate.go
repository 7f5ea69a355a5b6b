package main

import (
	"fmt"

	"github.com/goliatone/go-notegen/pkg/orchestrator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		course string
		level  string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a generation context without rendering",
		Long: `Validate builds a context for the given course and reports every finding
at the requested level. Comprehensive also checks configured paths and the
template configuration's internal consistency.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, tc, err := loadConfigs(cmd)
			if err != nil {
				return err
			}
			if course == "" {
				return fmt.Errorf("a course id is required (use --course)")
			}
			parsed, err := parseLevel(level)
			if err != nil {
				return err
			}

			options := orchestrator.DefaultProcessingOptions()
			options.ValidationLevel = parsed

			result, err := orchestrator.NewTemplateBuilder().
				ForCourse(course).
				WithConfig(cfg).
				WithTemplateConfig(tc).
				WithProcessingOptions(options).
				Validate()
			if err != nil {
				return err
			}

			printIssues(cmd, result)
			s := styles()
			if result.IsClean() {
				fmt.Fprintln(cmd.OutOrStdout(), s.Success.Render("no issues found"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d errors, %d warnings\n", result.ErrorCount(), result.WarningCount())
			if result.HasErrors() {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "course id, e.g. 01005")
	cmd.Flags().StringVar(&level, "level", "comprehensive", "validation level (minimal, standard, comprehensive)")
	return cmd
}
