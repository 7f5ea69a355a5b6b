package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List templates, variants, and course mappings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, tc, err := loadConfigs(cmd)
			if err != nil {
				return err
			}

			s := styles()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, s.Title.Render(fmt.Sprintf("%s %s", tc.Metadata.Name, tc.Metadata.Version)))
			for _, def := range tc.Templates {
				fmt.Fprintf(out, "%s %s (%s)\n",
					s.Key.Render(def.Name),
					s.Dim.Render(strings.Join(def.CourseTypes, ", ")),
					def.Function)
				for _, variant := range tc.VariantsFor(def.Name) {
					fmt.Fprintf(out, "  - %s %s\n",
						variant.Name,
						s.Dim.Render(strings.Join(variant.CourseTypes, ", ")))
				}
			}

			if tc.CourseMapping.Len() > 0 {
				fmt.Fprintln(out, s.Title.Render("course mapping"))
				for _, entry := range tc.CourseMapping.Entries() {
					fmt.Fprintf(out, "  %s -> %s\n", entry.Pattern, entry.CourseType)
				}
			}
			return nil
		},
	}
	return cmd
}
