// Package main provides the notegen CLI: generate Typst note documents from
// configuration-driven templates, validate generation contexts, and inspect
// the available templates.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles().Error.Render("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notegen",
		Short: "Generate Typst notes from configuration-driven templates",
		Long: `Notegen generates Typst note documents from named templates.

Templates, course-specific variants, and course-type mappings live in a YAML
template configuration; author identity, the course registry, and section
defaults live in a user configuration. Generation is deterministic: the same
inputs always produce the same document.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "user configuration file (defaults apply when empty)")
	cmd.PersistentFlags().String("templates", "templates.yaml", "template configuration file")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newTemplatesCmd())
	return cmd
}
