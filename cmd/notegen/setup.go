package main

import (
	"context"

	"github.com/goliatone/go-notegen/internal/loader"
	"github.com/goliatone/go-notegen/pkg/config"
	"github.com/goliatone/go-notegen/pkg/schema"
	"github.com/spf13/cobra"
)

// loadConfigs reads the user and template configurations named by the
// persistent flags.
func loadConfigs(cmd *cobra.Command) (config.Config, schema.TemplateConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	templatesPath, _ := cmd.Flags().GetString("templates")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, schema.TemplateConfig{}, err
		}
		cfg = loaded
	}

	doc, err := loader.New().Load(context.Background(), schema.SourceFromFile(templatesPath))
	if err != nil {
		return config.Config{}, schema.TemplateConfig{}, err
	}
	tc, err := schema.Parse(doc)
	if err != nil {
		return config.Config{}, schema.TemplateConfig{}, err
	}
	return cfg, tc, nil
}
