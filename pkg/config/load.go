package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration file, layering it over the defaults so partial
// files keep the stock section lists and formats.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseBytes(raw)
}

// ParseBytes decodes a configuration payload over the defaults.
func ParseBytes(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}
