package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional file-based defaults. CLI flags take precedence
// over every field here.
type Config struct {
	DBPath       string `yaml:"db_path"`
	CorpusSize   int    `yaml:"corpus_size"`
	SampleSize   int    `yaml:"sample_size"`
	DefaultTerms string `yaml:"default_terms"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
