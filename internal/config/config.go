package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// NormalizeConfig mirrors sprocdiff.NormalizeOptions in the config file.
// Booleans are pointers so "absent" is distinguishable from "false";
// absent values fall back to the defaults (strip comments, collapse
// whitespace, LF).
type NormalizeConfig struct {
	StripComments      *bool  `yaml:"strip_comments,omitempty"`
	CollapseWhitespace *bool  `yaml:"collapse_whitespace,omitempty"`
	LineEnding         string `yaml:"line_ending,omitempty"`
}

// OutputConfig holds report rendering defaults.
type OutputConfig struct {
	Format  string `yaml:"format,omitempty"`  // "text" or "json"
	Context *int   `yaml:"context,omitempty"` // diff context lines
	ShowRaw bool   `yaml:"show_raw,omitempty"`
}

// ProjectConfig is the optional sprocdiff.yaml loaded from the working
// directory. Command-line flags override every value in it.
type ProjectConfig struct {
	Normalize NormalizeConfig `yaml:"normalize"`
	Output    OutputConfig    `yaml:"output"`
}

const ConfigFileName = "sprocdiff.yaml"

// Load reads ConfigFileName from dir. A missing file is reported as
// ErrConfigNotFound so callers can treat it as "use defaults".
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return &cfg, nil
}

// NormalizeOptions resolves the config values against defaults.
func (c *ProjectConfig) NormalizeOptions() sprocdiff.NormalizeOptions {
	opts := sprocdiff.DefaultNormalizeOptions()
	if c.Normalize.StripComments != nil {
		opts.StripComments = *c.Normalize.StripComments
	}
	if c.Normalize.CollapseWhitespace != nil {
		opts.CollapseWhitespace = *c.Normalize.CollapseWhitespace
	}
	if c.Normalize.LineEnding != "" {
		opts.LineEnding = c.Normalize.LineEnding
	}
	return opts
}

// Context resolves the configured diff context, falling back to the
// package default.
func (c *ProjectConfig) Context() int {
	if c.Output.Context != nil && *c.Output.Context >= 0 {
		return *c.Output.Context
	}
	return sprocdiff.DefaultDiffContext
}
