// Package config handles apxtool configuration loading and management.
package config

import (
	"path/filepath"
	"strings"
)

// Config holds all extraction settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds output directory settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`          // Explicit output directory
	Suffix      string `yaml:"suffix"`       // Appended to the input stem when Dir is empty
	ShadersOnly bool   `yaml:"shaders_only"` // Write only .hlsl files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         "",
			Suffix:      "_extracted",
			ShadersOnly: false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// OutputDir returns the directory to extract input into. Without an explicit
// directory it is the input file stem plus the configured suffix, relative to
// the working directory.
func (c *Config) OutputDir(input string) string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + c.Output.Suffix
}
