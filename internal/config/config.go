// SPDX-License-Identifier: MIT

// Package config holds process-level settings for the bimatch CLI and
// HTTP server. Values come from Default, optionally overlaid by a YAML file
// (Load), and finally by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full set of tunables.
type Config struct {
	// Objective is "minimize" or "maximize" (aliases accepted).
	Objective string `yaml:"objective"`

	// InputFormat is the adjacency document encoding: json or yaml.
	InputFormat string `yaml:"input_format"`

	// Format is the report encoding: json, yaml or text.
	Format string `yaml:"format"`

	// Listen is the HTTP listen address for `serve`.
	Listen string `yaml:"listen"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Timeout bounds one solve (CLI) or one request (HTTP).
	Timeout time.Duration `yaml:"timeout"`

	// MaxBodyBytes caps the HTTP request body.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Objective:    assignment.Minimize.String(),
		InputFormat:  string(bipartite.FormatJSON),
		Format:       string(bipartite.FormatJSON),
		Listen:       ":8080",
		LogLevel:     "info",
		Timeout:      30 * time.Second,
		MaxBodyBytes: 8 << 20,
	}
}

// Load overlays the YAML file at path onto Default and validates the result.
// Unknown keys are rejected. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := assignment.ParseObjective(c.Objective); err != nil {
		return fmt.Errorf("%w: objective %q", ErrInvalidConfig, c.Objective)
	}
	in, err := bipartite.ParseFormat(c.InputFormat)
	if err != nil || in == bipartite.FormatText {
		return fmt.Errorf("%w: input_format %q", ErrInvalidConfig, c.InputFormat)
	}
	if _, err = bipartite.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", ErrInvalidConfig, c.Timeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}

	return nil
}

// ObjectiveValue returns the parsed Objective. Call after Validate.
func (c Config) ObjectiveValue() assignment.Objective {
	o, _ := assignment.ParseObjective(c.Objective)

	return o
}
