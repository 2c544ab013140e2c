// Package config loads optional JSON defaults for the command-line
// tools. Fields omitted from the file keep their built-in defaults, so
// partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults holds tool-level defaults. All fields are pointers so a
// JSON file can override any subset.
type Defaults struct {
	// Smoothing coefficients applied when the flags are absent.
	R1 *float64 `json:"r1,omitempty"`
	R2 *float64 `json:"r2,omitempty"`
}

// Empty returns a Defaults with every field unset.
func Empty() *Defaults {
	return &Defaults{}
}

// Load reads defaults from a JSON file. The path must end in .json and
// the file must stay under 1MB.
func Load(path string) (*Defaults, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set values are usable.
func (c *Defaults) Validate() error {
	if c.R1 != nil && *c.R1 < 0 {
		return fmt.Errorf("r1 must be >= 0, got %g", *c.R1)
	}
	if c.R2 != nil && *c.R2 < 0 {
		return fmt.Errorf("r2 must be >= 0, got %g", *c.R2)
	}
	return nil
}

// GetR1 returns the configured r1 or the built-in default of 0 (no
// smoothing along axis 1).
func (c *Defaults) GetR1() float64 {
	if c.R1 != nil {
		return *c.R1
	}
	return 0
}

// GetR2 returns the configured r2 or the built-in default of 0.
func (c *Defaults) GetR2() float64 {
	if c.R2 != nil {
		return *c.R2
	}
	return 0
}
