package config

import "fmt"

// Default configuration values.
const (
	DefaultColor         = "auto"
	DefaultOutputSuffix  = ".expanded.rs"
	DefaultOutputInPlace = false
)

// Config holds tool-wide settings loaded from the config file, environment
// variables and defaults.
type Config struct {
	// Color controls diagnostic coloring: auto, always or never.
	Color  string       `mapstructure:"color"`
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig controls where expanded sources are written.
type OutputConfig struct {
	// Suffix is appended to the input file stem when writing alongside the
	// original, e.g. lib.rs -> lib.expanded.rs.
	Suffix string `mapstructure:"suffix"`
	// InPlace overwrites the input file with its expansion.
	InPlace bool `mapstructure:"in_place"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.Color)
	}

	if c.Output.Suffix == "" && !c.Output.InPlace {
		return fmt.Errorf("output.suffix must not be empty unless output.in_place is set")
	}

	return nil
}
