// Package logging provides a structured JSON-lines logger.
package logging

import (
	"io"
	"os"
)

// Config configures a Logger.
type Config struct {
	// ServiceName identifies the program writing logs.
	ServiceName string `json:"service" yaml:"service"`

	// MinLevel is the minimum level written.
	MinLevel Level `json:"level" yaml:"level"`

	// Output receives one JSON object per line. Defaults to stderr.
	Output io.Writer `json:"-" yaml:"-"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServiceName: "liketype",
		MinLevel:    LevelInfo,
		Output:      os.Stderr,
	}
}

// Validate fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		c.ServiceName = "unknown"
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
	return nil
}
