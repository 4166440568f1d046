package config

import (
	"fmt"
	"strings"

	"github.com/kilianp07/pmrs/core/band"
)

// ScheduleConfig holds the defaults of the generate command.
type ScheduleConfig struct {
	// Days is the rotation length.
	Days int `json:"days"`
	// Band is the default band profile name.
	Band band.Name `json:"band"`
	// Output lists the artifact formats, comma separated.
	Output string `json:"output"`
	// Dir is where artifacts are written.
	Dir string `json:"dir"`
}

// SetDefaults applies fallback values for optional fields.
func (c *ScheduleConfig) SetDefaults() {
	if c.Days == 0 {
		c.Days = 14
	}
	if c.Band == "" {
		c.Band = band.DefaultName
	}
	if c.Output == "" {
		c.Output = "all"
	}
	if c.Dir == "" {
		c.Dir = "."
	}
}

// Validate checks the configuration ranges.
func (c ScheduleConfig) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output is required")
	}
	return nil
}
