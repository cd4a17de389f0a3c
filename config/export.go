package config

import (
	"fmt"
	"os"
)

// ExportConfig defines where exported documents land.
type ExportConfig struct {
	// OutputDir receives generated PDF/CSV/JSON files.
	OutputDir string `json:"output_dir"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

// Validate checks the output directory exists when it is not the working
// directory.
func (c ExportConfig) Validate() error {
	if c.OutputDir == "." {
		return nil
	}
	info, err := os.Stat(c.OutputDir)
	if err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output_dir is not a directory: %s", c.OutputDir)
	}
	return nil
}
