package decider

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "decider.yaml"

// Config holds the session settings a front end hands to the engine.
type Config struct {
	// Standard is the neutral reference value on the rating scale
	// (default 100). Importances and ratings anchor to it.
	Standard int `yaml:"standard"`

	// ReportDir is where result reports are written when no explicit
	// path is given (default "reports").
	ReportDir string `yaml:"report_dir"`

	// ReportFormat selects the default report rendering, "markdown" or
	// "html" (default "markdown").
	ReportFormat string `yaml:"report_format"`
}

// ApplyDefaults fills zero fields and forces Standard into the rating
// scale bounds.
func (c *Config) ApplyDefaults() {
	if c.Standard == 0 {
		c.Standard = DefaultStandard
	}
	c.Standard = clampRankInt(c.Standard)
	if c.ReportDir == "" {
		c.ReportDir = "reports"
	}
	if c.ReportFormat != "html" {
		c.ReportFormat = "markdown"
	}
}

// LoadConfig loads configuration from the given path or the default
// decider.yaml. A missing file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	cfg.ApplyDefaults()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
