package tuning

import (
	"fmt"
	"os"
	"strings"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/difficulty"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/generator"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/stats"
	"gopkg.in/yaml.v3"
)

// Config is the designer-facing tuning file: the aggregate game statistics
// that drive config generation, plus optional overrides for the level
// boundary table and individual modifier parameters.
type Config struct {
	GameStats stats.GameStats       `yaml:"gameStats"`
	Levels    []difficulty.Boundary `yaml:"levels,omitempty"`
	Modifiers []modifier.Config     `yaml:"modifiers,omitempty"`
}

// LoadConfig loads a tuning configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or
// ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML tuning file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file: %w", err)
	}

	return &config, nil
}

// Validate validates the tuning file for common errors. Game stats get
// their full validation during generation; overrides are checked for
// duplicate or empty IDs here and for unknown IDs at apply time.
func (c *Config) Validate() error {
	if err := c.GameStats.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, m := range c.Modifiers {
		if m.ID == "" {
			return fmt.Errorf("modifier override with empty ID found")
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate modifier override ID: %s", m.ID)
		}
		seen[m.ID] = true
	}

	return nil
}

// ApplyOverrides merges the tuning file's modifier overrides into a
// generated bundle. Overrides are matched by ID; referencing an unknown
// modifier is an error so typos do not silently tune nothing.
func ApplyOverrides(bundle *generator.ConfigBundle, overrides []modifier.Config) error {
	index := make(map[string]int, len(bundle.Modifiers))
	for i, cfg := range bundle.Modifiers {
		index[cfg.ID] = i
	}

	for _, override := range overrides {
		i, ok := index[override.ID]
		if !ok {
			return fmt.Errorf("override references unknown modifier: %s", override.ID)
		}
		bundle.Modifiers[i].Merge(override)
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or
// ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
