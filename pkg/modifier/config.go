package modifier

// Config is the parameter bundle for one modifier. Bundles are produced by
// the config generator and may be overridden per-modifier from the tuning
// file, so parameter values arrive as a loosely typed map.
type Config struct {
	ID         string                 `yaml:"id" json:"id"`
	Type       string                 `yaml:"type" json:"type"` // e.g., "builtin.win_streak"
	Enabled    bool                   `yaml:"enabled" json:"enabled"`
	Parameters map[string]interface{} `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// GetInt retrieves an integer parameter with a default.
// YAML decoding yields int, json decoding yields float64; accept both.
func (c *Config) GetInt(key string, defaultValue int) int {
	if val, ok := c.Parameters[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return defaultValue
}

// GetFloat retrieves a float parameter with a default.
func (c *Config) GetFloat(key string, defaultValue float64) float64 {
	if val, ok := c.Parameters[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return defaultValue
}

// SetParameter sets a parameter value, allocating the map if needed.
func (c *Config) SetParameter(key string, value interface{}) {
	if c.Parameters == nil {
		c.Parameters = make(map[string]interface{})
	}
	c.Parameters[key] = value
}

// Merge overlays the other config's parameters onto this one. Only keys
// present in other are touched; everything else keeps its generated value.
func (c *Config) Merge(other Config) {
	for key, value := range other.Parameters {
		c.SetParameter(key, value)
	}
}
