// Package config handles meshtool configuration loading and management.
package config

// Config holds all meshtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Pick    PickConfig    `yaml:"pick" toml:"pick"`
	Lines   LinesConfig   `yaml:"lines" toml:"lines"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
	JSON    bool   `yaml:"json" toml:"json"`
}

// PickConfig holds ray picking settings.
type PickConfig struct {
	// MaxDistance discards hits farther than this along the ray. Zero means
	// no limit.
	MaxDistance float64 `yaml:"max_distance" toml:"max_distance"`
	// Normalize rescales the ray direction to unit length before picking so
	// reported distances are in world units.
	Normalize bool `yaml:"normalize" toml:"normalize"`
}

// LinesConfig holds line expansion report settings.
type LinesConfig struct {
	// ShowVertices prints every expanded vertex, not just the counts.
	ShowVertices bool `yaml:"show_vertices" toml:"show_vertices"`
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Precision int `yaml:"precision" toml:"precision"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
		Pick: PickConfig{
			MaxDistance: 0,
			Normalize:   true,
		},
		Lines: LinesConfig{
			ShowVertices: false,
		},
		Output: OutputConfig{
			Precision: 4,
		},
	}
}
