// Package config defines the configuration types for jpglitch.
// These are plain data structures; resolution from files and the environment
// lives in internal/configloader.
package config

// OutputFormat selects how scan and inspect results are printed.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// EndMarker values control what the classifier does after an end-of-image marker.
const (
	EndMarkerContinue = "continue"
	EndMarkerStop     = "stop"
)

// DefaultMaxFileSize is the largest file loaded unless configured otherwise (32 MiB).
const DefaultMaxFileSize int64 = 32 << 20

// BackupsConfig controls backups made before a file is overwritten.
type BackupsConfig struct {
	// Enabled is a pointer so a config file can turn backups off over a default of on.
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Mode    string `mapstructure:"mode" yaml:"mode,omitempty"` // "sidecar" or "none"
}

// IsEnabled reports whether backups are on. Unset means on.
func (b BackupsConfig) IsEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// GlitchConfig holds defaults for the glitch command.
type GlitchConfig struct {
	Mode    string   `mapstructure:"mode" yaml:"mode,omitempty"`
	Count   int      `mapstructure:"count" yaml:"count,omitempty"`
	Delta   int      `mapstructure:"delta" yaml:"delta,omitempty"`
	Regions []string `mapstructure:"regions" yaml:"regions,omitempty"`
}

// Config is the root configuration structure for jpglitch.
type Config struct {
	// MaxFileSize is the largest file in bytes that will be loaded.
	MaxFileSize int64 `mapstructure:"max_file_size" yaml:"max_file_size,omitempty"`

	// EndMarker is "continue" to keep classifying after EOI or "stop" to leave the rest unknown.
	EndMarker string `mapstructure:"end_marker" yaml:"end_marker,omitempty"`

	// Jumpable lists the region names the editor can jump between.
	Jumpable []string `mapstructure:"jumpable" yaml:"jumpable,omitempty"`

	// Colors overrides the display color of regions, keyed by region name.
	Colors map[string]string `mapstructure:"colors" yaml:"colors,omitempty"`

	// Ignore contains glob patterns excluded from scans.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// Backups configures backups before overwriting files.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups,omitempty"`

	// Glitch holds glitch command defaults.
	Glitch GlitchConfig `mapstructure:"glitch" yaml:"glitch,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// Strict treats truncated files as failures in scans.
	Strict bool `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation for this run.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	enabled := true
	return &Config{
		MaxFileSize: DefaultMaxFileSize,
		EndMarker:   EndMarkerContinue,
		Colors:      make(map[string]string),
		Backups: BackupsConfig{
			Enabled: &enabled,
			Mode:    "sidecar",
		},
		Glitch: GlitchConfig{
			Mode:    "randomize",
			Count:   16,
			Delta:   1,
			Regions: []string{"scan-data"},
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}

// BackupsActive reports whether backups should be written for this run.
func (c *Config) BackupsActive() bool {
	return !c.NoBackups && c.Backups.IsEnabled() && c.Backups.Mode != "none"
}
