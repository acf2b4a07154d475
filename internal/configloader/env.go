package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/jpglitch/pkg/config"
)

// envVarPrefix is the prefix for all jpglitch environment variables.
const envVarPrefix = "JPGLITCH_"

// envVar describes one supported environment variable.
type envVar struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envVars maps variable names (without prefix) to their setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"MAX_FILE_SIZE": {"Largest file loaded, in bytes", func(cfg *config.Config, value string) error {
		size, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.MaxFileSize = size
		return nil
	}},
	"END_MARKER": {"After EOI: continue or stop", func(cfg *config.Config, value string) error {
		cfg.EndMarker = value
		return nil
	}},
	"JUMPABLE": {"Comma-separated region names for editor jumps", func(cfg *config.Config, value string) error {
		cfg.Jumpable = parseSliceValue(value)
		return nil
	}},
	"IGNORE": {"Comma-separated glob patterns skipped by scan", func(cfg *config.Config, value string) error {
		cfg.Ignore = parseSliceValue(value)
		return nil
	}},
	"FORMAT": {"Output format: text, table, json, or summary", func(cfg *config.Config, value string) error {
		cfg.Format = config.OutputFormat(value)
		return nil
	}},
	"JOBS": {"Number of parallel workers (0 = auto)", func(cfg *config.Config, value string) error {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Jobs = jobs
		return nil
	}},
	"BACKUPS_ENABLED": {"Back up files before overwriting: true or false", func(cfg *config.Config, value string) error {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.Backups.Enabled = &enabled
		return nil
	}},
	"BACKUPS_MODE": {"Backup mode: sidecar or none", func(cfg *config.Config, value string) error {
		cfg.Backups.Mode = value
		return nil
	}},
	"GLITCH_MODE": {"Glitch mode: randomize, shift, invert, or zero", func(cfg *config.Config, value string) error {
		cfg.Glitch.Mode = value
		return nil
	}},
	"GLITCH_COUNT": {"Bytes changed per glitch", func(cfg *config.Config, value string) error {
		count, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Glitch.Count = count
		return nil
	}},
	"GLITCH_REGIONS": {"Comma-separated regions glitch may touch", func(cfg *config.Config, value string) error {
		cfg.Glitch.Regions = parseSliceValue(value)
		return nil
	}},
}

// LoadFromEnv applies JPGLITCH_* environment overrides to cfg.
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, name := range sortedEnvNames() {
		value := os.Getenv(envVarPrefix + name)
		if value == "" {
			continue
		}
		if err := envVars[name].apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s%s: %q: %w", envVarPrefix, name, value, err)
		}
	}

	return nil
}

// parseSliceValue splits a comma-separated list and drops empty elements.
func parseSliceValue(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for name, v := range envVars {
		out[envVarPrefix+name] = v.description
	}
	return out
}

func sortedEnvNames() []string {
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
