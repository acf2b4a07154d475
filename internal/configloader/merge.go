package configloader

import (
	"maps"

	"github.com/yaklabco/jpglitch/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalars: override wins when non-zero
//   - Pointers: override wins when non-nil
//   - Maps: merged key by key, override wins
//   - Slices: override replaces base entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MaxFileSize != 0 {
		result.MaxFileSize = override.MaxFileSize
	}
	if override.EndMarker != "" {
		result.EndMarker = override.EndMarker
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// CLI switches can only turn these on.
	if override.Strict {
		result.Strict = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Backups.Enabled != nil {
		result.Backups.Enabled = override.Backups.Enabled
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	if override.Glitch.Mode != "" {
		result.Glitch.Mode = override.Glitch.Mode
	}
	if override.Glitch.Count != 0 {
		result.Glitch.Count = override.Glitch.Count
	}
	if override.Glitch.Delta != 0 {
		result.Glitch.Delta = override.Glitch.Delta
	}
	if override.Glitch.Regions != nil {
		result.Glitch.Regions = override.Glitch.Regions
	}

	result.Colors = mergeColors(base.Colors, override.Colors)

	if override.Jumpable != nil {
		result.Jumpable = override.Jumpable
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeColors returns a new map with base's entries overlaid by override's.
func mergeColors(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, next := range configs[1:] {
		result = merge(result, next)
	}
	return result
}
