package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
	"github.com/yaklabco/jpglitch/pkg/glitch"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "glitch.regions[1]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// Validate checks a configuration for errors and warnings.
// Zero values are treated as unset and accepted.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.MaxFileSize < 0 {
		result.addError("max_file_size", cfg.MaxFileSize, "max_file_size must be positive")
	}

	if cfg.EndMarker != "" && !jpegmap.EndPolicy(cfg.EndMarker).IsValid() {
		result.addError("end_marker", cfg.EndMarker,
			"invalid end marker policy %q; must be one of: %s, %s",
			cfg.EndMarker, config.EndMarkerContinue, config.EndMarkerStop)
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.addError("format", cfg.Format,
			"invalid format %q; must be one of: text, table, json, summary", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Backups.Mode != "" && !fsutil.BackupMode(cfg.Backups.Mode).IsValid() {
		result.addError("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	validateRegionList(result, "jumpable", cfg.Jumpable)
	validateRegionList(result, "glitch.regions", cfg.Glitch.Regions)
	validateGlitch(result, cfg.Glitch)
	validateColors(result, cfg.Colors)
	validateIgnorePatterns(result, cfg.Ignore)

	return result
}

func validateRegionList(result *ValidationResult, field string, names []string) {
	for idx, name := range names {
		if _, err := jpegmap.ParseRegion(name); err != nil {
			result.addError(fmt.Sprintf("%s[%d]", field, idx), name,
				"unknown region %q; known regions: %s", name, strings.Join(jpegmap.RegionNames(), ", "))
		}
	}
}

func validateGlitch(result *ValidationResult, cfg config.GlitchConfig) {
	if cfg.Mode != "" && !glitch.Mode(cfg.Mode).IsValid() {
		result.addError("glitch.mode", cfg.Mode, "invalid glitch mode %q; must be one of: %v", cfg.Mode, glitch.Modes())
	}
	if cfg.Count < 0 {
		result.addError("glitch.count", cfg.Count, "glitch.count must be >= 0")
	}
	if cfg.Delta < 0 || cfg.Delta > 0xFF {
		result.addError("glitch.delta", cfg.Delta, "glitch.delta must be between 0 and 255")
	}
}

// validateColors warns about unknown regions and malformed hex colors.
func validateColors(result *ValidationResult, colors map[string]string) {
	for name, color := range colors {
		field := "colors." + name
		if _, err := jpegmap.ParseRegion(name); err != nil {
			result.addWarning(field, name, "unknown region %q; the color will be ignored", name)
			continue
		}
		if color == "" {
			result.addWarning(field, color, "empty color; the default will be used")
			continue
		}
		if strings.HasPrefix(color, "#") && len(color) != len("#rrggbb") && len(color) != len("#rgb") {
			result.addWarning(field, color, "color %q is not a #rgb or #rrggbb value", color)
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(result *ValidationResult, patterns []string) {
	for idx, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", idx), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates cfg and records filePath on every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for idx := range result.Errors {
		result.Errors[idx].FilePath = filePath
	}
	for idx := range result.Warnings {
		result.Warnings[idx].FilePath = filePath
	}
	return result
}
