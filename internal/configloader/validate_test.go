package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jpglitch/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(cfg *config.Config)
		wantField string
		warning   bool
	}{
		{"defaults are valid", func(*config.Config) {}, "", false},
		{"negative size", func(cfg *config.Config) { cfg.MaxFileSize = -1 }, "max_file_size", false},
		{"bad end marker", func(cfg *config.Config) { cfg.EndMarker = "maybe" }, "end_marker", false},
		{"bad format", func(cfg *config.Config) { cfg.Format = "sarif" }, "format", false},
		{"negative jobs", func(cfg *config.Config) { cfg.Jobs = -2 }, "jobs", false},
		{"bad backup mode", func(cfg *config.Config) { cfg.Backups.Mode = "xdg" }, "backups.mode", false},
		{"unknown jumpable", func(cfg *config.Config) { cfg.Jumpable = []string{"comment", "exif"} }, "jumpable[1]", false},
		{"unknown glitch region", func(cfg *config.Config) { cfg.Glitch.Regions = []string{"pixels"} }, "glitch.regions[0]", false},
		{"bad glitch mode", func(cfg *config.Config) { cfg.Glitch.Mode = "melt" }, "glitch.mode", false},
		{"delta out of range", func(cfg *config.Config) { cfg.Glitch.Delta = 300 }, "glitch.delta", false},
		{"bad glob", func(cfg *config.Config) { cfg.Ignore = []string{"["} }, "ignore[0]", false},
		{"unknown color region", func(cfg *config.Config) { cfg.Colors["exif"] = "red" }, "colors.exif", true},
		{"short hex color", func(cfg *config.Config) { cfg.Colors["comment"] = "#12" }, "colors.comment", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			testCase.modify(cfg)

			result := Validate(cfg)

			switch {
			case testCase.wantField == "":
				assert.True(t, result.Valid())
				assert.Empty(t, result.Warnings)
			case testCase.warning:
				assert.True(t, result.Valid())
				if assert.Len(t, result.Warnings, 1) {
					assert.Equal(t, testCase.wantField, result.Warnings[0].Field)
				}
			default:
				assert.False(t, result.Valid())
				if assert.Len(t, result.Errors, 1) {
					assert.Equal(t, testCase.wantField, result.Errors[0].Field)
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "end_marker", Message: "bad", FilePath: "/x/.jpglitch.yml"}
	assert.Equal(t, "/x/.jpglitch.yml: end_marker: bad", err.Error())

	assert.True(t, Validate(nil).Valid())
}
