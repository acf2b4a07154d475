package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is "yaml" (default) or "json".
	Format string

	// Regions lists region names to mention in the template comments.
	Regions []string
}

// DefaultTemplateHeader returns the header written at the top of generated configs.
func DefaultTemplateHeader() string {
	return `# jpglitch configuration
# See: https://github.com/yaklabco/jpglitch`
}

// GenerateTemplate creates a commented configuration file holding the defaults.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	var buf strings.Builder

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Largest file loaded, in bytes.
max_file_size: 33554432

# After an end-of-image marker: continue (concatenated images) or stop.
end_marker: continue

# Regions the editor jumps between with n/N.
# jumpable:
#   - start-marker
#   - frame-header
#   - scan-header
#   - end-marker

# Region color overrides (lipgloss color strings).
# colors:
#   scan-data: "#5f87af"
#   comment: "214"

# Glob patterns skipped by scan.
# ignore:
#   - "thumbnails/**"

# Backups written before a file is overwritten.
backups:
  enabled: true
  mode: sidecar

# Defaults for the glitch command.
glitch:
  mode: randomize
  count: 16
  delta: 1
  regions:
    - scan-data
`)

	if len(opts.Regions) > 0 {
		buf.WriteString("\n# Known regions: ")
		buf.WriteString(strings.Join(opts.Regions, ", "))
		buf.WriteString("\n")
	}

	return []byte(buf.String()), nil
}

// templateToJSON renders the default persisted configuration as indented JSON.
func templateToJSON() ([]byte, error) {
	body, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return out, nil
}
