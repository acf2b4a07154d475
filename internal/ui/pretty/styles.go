// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// Styles contains all styled renderers for CLI and editor output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Layout components
	FilePath lipgloss.Style
	Offset   lipgloss.Style
	Marker   lipgloss.Style
	ASCII    lipgloss.Style
	Cursor   lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
	regions      map[jpegmap.Region]lipgloss.Style
}

// DefaultRegionColors maps each region to its ANSI 256 color.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultRegionColors = map[jpegmap.Region]string{
	jpegmap.Unknown:            "8",
	jpegmap.StartMarker:        "10",
	jpegmap.ApplicationSegment: "12",
	jpegmap.QuantizationTable:  "13",
	jpegmap.FrameHeader:        "14",
	jpegmap.FrameHeaderWidth:   "51",
	jpegmap.HuffmanTable:       "11",
	jpegmap.RestartInterval:    "178",
	jpegmap.ScanHeader:         "208",
	jpegmap.ScanData:           "7",
	jpegmap.RestartMarker:      "9",
	jpegmap.Comment:            "141",
	jpegmap.EndMarker:          "10",
	jpegmap.Other:              "244",
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	styles := &Styles{
		// Status colors
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		// Layout components
		FilePath: lipgloss.NewStyle().Bold(true),
		Offset:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		ASCII:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:   lipgloss.NewStyle().Reverse(true).Bold(true),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Table styles
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableErrorRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red text
		TableWarnRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow text
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: true,
		regions:      make(map[jpegmap.Region]lipgloss.Style, len(DefaultRegionColors)),
	}

	for region, color := range DefaultRegionColors {
		styles.regions[region] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	return styles
}

// newNoColorStyles creates styles with no color formatting.
// The cursor stays visible through reverse video.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		FilePath:       plain,
		Offset:         plain,
		Marker:         plain,
		ASCII:          plain,
		Cursor:         lipgloss.NewStyle().Reverse(true),
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableWarnRow:   plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
		regions:        make(map[jpegmap.Region]lipgloss.Style),
	}
}

// ColorEnabled reports whether the styles emit color.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// Region returns the style for bytes of the given region.
func (s *Styles) Region(region jpegmap.Region) lipgloss.Style {
	if style, ok := s.regions[region]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// WithRegionColors overrides region colors by region name, as configured under
// "colors". Unknown names and empty values are ignored. It is a no-op when color
// is disabled.
func (s *Styles) WithRegionColors(colors map[string]string) *Styles {
	if !s.colorEnabled {
		return s
	}
	for name, color := range colors {
		region, err := jpegmap.ParseRegion(name)
		if err != nil || color == "" {
			continue
		}
		s.regions[region] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
