package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/glitch"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// helpWrapWidth is the column where value lists in help output wrap.
const helpWrapWidth = 78

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Dim        lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{Command: plain, Heading: plain, Subcommand: plain, Flag: plain, Dim: plain}
	}

	return &HelpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders cobra help with styled headings and flags. Commands
// whose flags take region names, end-marker policies or glitch modes get the
// accepted values listed after their flags, regions in their hex dump colors.
type HelpFormatter struct {
	styles  *HelpStyles
	palette *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	colorEnabled := pretty.IsColorEnabled(colorMode, writer)
	return &HelpFormatter{
		styles:  NewHelpStyles(colorEnabled),
		palette: pretty.NewStyles(colorEnabled),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}{{end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}{{end}}
{{- with values .}}

{{ . }}{{end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + usageTemplate

// ApplyToCommand installs the styled help and usage output on cmd. Subcommands
// inherit it.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"heading":    h.styles.Heading.Render,
		"command":    h.styles.Command.Render,
		"subcommand": h.styles.Subcommand.Render,
		"dim":        h.styles.Dim.Render,
		"flags":      h.flagUsages,
		"values":     h.valueReference,
		"rpad":       rpad,
		"trim":       trimTrailingWhitespaces,
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStdout(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// flagUsages styles pflag's usage lines: flag names in color, value types dimmed,
// descriptions left as they are.
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	lines := strings.Split(strings.TrimRight(flags.FlagUsages(), "\n"), "\n")
	for idx, line := range lines {
		lines[idx] = h.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

// flagLine styles one "  -o, --output string   description" line, keeping
// pflag's column alignment.
func (h *HelpFormatter) flagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	split := strings.Index(body, "  ")
	if body == "" || split < 0 {
		return line
	}

	indent := line[:len(line)-len(body)]
	description := strings.TrimLeft(body[split:], " ")
	gap := body[split : len(body)-len(description)]

	tokens := strings.Fields(body[:split])
	for idx, token := range tokens {
		name, comma := strings.CutSuffix(token, ",")
		if !strings.HasPrefix(name, "-") {
			tokens[idx] = h.styles.Dim.Render(token)
			continue
		}
		tokens[idx] = h.styles.Flag.Render(name)
		if comma {
			tokens[idx] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + gap + description
}

// valueReference lists the values accepted by the command's enumerated flags.
// It is empty for commands without such flags.
func (h *HelpFormatter) valueReference(cmd *cobra.Command) string {
	var sections []string

	if cmd.Flags().Lookup("region") != nil {
		regions := jpegmap.AllRegions()
		names := make([]string, 0, len(regions))
		for _, region := range regions {
			names = append(names, h.palette.Region(region).Render(region.String()))
		}
		sections = append(sections, h.valueSection("Regions:", names))
	}

	if cmd.Flags().Lookup("end-marker") != nil {
		policies := []string{string(jpegmap.EndContinue), string(jpegmap.EndStop)}
		sections = append(sections, h.valueSection("End-marker policies:", policies))
	}

	if cmd.Flags().Lookup("mode") != nil {
		modes := glitch.Modes()
		names := make([]string, 0, len(modes))
		for _, mode := range modes {
			names = append(names, string(mode))
		}
		sections = append(sections, h.valueSection("Glitch modes:", names))
	}

	return strings.Join(sections, "\n\n")
}

// valueSection renders a heading followed by items wrapped at helpWrapWidth.
// Items may carry ANSI styling; wrapping uses their printed width.
func (h *HelpFormatter) valueSection(heading string, items []string) string {
	var builder strings.Builder
	builder.WriteString(h.styles.Heading.Render(heading))

	column := 0
	for _, item := range items {
		width := lipgloss.Width(item)
		if column == 0 || column+2+width > helpWrapWidth {
			builder.WriteString("\n  ")
			column = 2
		} else {
			builder.WriteString("  ")
			column += 2
		}
		builder.WriteString(item)
		column += width
	}

	return builder.String()
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
