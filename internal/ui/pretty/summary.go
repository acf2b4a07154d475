package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/jpglitch/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(count int, singular, many string) string {
	if count == 1 {
		return singular
	}
	return many
}

// FormatSummaryOneLine formats scan totals as a single line.
// Example: "2 issues in 12 files (1 unrecognized, 1 unreadable), 3 truncated".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	checked := fmt.Sprintf(" (%d %s scanned)", totals.Files, plural(totals.Files, wordFile, wordFiles))

	var notes []string
	if totals.Truncated > 0 {
		notes = append(notes, s.Warning.Render(fmt.Sprintf("%d truncated", totals.Truncated)))
	}
	if totals.Partial > 0 {
		notes = append(notes, s.Info.Render(fmt.Sprintf("%d partial", totals.Partial)))
	}

	if totals.Issues == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(checked)
		if len(notes) > 0 {
			msg += ", " + strings.Join(notes, ", ")
		}
		return msg + "\n"
	}

	var breakdown []string
	if totals.Unrecognized > 0 {
		breakdown = append(breakdown, s.Error.Render(fmt.Sprintf("%d unrecognized", totals.Unrecognized)))
	}
	if totals.Errored > 0 {
		breakdown = append(breakdown, s.Error.Render(fmt.Sprintf("%d unreadable", totals.Errored)))
	}

	line := fmt.Sprintf("%d %s in %d %s",
		totals.Issues, plural(totals.Issues, "issue", "issues"),
		totals.Files, plural(totals.Files, wordFile, wordFiles),
	)
	if len(breakdown) > 0 {
		line += " (" + strings.Join(breakdown, ", ") + ")"
	}
	if len(notes) > 0 {
		line += ", " + strings.Join(notes, ", ")
	}

	return line + "\n"
}

// FormatSummary formats scan totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files scanned:     " +
		s.SummaryValue.Render(strconv.Itoa(totals.Files)) + "\n")
	builder.WriteString("  Bytes scanned:     " +
		s.SummaryValue.Render(strconv.FormatInt(totals.Bytes, 10)) + "\n")

	builder.WriteString("\n")

	builder.WriteString("  Recognized:        " +
		s.SummaryValue.Render(strconv.Itoa(totals.Recognized)) + "\n")
	if totals.Complete > 0 {
		builder.WriteString("    Complete:        " +
			s.Success.Render(strconv.Itoa(totals.Complete)) + "\n")
	}
	if totals.Partial > 0 {
		builder.WriteString("    Partial:         " +
			s.Info.Render(strconv.Itoa(totals.Partial)) + "\n")
	}
	if totals.Truncated > 0 {
		builder.WriteString("    Truncated:       " +
			s.Warning.Render(strconv.Itoa(totals.Truncated)) + "\n")
	}
	if totals.Unrecognized > 0 {
		builder.WriteString("  Unrecognized:      " +
			s.Error.Render(strconv.Itoa(totals.Unrecognized)) + "\n")
	}
	if totals.Errored > 0 {
		builder.WriteString("  Unreadable:        " +
			s.Error.Render(strconv.Itoa(totals.Errored)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case totals.Issues > 0:
		builder.WriteString(s.Failure.Render("Scan found issues"))
	case totals.Truncated > 0:
		builder.WriteString(s.Warning.Render("Scan completed with truncated files"))
	default:
		builder.WriteString(s.Success.Render("Scan passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
