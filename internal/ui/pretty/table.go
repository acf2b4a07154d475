package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/jpglitch/pkg/analysis"
)

// Table formatting constants.
const (
	issueSymbol     = "!"
	tablePadding    = 2
	fileColumnCount = 5 // FILE, STATUS, SIZE, UNKNOWN, NOTE
	issueColWidth   = 2
	minFileWidth    = 20
	statusWidth     = 12
	numberWidth     = 10
	minNoteWidth    = 16
	regionColWidth  = 20
	shareColWidth   = 7
	heavySeparator  = "="
	lightSeparator  = "-"
	percent         = 100
)

// TableFormatter formats scan reports as styled tables.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type fileColumnWidths struct {
	file int
	note int
}

func (w fileColumnWidths) total() int {
	return w.file + statusWidth + numberWidth*2 + w.note + tablePadding*fileColumnCount + issueColWidth
}

// FormatFileTable formats one row per file.
func (t *TableFormatter) FormatFileTable(files []analysis.FileAnalysis) string {
	if len(files) == 0 {
		return ""
	}

	widths := t.fileWidths(files)

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		statusWidth, "STATUS",
		numberWidth, "SIZE",
		numberWidth, "UNKNOWN",
		widths.note, "NOTE",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.separator(widths.total(), heavySeparator) + "\n")

	for _, file := range files {
		builder.WriteString(t.formatFileRow(file, widths) + "\n")
	}

	builder.WriteString(t.separator(widths.total(), heavySeparator) + "\n")
	builder.WriteString(t.formatLegend() + "\n")

	return builder.String()
}

func (t *TableFormatter) fileWidths(files []analysis.FileAnalysis) fileColumnWidths {
	widths := fileColumnWidths{file: minFileWidth, note: minNoteWidth}

	for _, file := range files {
		widths.file = max(widths.file, len(file.Path))
		widths.note = max(widths.note, len(fileNote(file)))
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.note = max(minNoteWidth, widths.note-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatFileRow(file analysis.FileAnalysis, widths fileColumnWidths) string {
	issue := " "
	if file.Issue {
		issue = t.styles.Error.Render(issueSymbol)
	}

	unknown := ""
	if file.Status != analysis.StatusError && file.Status != analysis.StatusUnrecognized {
		unknown = strconv.Itoa(file.UnknownBytes)
	}

	content := fmt.Sprintf(" %-*s  %-*s  %*d  %*s  %-*s",
		widths.file, truncateFilePath(file.Path, widths.file),
		statusWidth, file.Status,
		numberWidth, file.Size,
		numberWidth, unknown,
		widths.note, truncateString(fileNote(file), widths.note),
	)

	return t.rowStyle(file.Status).Render(content) + " " + issue
}

// fileNote explains a status in a few words.
func fileNote(file analysis.FileAnalysis) string {
	switch file.Status {
	case analysis.StatusError:
		return file.Error
	case analysis.StatusUnrecognized:
		return "no start marker"
	case analysis.StatusTruncated:
		return fmt.Sprintf("malformed segment at 0x%x", file.FirstUnknown)
	case analysis.StatusPartial:
		return fmt.Sprintf("unknown from 0x%x", file.FirstUnknown)
	default:
		return fmt.Sprintf("%d end %s", file.EndMarkers, plural(file.EndMarkers, "marker", "markers"))
	}
}

func (t *TableFormatter) rowStyle(status analysis.Status) lipgloss.Style {
	switch status {
	case analysis.StatusError, analysis.StatusUnrecognized:
		return t.styles.TableErrorRow
	case analysis.StatusTruncated, analysis.StatusPartial:
		return t.styles.TableWarnRow
	default:
		return lipgloss.NewStyle()
	}
}

// FormatRegionTable formats the per-region aggregation, each region in its color.
func (t *TableFormatter) FormatRegionTable(regions []analysis.RegionAnalysis) string {
	if len(regions) == 0 {
		return ""
	}

	total := regionColWidth + numberWidth*3 + shareColWidth + tablePadding*5

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %*s  %*s  %*s  %*s",
		regionColWidth, "REGION",
		numberWidth, "BYTES",
		numberWidth, "RUNS",
		numberWidth, "FILES",
		shareColWidth, "SHARE",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.separator(total, lightSeparator) + "\n")

	for _, region := range regions {
		name := t.styles.Region(region.Region).Render(fmt.Sprintf("%-*s", regionColWidth, region.Region))
		builder.WriteString(fmt.Sprintf(" %s  %*d  %*d  %*d  %*s\n",
			name,
			numberWidth, region.Bytes,
			numberWidth, region.Runs,
			numberWidth, region.Files,
			shareColWidth, fmt.Sprintf("%.1f%%", region.Share*percent),
		))
	}

	return builder.String()
}

func (t *TableFormatter) separator(width int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, width))
}

// formatLegend formats the legend explaining the table symbols and colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(
			fmt.Sprintf(" Legend: %s = counts as an issue", issueSymbol),
		)
	}

	errorSample := t.styles.TableErrorRow.Render(" unreadable or not JPEG ")
	warnSample := t.styles.TableWarnRow.Render(" truncated or partial ")
	issueSample := t.styles.Error.Render(issueSymbol)

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s = counts as an issue", errorSample, warnSample, issueSample),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{fmt.Sprintf("%d %s scanned", totals.Files, plural(totals.Files, wordFile, wordFiles))}

	if totals.Complete > 0 {
		parts = append(parts, t.styles.Success.Render(fmt.Sprintf("%d complete", totals.Complete)))
	}
	if totals.Truncated > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d truncated", totals.Truncated)))
	}
	if totals.Unrecognized > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d unrecognized", totals.Unrecognized)))
	}
	if totals.Errored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d unreadable", totals.Errored)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
