package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/analysis"
)

// TableRenderer formats results as a styled table with color-coded rows.
type TableRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
}

// NewTableRenderer creates a new table renderer sized to the output terminal.
func NewTableRenderer(opts Options) *TableRenderer {
	styles, colorEnabled := newStyles(opts)
	return &TableRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, pretty.TerminalWidth(opts.Writer)),
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if len(report.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to scan."))
		}
		return nil
	}

	fmt.Fprint(bw, r.formatter.FormatFileTable(report.Files))

	if r.opts.ShowSummary {
		fmt.Fprintln(bw, r.formatter.FormatTableSummary(report.Totals, ""))
	}

	return nil
}
