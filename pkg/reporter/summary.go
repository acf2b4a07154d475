package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/analysis"
)

// SummaryRenderer formats results as aggregated region and status tables.
type SummaryRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	styles, colorEnabled := newStyles(opts)
	return &SummaryRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, pretty.TerminalWidth(opts.Writer)),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Files == 0 {
		fmt.Fprintln(bw, r.styles.Success.Render("No files to scan."))
		return nil
	}

	if len(report.ByRegion) > 0 {
		fmt.Fprintln(bw, r.styles.Bold.Render("Regions Summary"))
		fmt.Fprint(bw, r.formatter.FormatRegionTable(report.ByRegion))
	}

	fmt.Fprint(bw, r.styles.FormatSummary(report.Totals))

	return nil
}
