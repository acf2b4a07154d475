package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/analysis"
)

// TextRenderer writes one line per file that needs attention, then a summary line.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	styles, _ := newStyles(opts)
	return &TextRenderer{opts: opts, styles: styles}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
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

	for _, file := range report.Files {
		if file.Status == analysis.StatusComplete && !r.opts.Verbose {
			continue
		}
		fmt.Fprintln(bw, r.formatFile(file))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

func (r *TextRenderer) formatFile(file analysis.FileAnalysis) string {
	path := r.styles.FilePath.Render(file.Path)

	switch file.Status {
	case analysis.StatusError:
		return fmt.Sprintf("%s: %s", path, r.styles.Error.Render("error: "+file.Error))
	case analysis.StatusUnrecognized:
		return fmt.Sprintf("%s: %s", path, r.styles.Error.Render("not a JPEG file"))
	case analysis.StatusTruncated:
		return fmt.Sprintf("%s: %s %s", path,
			r.styles.Warning.Render("truncated"),
			r.styles.Dim.Render(fmt.Sprintf("(malformed segment at 0x%08x, %d unknown bytes)", file.FirstUnknown, file.UnknownBytes)),
		)
	case analysis.StatusPartial:
		return fmt.Sprintf("%s: %s %s", path,
			r.styles.Info.Render("partial"),
			r.styles.Dim.Render(fmt.Sprintf("(%d unknown bytes from 0x%08x)", file.UnknownBytes, file.FirstUnknown)),
		)
	default:
		return fmt.Sprintf("%s: %s %s", path,
			r.styles.Success.Render("complete"),
			r.styles.Dim.Render(fmt.Sprintf("(%d bytes)", file.Size)),
		)
	}
}
