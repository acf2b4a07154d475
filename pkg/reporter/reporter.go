// Package reporter renders scan results in text, table, JSON, and summary formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/analysis"
	"github.com/yaklabco/jpglitch/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files that count as issues and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}

func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeByFile:   true,
			IncludeByRegion: true,
			SortBy:          opts.SortBy,
			SortDesc:        true,
			Strict:          opts.Strict,
			WorkingDir:      opts.WorkingDir,
		},
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return newRendererFacade(NewJSONRenderer(opts), opts), nil
	case FormatTable:
		return newRendererFacade(NewTableRenderer(opts), opts), nil
	case FormatText:
		return newRendererFacade(NewTextRenderer(opts), opts), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// newStyles builds the styles shared by the terminal renderers.
func newStyles(opts Options) (*pretty.Styles, bool) {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return pretty.NewStyles(colorEnabled).WithRegionColors(opts.RegionColors), colorEnabled
}
