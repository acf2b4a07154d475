package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// Runner reads and classifies files with a bounded worker pool.
type Runner struct {
	// MaxFileSize caps each read. Zero or less disables the cap.
	MaxFileSize int64

	// Classify controls classification of each file.
	Classify jpegmap.Options
}

// New creates a Runner from resolved configuration. A nil cfg uses defaults.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	return &Runner{
		MaxFileSize: cfg.MaxFileSize,
		Classify:    ClassifyOptions(cfg),
	}
}

// ClassifyOptions maps configuration onto classifier options. An unknown end
// marker policy falls back to continue.
func ClassifyOptions(cfg *config.Config) jpegmap.Options {
	if cfg == nil {
		return jpegmap.DefaultOptions()
	}

	policy := jpegmap.EndPolicy(cfg.EndMarker)
	if !policy.IsValid() {
		policy = jpegmap.EndContinue
	}

	return jpegmap.Options{EndPolicy: policy}
}

// Run discovers files under opts.Paths and classifies them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// Per-file read errors are recorded on the outcome, not returned.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("scan cancelled: %w", ctx.Err())
	}

	return result, nil
}

// ScanFile reads and classifies a single file.
func (r *Runner) ScanFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path, r.MaxFileSize)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Size = info.Size
	outcome.Summary = jpegmap.Summarize(jpegmap.ClassifyWithOptions(content, r.Classify))

	return outcome
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ScanFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
