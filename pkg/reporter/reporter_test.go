package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/reporter"
	"github.com/yaklabco/jpglitch/pkg/runner"
)

func outcome(path string, data []byte) runner.FileOutcome {
	return runner.FileOutcome{
		Path:    path,
		Size:    int64(len(data)),
		Summary: jpegmap.Summarize(jpegmap.Classify(data)),
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{Files: []runner.FileOutcome{
		outcome("/work/good.jpg", []byte{0xFF, 0xD8, 0xFF, 0xDA, 0x00, 0x02, 0x11, 0xFF, 0xD9}),
		outcome("/work/cut.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x40, 0x01}),
		outcome("/work/fake.jpg", []byte("not an image")),
		{Path: "/work/locked.jpg", Error: errors.New("permission denied")},
	}}
}

func render(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	if opts.Color == "" {
		opts.Color = "never"
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "table", want: reporter.FormatTable},
		{input: "json", want: reporter.FormatJSON},
		{input: "summary", want: reporter.FormatSummary},
		{input: "sarif", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatSummary.IsValid())
	assert.False(t, reporter.Format("").IsValid())
	assert.False(t, reporter.Format("xml").IsValid())
	assert.Equal(t, "table", reporter.FormatTable.String())
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestReporter_IssueCount(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{
		reporter.FormatText, reporter.FormatTable, reporter.FormatJSON, reporter.FormatSummary,
	} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			_, count := render(t, reporter.Options{Format: format}, sampleResult())
			assert.Equal(t, 2, count)

			_, strictCount := render(t, reporter.Options{Format: format, Strict: true}, sampleResult())
			assert.Equal(t, 3, strictCount)
		})
	}
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.Options{
		Format:      reporter.FormatText,
		ShowSummary: true,
		WorkingDir:  "/work",
	}, sampleResult())

	assert.NotContains(t, out, "good.jpg", "complete files are quiet by default")
	assert.Contains(t, out, "cut.jpg: truncated (malformed segment at 0x00000002, 5 unknown bytes)")
	assert.Contains(t, out, "fake.jpg: not a JPEG file")
	assert.Contains(t, out, "locked.jpg: error: permission denied")
	assert.True(t, strings.HasSuffix(out, "2 issues in 4 files (1 unrecognized, 1 unreadable), 1 truncated\n"))

	verbose, _ := render(t, reporter.Options{Format: reporter.FormatText, Verbose: true, WorkingDir: "/work"}, sampleResult())
	assert.Contains(t, verbose, "good.jpg: complete (9 bytes)")
}

func TestTextRenderer_Empty(t *testing.T) {
	t.Parallel()

	out, count := render(t, reporter.Options{Format: reporter.FormatText, ShowSummary: true}, &runner.Result{})
	assert.Equal(t, "No files to scan.\n", out)
	assert.Equal(t, 0, count)
}

func TestTableRenderer(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.Options{Format: reporter.FormatTable, ShowSummary: true, WorkingDir: "/work"}, sampleResult())

	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "truncated")
	assert.Contains(t, out, "unrecognized")
	assert.Contains(t, out, "4 files scanned")
}

func TestSummaryRenderer(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())

	assert.Contains(t, out, "Regions Summary")
	assert.Contains(t, out, "scan-data")
	assert.Contains(t, out, "Scan found issues")

	empty, _ := render(t, reporter.Options{Format: reporter.FormatSummary}, nil)
	assert.Equal(t, "No files to scan.\n", empty)
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	out, _ := render(t, reporter.Options{Format: reporter.FormatJSON, Compact: true, WorkingDir: "/work"}, sampleResult())
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output is one line")

	var decoded struct {
		Version string `json:"version"`
		Files   []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"files"`
		ByRegion []struct {
			Region string `json:"region"`
			Bytes  int    `json:"bytes"`
		} `json:"byRegion"`
		Summary struct {
			Files  int `json:"filesScanned"`
			Issues int `json:"issues"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "1.0.0", decoded.Version)
	require.Len(t, decoded.Files, 4)
	assert.Equal(t, "good.jpg", decoded.Files[0].Path)
	assert.Equal(t, "complete", decoded.Files[0].Status)
	assert.Equal(t, "error", decoded.Files[3].Status)
	assert.Equal(t, 4, decoded.Summary.Files)
	assert.Equal(t, 2, decoded.Summary.Issues)
	assert.NotEmpty(t, decoded.ByRegion)
	assert.Equal(t, "unknown", decoded.ByRegion[0].Region)
}
