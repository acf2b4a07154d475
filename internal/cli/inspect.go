package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

type inspectFlags struct {
	dump   bool
	format string
	region string
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the region layout of a JPEG file",
		Long: `Classify every byte of a JPEG file and print its region runs.

With --dump the file is printed as a hex dump colored by region instead.
--region restricts either listing to one region.

Examples:
  jpglitch inspect photo.jpg                       List region runs
  jpglitch inspect photo.jpg --region comment      Only comment segments
  jpglitch inspect photo.jpg --dump                Colorized hex dump
  jpglitch inspect photo.jpg --format json         Machine-readable layout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dump, "dump", false, "print a hex dump colored by region")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&flags.region, "region", "", "only show this region")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, flags *inspectFlags) error {
	if flags.format != string(config.FormatText) && flags.format != string(config.FormatJSON) {
		return fmt.Errorf("invalid format %q: must be text or json", flags.format)
	}

	var only *jpegmap.Region
	if flags.region != "" {
		region, err := jpegmap.ParseRegion(flags.region)
		if err != nil {
			return err
		}
		only = &region
	}

	cfg, _, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	buf, _, err := openBuffer(commandContext(cmd), cfg, path)
	if err != nil {
		return err
	}
	snapshot := buf.Current()

	out := cmd.OutOrStdout()
	if flags.format == string(config.FormatJSON) {
		return writeInspectJSON(out, path, snapshot.Data, snapshot.Layout, only)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out)).WithRegionColors(cfg.Colors)

	fmt.Fprintln(out, styles.FormatLayoutHeader(path, jpegmap.Summarize(snapshot.Layout)))

	if flags.dump {
		writeDump(out, styles, snapshot.Data, snapshot.Layout, only)
		return nil
	}

	fmt.Fprint(out, styles.FormatLayout(snapshot.Layout, snapshot.Data, only))
	return nil
}

// writeDump prints the whole file, or only the runs of one region, as hex rows.
func writeDump(out io.Writer, styles *pretty.Styles, data []byte, layout *jpegmap.Layout, only *jpegmap.Region) {
	dump := pretty.NewHexDump(styles, pretty.BytesPerRow(pretty.TerminalWidth(out)))

	if only == nil {
		fmt.Fprint(out, dump.Format(data, layout, 0, len(data)))
		fmt.Fprintln(out, styles.FormatRegionLegend(presentRegions(layout)))
		return
	}

	for _, run := range layout.Runs() {
		if run.Region != *only {
			continue
		}
		fmt.Fprintln(out, styles.FormatRun(run, data))
		fmt.Fprint(out, dump.Format(data, layout, run.StartOffset, run.EndOffset))
	}
}

// presentRegions lists the regions that occur in layout, in display order.
func presentRegions(layout *jpegmap.Layout) []jpegmap.Region {
	if layout == nil {
		return []jpegmap.Region{jpegmap.Unknown}
	}

	seen := make(map[jpegmap.Region]bool)
	for _, region := range layout.Regions {
		seen[region] = true
	}

	return slices.DeleteFunc(jpegmap.AllRegions(), func(region jpegmap.Region) bool {
		return !seen[region]
	})
}

type inspectRun struct {
	Region jpegmap.Region `json:"region"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Length int            `json:"length"`
	Marker string         `json:"marker,omitempty"`
}

type inspectReport struct {
	Path         string       `json:"path"`
	Size         int          `json:"size"`
	Recognized   bool         `json:"recognized"`
	Complete     bool         `json:"complete"`
	Truncated    bool         `json:"truncated"`
	EndMarkers   int          `json:"endMarkers"`
	FirstUnknown int          `json:"firstUnknown"`
	Runs         []inspectRun `json:"runs"`
}

func writeInspectJSON(out io.Writer, path string, data []byte, layout *jpegmap.Layout, only *jpegmap.Region) error {
	summary := jpegmap.Summarize(layout)

	report := inspectReport{
		Path:         path,
		Size:         len(data),
		Recognized:   summary.Recognized,
		Complete:     summary.Complete,
		Truncated:    summary.Truncated,
		EndMarkers:   summary.EndMarkers,
		FirstUnknown: summary.FirstUnknown,
		Runs:         []inspectRun{},
	}

	for _, run := range layout.Runs() {
		if only != nil && run.Region != *only {
			continue
		}
		entry := inspectRun{
			Region: run.Region,
			Start:  run.StartOffset,
			End:    run.EndOffset,
			Length: run.Len(),
		}
		if run.Region != jpegmap.ScanData && run.Region != jpegmap.Unknown {
			if id, ok := jpegmap.MarkerAt(data, run.StartOffset); ok {
				entry.Marker = jpegmap.MarkerName(id)
			}
		}
		report.Runs = append(report.Runs, entry)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}
