package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/glitch"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/patch"
)

// Sentinel errors for the glitch command.
var (
	ErrNotJPEG        = errors.New("not a JPEG file")
	ErrOutputRequired = errors.New("--output is required unless --dry-run is set")
)

type glitchFlags struct {
	output  string
	mode    string
	count   int
	delta   int
	seed    uint64
	regions []string
	dryRun  bool
}

func newGlitchCommand() *cobra.Command {
	flags := &glitchFlags{}

	cmd := &cobra.Command{
		Use:   "glitch FILE",
		Short: "Corrupt bytes in chosen regions of a JPEG file",
		Long: `Rewrite randomly chosen bytes inside the chosen regions of a JPEG file.

Bytes are only picked where a change cannot create a new marker, so the file
keeps its structure while the image data breaks up. The same --seed always
picks the same bytes; without one a seed is chosen and logged so a good
result can be reproduced.

Modes:
  randomize   replace each byte with a random value
  shift       add --delta to each byte
  invert      flip every bit
  zero        clear each byte

Examples:
  jpglitch glitch photo.jpg -o glitched.jpg
  jpglitch glitch photo.jpg -o out.jpg --mode shift --delta 4 --count 64
  jpglitch glitch photo.jpg -o out.jpg --region quantization-table --count 2
  jpglitch glitch photo.jpg --seed 42 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlitch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write the glitched image to")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "glitch mode: randomize, shift, invert, zero")
	cmd.Flags().IntVar(&flags.count, "count", 0, "number of bytes to change")
	cmd.Flags().IntVar(&flags.delta, "delta", 0, "amount added by shift mode")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().StringSliceVar(&flags.regions, "region", nil, "regions to glitch (default: scan-data)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the planned changes without writing")

	return cmd
}

func runGlitch(cmd *cobra.Command, path string, flags *glitchFlags) error {
	logger := logging.Default()

	if flags.output == "" && !flags.dryRun {
		return ErrOutputRequired
	}

	cliCfg := &config.Config{
		Glitch: config.GlitchConfig{
			Mode:    flags.mode,
			Count:   flags.count,
			Delta:   flags.delta,
			Regions: flags.regions,
		},
	}

	cfg, _, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := glitchOptions(cfg.Glitch)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = flags.seed
	} else {
		opts.Seed = rand.Uint64()
	}

	ctx := commandContext(cmd)
	buf, info, err := openBuffer(ctx, cfg, path)
	if err != nil {
		return err
	}
	snapshot := buf.Current()
	if !snapshot.Recognized() {
		return fmt.Errorf("%w: %s", ErrNotJPEG, path)
	}

	logger.Debug("glitching",
		logging.FieldPath, path,
		logging.FieldMode, opts.Mode,
		logging.FieldCount, opts.Count,
		logging.FieldSeed, opts.Seed,
	)

	if flags.dryRun {
		out := cmd.OutOrStdout()
		edits := glitch.Plan(snapshot.Data, snapshot.Layout, opts)
		// Adjacent picks are reported as one span.
		spans := patch.Diff(snapshot.Data, patch.ApplyEdits(snapshot.Data, edits))
		for _, span := range spans {
			fmt.Fprintf(out, "0x%08x  %-20s % x -> % x\n",
				span.StartOffset, snapshot.RegionAt(span.StartOffset),
				snapshot.Data[span.StartOffset:span.EndOffset], span.NewBytes)
		}
		fmt.Fprintf(out, "%d bytes would change (seed %d)\n", patch.ChangedBytes(spans), opts.Seed)
		return nil
	}

	changed, err := glitch.Apply(buf, opts)
	if err != nil {
		return fmt.Errorf("apply glitch: %w", err)
	}

	if err := writeResult(ctx, cfg, path, flags.output, info, buf.Current().Data); err != nil {
		return err
	}

	logger.Info("glitched",
		logging.FieldOutput, flags.output,
		logging.FieldChanged, changed,
		logging.FieldSeed, opts.Seed,
	)
	return nil
}

// glitchOptions converts resolved glitch configuration into plan options.
func glitchOptions(cfg config.GlitchConfig) (glitch.Options, error) {
	opts := glitch.DefaultOptions()

	if cfg.Mode != "" {
		mode, err := glitch.ParseMode(cfg.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if cfg.Count > 0 {
		opts.Count = cfg.Count
	}
	if cfg.Delta > 0 {
		opts.Delta = byte(cfg.Delta)
	}
	if len(cfg.Regions) > 0 {
		regions, err := jpegmap.ParseRegions(cfg.Regions)
		if err != nil {
			return opts, err
		}
		opts.Regions = regions
	}

	return opts, nil
}
