package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/buffer"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/patch"
)

// ErrReplaceNeedsOutput is returned when --replace is given without --output.
var ErrReplaceNeedsOutput = errors.New("--replace requires --output")

type findFlags struct {
	from    int
	all     bool
	reverse bool
	replace string
	output  string
}

func newFindCommand() *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find FILE PATTERN",
		Short: "Search a file for a byte pattern",
		Long: `Search a file for a byte pattern and print the offset and region of each match.

PATTERN is hexadecimal ("ffd8", "FF D8", "0xffd8") or literal text with an
"ascii:" prefix. Without --all only the first match at or after --from is
printed; with --reverse it is the last match starting before --from (or before
the end of the file). --replace overwrites matches with a pattern of the same
length and writes the result to --output.

Examples:
  jpglitch find photo.jpg "ff da"                      First start-of-scan
  jpglitch find photo.jpg ffd0 --all                   Every RST0 marker
  jpglitch find photo.jpg ascii:Exif --from 100
  jpglitch find photo.jpg ffd9 --reverse               Last end-of-image
  jpglitch find photo.jpg 0000 --all --replace 1111 -o out.jpg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().IntVar(&flags.from, "from", 0, "start searching at this offset")
	cmd.Flags().BoolVar(&flags.all, "all", false, "report every match")
	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "search backwards from --from")
	cmd.Flags().StringVar(&flags.replace, "replace", "", "replacement pattern of the same length")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write replacements to")

	return cmd
}

func runFind(cmd *cobra.Command, path, rawPattern string, flags *findFlags) error {
	pattern, err := buffer.ParsePattern(rawPattern)
	if err != nil {
		return err
	}

	var replacement []byte
	if cmd.Flags().Changed("replace") {
		if flags.output == "" {
			return ErrReplaceNeedsOutput
		}
		replacement, err = buffer.ParsePattern(flags.replace)
		if err != nil {
			return err
		}
		if len(replacement) != len(pattern) {
			return fmt.Errorf("replacement is %d bytes, pattern is %d", len(replacement), len(pattern))
		}
	}

	cfg, _, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	buf, info, err := openBuffer(ctx, cfg, path)
	if err != nil {
		return err
	}
	snapshot := buf.Current()

	var matches []int
	if flags.all {
		for _, offset := range buffer.FindAll(snapshot.Data, pattern) {
			if offset >= flags.from {
				matches = append(matches, offset)
			}
		}
	} else if offset := findOne(cmd, buf, pattern, flags); offset >= 0 {
		matches = append(matches, offset)
	}

	out := cmd.OutOrStdout()
	for _, offset := range matches {
		fmt.Fprintf(out, "0x%08x  %s\n", offset, snapshot.RegionAt(offset))
	}
	if len(matches) == 0 {
		fmt.Fprintln(out, "no matches")
		return nil
	}

	if replacement == nil {
		return nil
	}

	replaced, err := replaceMatches(buf, matches, pattern, replacement, flags)
	if err != nil {
		return err
	}

	if err := writeResult(ctx, cfg, path, flags.output, info, buf.Current().Data); err != nil {
		return err
	}

	logging.Default().Info("replaced matches",
		logging.FieldCount, replaced,
		logging.FieldOutput, flags.output,
	)
	return nil
}

// findOne returns the single match the flags select, or -1.
func findOne(cmd *cobra.Command, buf *buffer.Buffer, pattern []byte, flags *findFlags) int {
	if !flags.reverse {
		return buf.Find(pattern, flags.from)
	}

	before := flags.from
	if !cmd.Flags().Changed("from") {
		before = buf.Len()
	}
	return buf.FindPrevious(pattern, before)
}

// replaceMatches overwrites every match as one snapshot and returns how many
// were replaced.
func replaceMatches(buf *buffer.Buffer, matches []int, pattern, replacement []byte, flags *findFlags) (int, error) {
	switch {
	case !flags.all:
		if buf.Replace(matches[0], pattern, replacement) {
			return 1, nil
		}
		return 0, nil
	case flags.from <= 0:
		return buf.ReplaceAll(pattern, replacement), nil
	}

	builder := patch.NewEditBuilder()
	for _, offset := range matches {
		builder.ReplaceRange(offset, offset+len(pattern), replacement)
	}
	if err := buf.ApplyEdits(builder.Edits); err != nil {
		return 0, fmt.Errorf("replace matches: %w", err)
	}
	return len(matches), nil
}
