// Package cli provides the Cobra command structure for jpglitch.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root jpglitch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "jpglitch",
		Short: "A byte-level JPEG glitch editor",
		Long: `jpglitch is a byte-level editor for JPEG files built for glitch art.

Every byte of a file is tagged with the structural region it belongs to
(markers, headers, tables, entropy-coded scan data) so edits can target the
parts of the image that corrupt interestingly instead of the parts that
break it. jpglitch can inspect and search files, apply reproducible random
glitches, scan directories for damaged images, and edit bytes interactively
with full undo and redo.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newGlitchCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newEditCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
