package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/internal/tui"
	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

func newEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a file interactively in a hex grid",
		Long: `Open FILE in a full-screen hex editor with every byte colored by region.

Type hex digits to change the byte under the cursor one nibble at a time,
press i to insert bytes instead of overwriting them, and undo or redo any
change. tab picks a region and n/N jump to its next or previous run.
ctrl+s saves over the file, keeping a backup of the original.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0])
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, path string) error {
	cfg, _, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	jumpable, err := jpegmap.ParseRegions(cfg.Jumpable)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	buf, info, err := openBuffer(ctx, cfg, path)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout)).WithRegionColors(cfg.Colors)

	// Log lines would tear the full-screen view.
	previous := logging.Default()
	logging.SetDefault(logging.NewWithWriter(io.Discard, "error"))
	defer logging.SetDefault(previous)

	return tui.Run(ctx, buf, tui.Options{
		Path:     path,
		Info:     info,
		Backups:  backupConfig(cfg),
		Jumpable: jumpable,
		Styles:   styles,
	})
}
