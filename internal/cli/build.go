package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-mosaic/internal/config"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// buildFlags holds the flag values of the build command.
type buildFlags struct {
	grid       int
	tileWidth  int
	tileHeight int
	output     string
	background string
	quality    int
	seed       uint64
}

// NewBuildCommand creates the "build" command.
func NewBuildCommand(global *globalFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [folder]",
		Short: "Build a mosaic and save it",
		Long: `Build an n x n mosaic from the png, jpg, jpeg and bmp files of a folder
and save it. The output format follows the extension of --output.

Examples:
  mosaic build photos
  mosaic build photos -n 5 --tile-width 160 --tile-height 120 -o wall.jpg
  mosaic build --config holiday.yaml --seed 42`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			applyBuildFlags(cmd, &cfg, flags)
			if len(args) == 1 {
				cfg.Folder = args[0]
			}
			return runBuild(cmd.OutOrStdout(), global, cfg)
		},
	}

	defaults := config.Default()
	cmd.Flags().IntVarP(&flags.grid, "grid", "n", defaults.Grid, "Grid dimension: the mosaic has n x n tiles")
	cmd.Flags().IntVar(&flags.tileWidth, "tile-width", defaults.TileWidth, "Tile width in pixels")
	cmd.Flags().IntVar(&flags.tileHeight, "tile-height", defaults.TileHeight, "Tile height in pixels")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaults.Output, "Output file; the extension selects the format")
	cmd.Flags().StringVar(&flags.background, "background", defaults.Background, "Canvas colour shown in cells that could not be filled")
	cmd.Flags().IntVar(&flags.quality, "quality", defaults.JPEGQuality, "JPEG quality (1-100)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for a reproducible selection (default: random)")

	return cmd
}

// applyBuildFlags copies the flags the user actually set over cfg, so that
// a preset file is only overridden where asked.
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config, flags *buildFlags) {
	changed := cmd.Flags().Changed
	if changed("grid") {
		cfg.Grid = flags.grid
	}
	if changed("tile-width") {
		cfg.TileWidth = flags.tileWidth
	}
	if changed("tile-height") {
		cfg.TileHeight = flags.tileHeight
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("background") {
		cfg.Background = flags.background
	}
	if changed("quality") {
		cfg.JPEGQuality = flags.quality
	}
	if changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}
}

// runBuild builds the mosaic described by cfg, reports skipped cells, and
// saves the result.
func runBuild(out io.Writer, global *globalFlags, cfg config.Config) error {
	opts, err := cfg.BuildOptions()
	if err != nil {
		return AsExitError(err)
	}
	opts.Logger = global.logger()
	opts.OnCell = func(c mosaic.CellResult) {
		global.verboseLog("cell (%d,%d) %s: %s", c.Row, c.Col, c.Status, c.Path)
	}

	result, err := mosaic.Build(cfg.Folder, opts)
	if err != nil {
		return AsExitError(err)
	}

	if err := mosaic.Save(result.Canvas, cfg.Output, cfg.SaveOptions()...); err != nil {
		return AsExitError(err)
	}

	reportResult(out, result, cfg.Output)
	return nil
}

// reportResult prints a one-line summary plus one line per skipped cell.
func reportResult(out io.Writer, result *mosaic.Result, path string) {
	fmt.Fprintf(out, "Mosaic %dx%d saved to %s (%d of %d cells filled)\n",
		result.Grid, result.Grid, path, result.Filled(), len(result.Cells))
	for _, c := range result.SkippedCells() {
		fmt.Fprintf(out, "  skipped cell (%d,%d): %s\n", c.Row, c.Col, c.Reason)
	}
}
