package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-mosaic/internal/config"
	"github.com/ironsheep/image-mosaic/internal/gui"
	"github.com/ironsheep/image-mosaic/internal/session"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	var configPath string
	cmd := &cobra.Command{
		Use:   "mosaic-gui",
		Short: "Desktop window for building random image mosaics",
		Args:  cobra.NoArgs,

		SilenceUsage: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			a := app.NewWithID("com.ironsheep.image-mosaic")
			gui.New(a, session.New(), cfg, log.Default()).ShowAndRun()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML preset used to fill the form")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
