// Package cli implements the cobra-based commands of the mosaic binary.
//
// Each subcommand (build, prompt, serve) is defined in its own file. This
// file defines the root command, the flags shared by every subcommand, and
// the error reporting used by Execute.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-mosaic/internal/config"
)

// Version information, injected from main at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	configPath string
	verbose    bool
	quiet      bool
}

// logger returns the destination for build progress and per-image
// failures: stderr by default, nothing with --quiet.
func (g *globalFlags) logger() *log.Logger {
	if g.quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.Default()
}

// loadConfig returns the defaults, overlaid with the --config preset when
// one was given.
func (g *globalFlags) loadConfig() (config.Config, error) {
	if g.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, WrapExitError(ExitInvalidParameter, "failed to load config", err)
	}
	return cfg, nil
}

// verboseLog prints to stderr only when --verbose is set.
func (g *globalFlags) verboseLog(format string, args ...interface{}) {
	if g.verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// NewRootCommand creates the root command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mosaic",
		Short: "Build random image mosaics from a folder of pictures",
		Long: `mosaic picks images at random from a folder, stretches each one to a fixed
tile size and pastes them into an n x n grid.

When the folder holds fewer than n*n images, the shuffled list is repeated
so that every cell is filled.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML preset with default build parameters")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print one line per cell, filled or skipped")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress build log output")

	rootCmd.AddCommand(NewBuildCommand(flags))
	rootCmd.AddCommand(NewPromptCommand(flags))
	rootCmd.AddCommand(NewServeCommand(flags))

	return rootCmd
}

// Execute runs the root command and exits with the code matching the error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		exitErr := AsExitError(err)
		printError(rootCmd.ErrOrStderr(), exitErr)
		os.Exit(int(exitErr.Code))
	}
}

// printError writes "Error: <message>: <cause>" to w.
func printError(w io.Writer, err *ExitError) {
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}
