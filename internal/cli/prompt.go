package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-mosaic/internal/config"
)

const gridPrompt = "Enter the mosaic dimension (e.g. 3 for a 3x3 grid): "

// NewPromptCommand creates the interactive "prompt" command.
func NewPromptCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [folder]",
		Short: "Ask for the grid size, then build and save a mosaic",
		Long: `Ask for the grid dimension on the terminal, re-asking until a positive
integer is entered, then build the mosaic from the folder (default "images")
and save it to the configured output (default "mosaique.png").`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Folder = args[0]
			}

			grid, err := promptGrid(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg.Grid = grid
			return runBuild(cmd.OutOrStdout(), global, cfg)
		},
	}
}

// promptGrid asks for the grid dimension until a positive integer is read.
// Running out of input before that is an InvalidParameter failure.
func promptGrid(in *bufio.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, gridPrompt)

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof && strings.TrimSpace(line) == "" {
			return 0, &ExitError{Code: ExitInvalidParameter, Message: "no grid dimension entered"}
		}

		n, parseErr := config.ParsePositiveInt(line)
		if parseErr == nil {
			return n, nil
		}
		fmt.Fprintln(out, "Invalid input: please enter a positive integer.")
		if eof {
			return 0, WrapExitError(ExitInvalidParameter, "no valid grid dimension entered", parseErr)
		}
	}
}
