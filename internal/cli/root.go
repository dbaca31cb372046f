// Package cli implements the reveal command-line interface.
//
// # Commands
//
//   - lines: measure text headlessly and print the inferred visual lines
//   - preview: play the reveal in the terminal
//   - play: play the reveal in a window
//
// All commands accept --config (a TOML or YAML options file) and --verbose
// (-v) for debug-level logging. The logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/reveal"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the reveal CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "reveal",
		Short:        "Reveal measures text into lines and slides them into view",
		Long:         `Reveal splits text into the visual lines it wraps to, then animates each line (or word) up from behind a clip, staggered.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			reveal.SetLogger(logger.WithPrefix("reveal"))
			if verbose {
				reveal.SetDebugMode(true)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("reveal %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLinesCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newPlayCmd())

	return root
}

// readFont loads a font file, or returns nil data when path is empty.
func readFont(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}
