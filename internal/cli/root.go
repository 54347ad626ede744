// Package cli implements the flexgeo command-line interface.
//
// Commands read a layout document, resolve it and then render it (render),
// dump the resolved boxes as JSON (layout), or report which box lies under
// a point (hit). Defaults come from an optional TOML file (--config) and can
// be overridden per flag. Loggers travel through context.Context; --verbose
// switches to debug level and traces every resolved container.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/flexgeo/config"
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

// app carries state shared by every subcommand of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute runs the CLI with the process arguments until ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}

	root := &cobra.Command{
		Use:           "flexgeo",
		Short:         "flexgeo lays out box documents with flexbox rules",
		Long:          `flexgeo parses a box document, resolves every box with direction-aware flexbox rules and renders the result as PDF or SVG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath != "" {
				cfg, err := config.Load(a.configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			level, err := a.cfg.LogLevel()
			if err != nil {
				return err
			}
			if a.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(a.stderr, level)))
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("flexgeo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newLayoutCmd(a))
	root.AddCommand(newHitCmd(a))
	return root
}
