// Package cli implements the laf command-line interface.
//
// This package provides commands for running the Layout-Abstract-First
// pipeline over a parsed diagram, rendering the result to SVG, exporting its
// reduced structure graph as Graphviz DOT, and serving recorded phase
// snapshots over HTTP for debugging. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: parse a diagram and run the pipeline, writing a positioned layout
//   - render: parse+layout a diagram and render it straight to SVG
//   - dot: export a diagram's reduced structure graph as Graphviz DOT/SVG
//   - serve: serve recorded phase snapshots over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abstractlayout/laf/internal/obslog"
	"github.com/abstractlayout/laf/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: obslog.New(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "laf",
		Short:        "laf lays out directed, hierarchical diagrams",
		Long:         `laf is a CLI tool implementing the Layout-Abstract-First pipeline: it positions a diagram's elements and containers to minimise edge crossings, then renders the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(obslog.WithLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
