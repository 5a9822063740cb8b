// Package cli implements the mermango command-line interface.
//
// This package wraps the headless layout/emission core (pkg/diagram,
// pkg/layout/*, pkg/svg, pkg/parity) with the ambient concerns the core
// deliberately stays free of: reading a diagram document from disk,
// loading and merging a TOML configuration file, structured logging, and
// optional timing telemetry. It is built with cobra and logs via
// charmbracelet/log, the same stack the CLI this repository was adapted
// from uses for the same job.
//
// # Commands
//
// The main commands are:
//   - render: build a layout and emit SVG for a diagram document
//   - layout: build a layout and dump it as indented JSON
//   - graph: render a flowchart document's raw node/edge structure via
//     Graphviz, for debugging input shape independent of our own layout
//   - serve: a small HTTP preview server for iterating on a document
//   - version: build metadata (also available via the root --version flag)
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// logger is threaded through context.Context so subcommands never reach
// for a package-level global.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/merman-go/merman/pkg/buildinfo"
)

const appName = "mermango"

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
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "mermango renders diagram documents to SVG",
		Long:         `mermango is a headless layout and SVG emission engine for flowchart, architecture, sequence, pie, kanban, gantt, and mindmap diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}
