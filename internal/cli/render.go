package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/merman-go/merman/pkg/parity"
	"github.com/merman-go/merman/pkg/svg"
)

// renderCommand builds the "render" subcommand: load a Document, run its
// matching layout engine, and emit SVG to stdout or --out.
func (c *CLI) renderCommand() *cobra.Command {
	var configPath, output string
	var viewboxPadding float64
	var noOverrides bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram document to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installTimingFromEnv()
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)

			logger := loggerFromContext(ctx)
			p := newProgress(logger)

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			doc.applyConfig(cfg)

			opts := svg.DefaultOptions()
			if viewboxPadding > 0 {
				opts.ViewboxPadding = viewboxPadding
			}

			var lookup svg.OverrideLookup
			if !noOverrides {
				lookup = parity.Lookup
			}

			out, err := doc.buildSVG(opts, lookup)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write([]byte(out))
			} else {
				err = os.WriteFile(output, []byte(out), 0o644)
			}
			if err != nil {
				return err
			}

			p.done("rendered " + string(doc.Kind))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file merged over defaults")
	cmd.Flags().Float64Var(&viewboxPadding, "viewbox-padding", 0, "override the computed viewport's padding")
	cmd.Flags().BoolVar(&noOverrides, "no-parity-overrides", false, "skip the diagram-id viewport override table")

	return cmd
}
