package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// layoutCommand builds the "layout" subcommand: load a Document, run its
// matching layout engine, and dump the resulting Layout as indented JSON
// for debugging or golden-file snapshotting.
func (c *CLI) layoutCommand() *cobra.Command {
	var configPath, output string

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Dump the computed layout for a diagram document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installTimingFromEnv()
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			doc.applyConfig(cfg)

			l, err := doc.buildLayout()
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(l, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
			} else {
				err = os.WriteFile(output, data, 0o644)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file merged over defaults")

	return cmd
}
