package cli

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/merman-go/merman/pkg/parity"
	"github.com/merman-go/merman/pkg/svg"
)

// serveCommand builds the "serve" subcommand: a small HTTP preview server
// for iterating on a single diagram document without re-invoking the CLI
// on every edit. Not a production rendering service — it re-reads and
// re-lays-out the document on every request, by design, so edits to the
// file on disk show up on the next reload.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live-reloading SVG preview of a diagram document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
			logger := loggerFromContext(ctx)

			path := args[0]
			r := chi.NewRouter()
			r.Use(middleware.Logger)
			r.Use(middleware.Recoverer)

			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				cfg, err := loadConfig(configPath)
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				doc, err := loadDocument(path)
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				doc.applyConfig(cfg)

				out, err := doc.buildSVG(svg.DefaultOptions(), parity.Lookup)
				if err != nil {
					http.Error(w, err.Error(), http.StatusUnprocessableEntity)
					return
				}

				w.Header().Set("Content-Type", "image/svg+xml")
				w.Write([]byte(out))
			})

			logger.Infof("serving %s at http://%s", path, addr)
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file merged over defaults")

	return cmd
}
