package commands

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/khata-dev/khata/internal/api"
)

func newServeCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the khata HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			srv := api.NewServer(e.registry, e.engine, e.stock, e.trail, e.identity)
			if e.cfg.Metrics.Enabled {
				srv.EnableMetrics()
			}
			if e.cfg.Auth.Required {
				srv.RequireAuth()
			}

			addr := e.cfg.Listen.Addr()
			cmd.Printf("khata listening on %s\n", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}
