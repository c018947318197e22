package commands

import (
	"github.com/numo-sh/numo/internal/api"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server exposing the evaluation pipeline.

POST a JSON body {"expressions": ["x = 5", "x * 2"]} to
/api/v1/calculate; the expressions share one variable environment and
the response carries one result per expression. Each request gets a
fresh environment.`,
		Example: `  # Listen on the default port
  numo serve

  # Listen on a custom port
  numo serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			port := cc.Cfg.Serve.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetInt("port")
			}

			srv := api.NewServer(api.Config{
				Engine: cc.Engine,
				Port:   port,
				Logger: cc.Logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")

	return cmd
}
