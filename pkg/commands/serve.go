package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	var (
		addr  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Example: `
studyhub serve
studyhub serve --addr 127.0.0.1:9000 --backend redis
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			cfg, err := rt.config()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := rt.open(ctx, levelService)
			if err != nil {
				return oo.HandleError(err)
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			s := serve.Serve{
				Service: svc,
				Addr:    addr,
				Logger:  svc.Logger,
				Debug:   debug,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, default from the config.")
	cmd.Flags().BoolVar(&debug, "debug", false, "Run the router in debug mode.")

	topLevel.AddCommand(cmd)
}
