package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the config, the backend and what it holds",
		Example: `
studyhub info
studyhub info --backend sqlite
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			cfg, err := rt.config()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: cfg,
				Store:  svc.Store,
				Output: oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
