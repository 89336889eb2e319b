package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/runner/get"
)

func addAgenda(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Pending tasks and event dates coming up, day by day",
		Example: `
studyhub agenda
studyhub agenda --within 3d
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			window, err := wo.Duration()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Agenda{
				Service: svc,
				Window:  window,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}
