package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/runner/settings"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or set the color theme",
		ValidArgs: []string{"light", "dark", "toggle"},
		Example: `
studyhub theme
studyhub theme dark
studyhub theme toggle
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := settings.Theme{
				Service: svc,
				Output:  oo.Printers(),
			}
			if len(args) == 1 {
				s.Set = args[0]
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
