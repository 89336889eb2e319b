package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/notify"
	"tableflip.dev/studyhub/pkg/runner/settings"
)

func addNotify(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "notify",
		Aliases: []string{"notifications"},
		Short:   "Show or change consent for deadline alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, a := range []struct {
		action settings.Action
		short  string
	}{
		{settings.ActionStatus, "Show whether alerts are allowed"},
		{settings.ActionEnable, "Allow alerts, asking first"},
		{settings.ActionDisable, "Stop alerts"},
	} {
		addNotifyAction(cmd, a.action, a.short)
	}

	topLevel.AddCommand(cmd)
}

func addNotifyAction(topLevel *cobra.Command, action settings.Action, short string) {
	cmd := &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := settings.Notifications{
				Permissions: &notify.Stored{
					Store:    svc.Store,
					Prompter: &notify.ConsolePrompt{In: os.Stdin, Out: color.Output},
				},
				Action: action,
				Output: oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
