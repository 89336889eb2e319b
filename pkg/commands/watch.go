package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	var (
		once     bool
		bell     bool
		dedupe   bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check deadlines on an interval and alert when something is due",
		Long: options.Wrap80(`Watch checks pending tasks and open registrations on every tick and alerts
for tasks due today, overdue tasks, and registration deadlines today or
tomorrow. The first run asks for consent; "studyhub notify disable" stops it.`),
		Example: `
studyhub watch
studyhub watch --interval 5m --bell
studyhub watch --once --json
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
			if !cmd.Flags().Changed("interval") {
				interval = cfg.Watch.Interval
			}
			if !cmd.Flags().Changed("dedupe") {
				dedupe = cfg.Watch.Dedupe
			}
			s := watch.Watch{
				Store:    svc.Store,
				Clock:    svc.Clock,
				Logger:   svc.Logger,
				Interval: interval,
				Dedupe:   dedupe,
				Once:     once,
				Bell:     bell,
				In:       os.Stdin,
				Output:   oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single check and exit.")
	cmd.Flags().BoolVar(&bell, "bell", false, "Ring the terminal bell with each alert.")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Alert once per item per day instead of every tick.")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Time between checks, default from the config (1m).")

	topLevel.AddCommand(cmd)
}
