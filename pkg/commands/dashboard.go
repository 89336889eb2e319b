package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/notify"
	"tableflip.dev/studyhub/pkg/runner/dashboard"
	"tableflip.dev/studyhub/pkg/watch"
)

func addDashboard(topLevel *cobra.Command) {
	var (
		live     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "home"},
		Short:   "Greeting, stats, today's work and the month at a glance",
		Example: `
studyhub dashboard
studyhub dashboard --live --interval 30s
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
			if !cmd.Flags().Changed("interval") {
				interval = cfg.Watch.Interval
			}

			s := dashboard.Dashboard{
				Service:  svc,
				Output:   oo.Printers(),
				Logger:   svc.Logger,
				Live:     live,
				Interval: interval,
				In:       os.Stdin,
			}
			if live {
				// Alerts only run when consent was given earlier; a full
				// screen view cannot prompt. The view shows them itself.
				w := &watch.Watch{
					Source:      svc.Store,
					Notifier:    &notify.Log{Logger: svc.Logger},
					Permissions: &notify.Stored{Store: svc.Store},
					Clock:       svc.Clock,
					Logger:      svc.Logger,
					Interval:    interval,
					Dedupe:      cfg.Watch.Dedupe,
				}
				w.Resume(ctx)
				s.Watch = w
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Keep the dashboard on screen and current.")
	cmd.Flags().DurationVar(&interval, "interval", 0, "How often to re-check deadlines when live, default from the config.")

	topLevel.AddCommand(cmd)
}
