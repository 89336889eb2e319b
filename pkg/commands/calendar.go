package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/runner/get"
)

const monthLayout = "2006-01"

func addCalendar(topLevel *cobra.Command) {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "A month calendar with a count of what is due each day",
		Example: `
studyhub calendar
studyhub calendar --month 2024-03
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			var on time.Time
			if month != "" {
				t, err := time.ParseInLocation(monthLayout, month, time.Local)
				if err != nil {
					return oo.HandleError(fmt.Errorf("--month: want YYYY-MM, got %q", month))
				}
				on = t
			}
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Calendar{
				Service: svc,
				Month:   on,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show, example: --month=2024-03. Default this month.")

	topLevel.AddCommand(cmd)
}
