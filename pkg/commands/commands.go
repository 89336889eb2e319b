package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	co = &options.ConfigOptions{}
	rt = &env{co: co}
)

// Default log levels: quiet for one-shot verbs, chattier for long runs.
const (
	levelCLI     = "warn"
	levelService = "info"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyhub",
		Short: options.Wrap80("Tasks, event registrations and notes for student life, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArgs(cmd, oo)
	options.AddConfigArgs(cmd, co)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTask(topLevel)
	addEvent(topLevel)
	addNote(topLevel)
	addDashboard(topLevel)
	addAgenda(topLevel)
	addCalendar(topLevel)
	addWatch(topLevel)
	addNotify(topLevel)
	addTheme(topLevel)
	addServe(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// Execute runs the command tree and releases the store afterwards.
func Execute(ctx context.Context) error {
	defer func() { _ = rt.Close() }()
	return New().ExecuteContext(ctx)
}
