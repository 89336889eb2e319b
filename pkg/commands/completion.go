package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/prompt"
	"tableflip.dev/studyhub/pkg/runner/remove"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(studyhub completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(studyhub completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerEnumCompletion(cmd *cobra.Command, flag string, values []string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	})
}

func categoryNames() []string {
	var out []string
	for _, c := range entity.Categories() {
		out = append(out, string(c))
	}
	return out
}

func priorityNames() []string {
	var out []string
	for _, p := range entity.Priorities() {
		out = append(out, string(p))
	}
	return out
}

// idCompletions lists the ids of one kind of entry, quietly giving up when
// the store cannot be opened.
func idCompletions(kind remove.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		svc, err := rt.open(context.Background(), "error")
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var ids []string
		switch kind {
		case remove.KindTask:
			for _, t := range svc.Store.Tasks() {
				ids = append(ids, t.ID+"\t"+t.Title)
			}
		case remove.KindEvent:
			for _, e := range svc.Store.Events() {
				ids = append(ids, e.ID+"\t"+e.EventName)
			}
		case remove.KindNote:
			for _, n := range svc.Store.Notes() {
				ids = append(ids, n.ID+"\t"+n.Date.String())
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

// asker prompts on the command's own input and output.
func asker(cmd *cobra.Command) *prompt.Console {
	return &prompt.Console{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}
