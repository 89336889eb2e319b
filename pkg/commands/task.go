package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/prompt"
	"tableflip.dev/studyhub/pkg/runner/add"
	"tableflip.dev/studyhub/pkg/runner/complete"
	"tableflip.dev/studyhub/pkg/runner/edit"
	"tableflip.dev/studyhub/pkg/runner/get"
	"tableflip.dev/studyhub/pkg/runner/remove"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Add, edit, complete, remove and list tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskEdit(cmd)
	addTaskDone(cmd)
	addRemove(cmd, remove.KindTask)
	addTaskList(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Example: `
studyhub task add finish the lab report --due tomorrow --priority high
studyhub task add --title "Gym" --category personal --due 3/18
studyhub task add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			to.TitleFrom(args)
			if strings.TrimSpace(to.Title) == "" && !ia.Interactive {
				return fmt.Errorf("requires a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			now := svc.Clock.Now()
			due, err := to.Due.Date(now)
			if err != nil {
				return oo.HandleError(err)
			}
			in := app.TaskInput{
				Title:    to.Title,
				Category: entity.Category(to.Category),
				Priority: entity.Priority(to.Priority),
				DueDate:  due,
			}
			if ia.Interactive {
				if in, err = prompt.Task(asker(cmd), in, now); err != nil {
					return oo.HandleError(err)
				}
			}
			s := add.Task{
				Service: svc,
				Input:   in,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, ia)
	registerEnumCompletion(cmd, "category", categoryNames())
	registerEnumCompletion(cmd, "priority", priorityNames())
	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Example: `
studyhub task edit 0190c2b4-... --due 2024-4-2
studyhub task edit 0190c2b4-... --title "Essay, final draft" --priority low
studyhub task edit 0190c2b4-... -i
`,
		Args:              io.IDArg,
		ValidArgsFunction: idCompletions(remove.KindTask),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			due, err := to.Due.Pointer(cmd.Flags(), svc.Clock.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Task{
				Service:  svc,
				ID:       io.ID(),
				Category: to.CategoryPointer(cmd.Flags()),
				Priority: to.PriorityPointer(cmd.Flags()),
				DueDate:  due,
				Output:   oo.Printers(),
			}
			if cmd.Flags().Changed("title") {
				s.Title = &to.Title
			}
			if ia.Interactive {
				if err := promptTaskEdit(cmd, &s); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, ia)
	registerEnumCompletion(cmd, "category", categoryNames())
	registerEnumCompletion(cmd, "priority", priorityNames())
	topLevel.AddCommand(cmd)
}

// promptTaskEdit asks for every field, starting from the stored task with
// any flags applied, and sets them all on s.
func promptTaskEdit(cmd *cobra.Command, s *edit.Task) error {
	current, err := s.Service.Task(cmd.Context(), s.ID)
	if err != nil {
		return err
	}
	in := app.TaskInput{
		Title:    deref(s.Title, current.Title),
		Category: deref(s.Category, current.Category),
		Priority: deref(s.Priority, current.Priority),
		DueDate:  deref(s.DueDate, current.DueDate),
	}
	if in, err = prompt.Task(asker(cmd), in, s.Service.Clock.Now()); err != nil {
		return err
	}
	s.Title, s.Category, s.Priority, s.DueDate = &in.Title, &in.Category, &in.Priority, &in.DueDate
	return nil
}

// deref returns *p, or def when p is nil.
func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func addTaskDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <id>...",
		Aliases: []string{"complete", "toggle"},
		Short:   "Toggle tasks between pending and completed",
		Example: `
studyhub task done 0190c2b4-...
`,
		Args:              io.IDArgs,
		ValidArgsFunction: idCompletions(remove.KindTask),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := complete.Complete{
				Service: svc,
				IDs:     io.IDs,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	fo := &options.TaskFilterOptions{}

	cmd := &cobra.Command{
		Use:       "ls [" + strings.Join(options.TaskFilterNames(), "|") + "]",
		Aliases:   []string{"list", "get"},
		Short:     "List tasks",
		ValidArgs: options.TaskFilterNames(),
		Example: `
studyhub task ls
studyhub task ls overdue
studyhub task ls upcoming --within 3d
`,
		Args: fo.TaskFilterArg,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			within, err := fo.Window()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Tasks{
				Service: svc,
				Filter:  fo.Filter,
				Within:  within,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddTaskFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, kind remove.Kind) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove", "delete"},
		Short:   fmt.Sprintf("Remove %ss by id", kind),
		Example: fmt.Sprintf(`
studyhub %s rm 0190c2b4-...
`, kind),
		Args:              io.IDArgs,
		ValidArgsFunction: idCompletions(kind),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := remove.Remove{
				Service: svc,
				Kind:    kind,
				IDs:     io.IDs,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
