package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/prompt"
	"tableflip.dev/studyhub/pkg/runner/add"
	"tableflip.dev/studyhub/pkg/runner/edit"
	"tableflip.dev/studyhub/pkg/runner/get"
	"tableflip.dev/studyhub/pkg/runner/remove"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes", "n"},
		Short:   "Keep dated notes, grouped by how recent they are",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteEdit(cmd)
	addRemove(cmd, remove.KindNote)
	addNoteList(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteAdd(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a note",
		Example: `
studyhub note add office hours moved to thursday
studyhub note add "read chapter 4" --on yesterday
studyhub note add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			no.ContentFrom(args)
			if strings.TrimSpace(no.Content) == "" && !ia.Interactive {
				return errors.New("requires note content")
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
			on, err := no.On.Date(now)
			if err != nil {
				return oo.HandleError(err)
			}
			in := app.NoteInput{Content: no.Content, Date: on}
			if ia.Interactive {
				if in, err = prompt.Note(asker(cmd), in, now); err != nil {
					return oo.HandleError(err)
				}
			}
			s := add.Note{
				Service: svc,
				Input:   in,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddNoteArgs(cmd, no)
	options.InteractiveArgs(cmd, ia)
	topLevel.AddCommand(cmd)
}

func addNoteEdit(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [content]",
		Short: "Rewrite a note or move it to another day",
		Example: `
studyhub note edit 0190c2b4-... office hours moved to friday
studyhub note edit 0190c2b4-... --on 3/12
studyhub note edit 0190c2b4-... -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note id, see --show-id on the list commands")
			}
			return nil
		},
		ValidArgsFunction: idCompletions(remove.KindNote),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			on, err := no.On.Pointer(cmd.Flags(), svc.Clock.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Note{
				Service: svc,
				ID:      args[0],
				Date:    on,
				Output:  oo.Printers(),
			}
			if len(args) > 1 {
				no.ContentFrom(args[1:])
				s.Content = &no.Content
			}
			if ia.Interactive {
				if err := promptNoteEdit(cmd, &s); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddNoteArgs(cmd, no)
	options.InteractiveArgs(cmd, ia)
	topLevel.AddCommand(cmd)
}

func promptNoteEdit(cmd *cobra.Command, s *edit.Note) error {
	current, err := s.Service.Note(cmd.Context(), s.ID)
	if err != nil {
		return err
	}
	in := app.NoteInput{
		Content: deref(s.Content, current.Content),
		Date:    deref(s.Date, current.Date),
	}
	if in, err = prompt.Note(asker(cmd), in, s.Service.Clock.Now()); err != nil {
		return err
	}
	s.Content, s.Date = &in.Content, &in.Date
	return nil
}

func addNoteList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list", "get"},
		Short:   "List notes grouped into Today, Yesterday, This Week and Older",
		Example: `
studyhub note ls
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Notes{
				Service: svc,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
