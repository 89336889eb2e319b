package commands

import (
	"fmt"
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

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events", "e"},
		Short:   "Track event registrations and their deadlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventEdit(cmd)
	addRemove(cmd, remove.KindEvent)
	addEventList(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an event registration",
		Example: `
studyhub event add Hackathon --deadline 3/20 --on 4/2 --notes "team of 3"
studyhub event add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			eo.NameFrom(args)
			if strings.TrimSpace(eo.Name) == "" && !ia.Interactive {
				return fmt.Errorf("requires an event name")
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
			deadline, err := eo.Deadline.Date(now)
			if err != nil {
				return oo.HandleError(err)
			}
			on, err := eo.Participates.Date(now)
			if err != nil {
				return oo.HandleError(err)
			}
			in := app.EventInput{
				EventName:            eo.Name,
				RegistrationDeadline: deadline,
				ParticipationDate:    on,
				Notes:                eo.Notes,
			}
			if ia.Interactive {
				if in, err = prompt.Event(asker(cmd), in, now); err != nil {
					return oo.HandleError(err)
				}
			}
			s := add.Event{
				Service: svc,
				Input:   in,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddEventArgs(cmd, eo)
	options.InteractiveArgs(cmd, ia)
	topLevel.AddCommand(cmd)
}

func addEventEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}
	ia := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an event registration",
		Example: `
studyhub event edit 0190c2b4-... --deadline 3/22
studyhub event edit 0190c2b4-... -i
`,
		Args:              io.IDArg,
		ValidArgsFunction: idCompletions(remove.KindEvent),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			now := svc.Clock.Now()
			deadline, err := eo.Deadline.Pointer(cmd.Flags(), now)
			if err != nil {
				return oo.HandleError(err)
			}
			on, err := eo.Participates.Pointer(cmd.Flags(), now)
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Event{
				Service:              svc,
				ID:                   io.ID(),
				RegistrationDeadline: deadline,
				ParticipationDate:    on,
				Output:               oo.Printers(),
			}
			if cmd.Flags().Changed("name") {
				s.EventName = &eo.Name
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = &eo.Notes
			}
			if ia.Interactive {
				if err := promptEventEdit(cmd, &s); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddEventArgs(cmd, eo)
	options.InteractiveArgs(cmd, ia)
	topLevel.AddCommand(cmd)
}

func promptEventEdit(cmd *cobra.Command, s *edit.Event) error {
	current, err := s.Service.Event(cmd.Context(), s.ID)
	if err != nil {
		return err
	}
	in := app.EventInput{
		EventName:            deref(s.EventName, current.EventName),
		RegistrationDeadline: deref(s.RegistrationDeadline, current.RegistrationDeadline),
		ParticipationDate:    deref(s.ParticipationDate, current.ParticipationDate),
		Notes:                deref(s.Notes, current.Notes),
	}
	if in, err = prompt.Event(asker(cmd), in, s.Service.Clock.Now()); err != nil {
		return err
	}
	s.EventName, s.Notes = &in.EventName, &in.Notes
	s.RegistrationDeadline, s.ParticipationDate = &in.RegistrationDeadline, &in.ParticipationDate
	return nil
}

func addEventList(topLevel *cobra.Command) {
	fo := &options.EventFilterOptions{}

	cmd := &cobra.Command{
		Use:       "ls [" + strings.Join(options.EventFilterNames(), "|") + "]",
		Aliases:   []string{"list", "get"},
		Short:     "List event registrations",
		ValidArgs: options.EventFilterNames(),
		Example: `
studyhub event ls
studyhub event ls upcoming
`,
		Args: fo.EventFilterArg,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, err := rt.open(ctx, levelCLI)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Events{
				Service: svc,
				Filter:  fo.Filter,
				Output:  oo.Printers(),
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
