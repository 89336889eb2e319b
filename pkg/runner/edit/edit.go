// Package edit changes fields of an existing task, event or note. Nil
// fields keep their stored value.
package edit

import (
	"context"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/printers"
)

type Task struct {
	Service  *app.Service
	ID       string
	Title    *string
	Category *entity.Category
	Priority *entity.Priority
	DueDate  *entity.Date
	Output   printers.Options
}

func (n *Task) Do(ctx context.Context) error {
	current, err := n.Service.Task(ctx, n.ID)
	if err != nil {
		return err
	}
	in := app.TaskInput{
		Title:    current.Title,
		Category: current.Category,
		Priority: current.Priority,
		DueDate:  current.DueDate,
	}
	if n.Title != nil {
		in.Title = *n.Title
	}
	if n.Category != nil {
		in.Category = *n.Category
	}
	if n.Priority != nil {
		in.Priority = *n.Priority
	}
	if n.DueDate != nil {
		in.DueDate = *n.DueDate
	}

	t, err := n.Service.UpdateTask(ctx, n.ID, in)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(t)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Updated task")
	pp.Tasks(t)
	return nil
}

type Event struct {
	Service              *app.Service
	ID                   string
	EventName            *string
	RegistrationDeadline *entity.Date
	ParticipationDate    *entity.Date
	Notes                *string
	Output               printers.Options
}

func (n *Event) Do(ctx context.Context) error {
	current, err := n.Service.Event(ctx, n.ID)
	if err != nil {
		return err
	}
	in := app.EventInput{
		EventName:            current.EventName,
		RegistrationDeadline: current.RegistrationDeadline,
		ParticipationDate:    current.ParticipationDate,
		Notes:                current.Notes,
	}
	if n.EventName != nil {
		in.EventName = *n.EventName
	}
	if n.RegistrationDeadline != nil {
		in.RegistrationDeadline = *n.RegistrationDeadline
	}
	if n.ParticipationDate != nil {
		in.ParticipationDate = *n.ParticipationDate
	}
	if n.Notes != nil {
		in.Notes = *n.Notes
	}

	ev, err := n.Service.UpdateEvent(ctx, n.ID, in)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(ev)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Updated event")
	pp.Events(ev)
	return nil
}

type Note struct {
	Service *app.Service
	ID      string
	Content *string
	Date    *entity.Date
	Output  printers.Options
}

func (n *Note) Do(ctx context.Context) error {
	current, err := n.Service.Note(ctx, n.ID)
	if err != nil {
		return err
	}
	in := app.NoteInput{Content: current.Content, Date: current.Date}
	if n.Content != nil {
		in.Content = *n.Content
	}
	if n.Date != nil {
		in.Date = *n.Date
	}

	note, err := n.Service.UpdateNote(ctx, n.ID, in)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(note)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Updated note")
	pp.NoteGroups(derive.NoteGroup{Label: note.Date.String(), Notes: []entity.Note{note}})
	return nil
}
