// Package add creates tasks, events and notes from the command line.
package add

import (
	"context"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/printers"
)

type Task struct {
	Service *app.Service
	Input   app.TaskInput
	Output  printers.Options
}

func (n *Task) Do(ctx context.Context) error {
	t, err := n.Service.CreateTask(ctx, n.Input)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(t)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Added task")
	pp.Tasks(t)
	return nil
}

type Event struct {
	Service *app.Service
	Input   app.EventInput
	Output  printers.Options
}

func (n *Event) Do(ctx context.Context) error {
	ev, err := n.Service.CreateEvent(ctx, n.Input)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(ev)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Added event")
	pp.Events(ev)
	return nil
}

type Note struct {
	Service *app.Service
	Input   app.NoteInput
	Output  printers.Options
}

func (n *Note) Do(ctx context.Context) error {
	note, err := n.Service.CreateNote(ctx, n.Input)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(note)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Added note")
	pp.NoteGroups(derive.NoteGroup{Label: note.Date.String(), Notes: []entity.Note{note}})
	return nil
}
