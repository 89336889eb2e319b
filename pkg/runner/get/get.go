// Package get lists tasks, events and notes.
package get

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/printers"
)

type Tasks struct {
	Service *app.Service
	Filter  derive.TaskFilter
	// Within drops tasks due later than now plus Within. Zero keeps all.
	Within time.Duration
	Output printers.Options
}

func (n *Tasks) Do(ctx context.Context) error {
	list, err := n.Service.FilterTasks(ctx, n.Filter)
	if err != nil {
		return err
	}
	if n.Within > 0 {
		until := entity.DateOf(n.Service.Engine().Dates.Now().Add(n.Within))
		kept := list.Tasks[:0]
		for _, t := range list.Tasks {
			if !t.DueDate.After(until.Time) {
				kept = append(kept, t)
			}
		}
		list.Tasks = kept
	}
	if n.Output.JSON {
		return n.Output.Encode(list)
	}

	pp := n.Output.Printer(n.Service.Clock)
	pp.TitleWithCount(strings.Title(string(n.Filter))+" tasks", len(list.Tasks), "task")
	pp.Tasks(list.Tasks...)

	parts := make([]string, 0, len(derive.TaskFilters()))
	for _, f := range derive.TaskFilters() {
		parts = append(parts, fmt.Sprintf("%s %d", f, list.Counts[f]))
	}
	_, _ = color.New(color.Faint).Fprintln(n.Output.Writer(), strings.Join(parts, " · "))
	return nil
}

type Events struct {
	Service *app.Service
	Filter  derive.EventFilter
	Output  printers.Options
}

func (n *Events) Do(ctx context.Context) error {
	list, err := n.Service.FilterEvents(ctx, n.Filter)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(list)
	}

	pp := n.Output.Printer(n.Service.Clock)
	pp.TitleWithCount(strings.Title(string(n.Filter))+" events", len(list.Events), "event")
	pp.Events(list.Events...)

	parts := make([]string, 0, len(derive.EventFilters()))
	for _, f := range derive.EventFilters() {
		parts = append(parts, fmt.Sprintf("%s %d", f, list.Counts[f]))
	}
	_, _ = color.New(color.Faint).Fprintln(n.Output.Writer(), strings.Join(parts, " · "))
	return nil
}

type Notes struct {
	Service *app.Service
	Output  printers.Options
}

func (n *Notes) Do(ctx context.Context) error {
	groups, err := n.Service.NoteGroups(ctx)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(groups)
	}
	pp := n.Output.Printer(n.Service.Clock)
	pp.Title("Notes")
	pp.NoteGroups(groups...)
	return nil
}

type Agenda struct {
	Service *app.Service
	Window  time.Duration
	Output  printers.Options
}

func (n *Agenda) Do(ctx context.Context) error {
	a, err := n.Service.Agenda(ctx, n.Window)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(a)
	}
	n.Output.Printer(n.Service.Clock).Agenda(a.From, a.Until, a.Tasks, a.Events)
	return nil
}

type Calendar struct {
	Service *app.Service
	// Month is any day in the month to show; zero means the current month.
	Month  time.Time
	Output printers.Options
}

func (n *Calendar) Do(ctx context.Context) error {
	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	events, err := n.Service.Events(ctx)
	if err != nil {
		return err
	}
	month := n.Month
	if month.IsZero() {
		month = n.Service.Engine().Dates.Now()
	}
	if n.Output.JSON {
		return n.Output.Encode(map[string]interface{}{
			"month":  month.Format("2006-01"),
			"tasks":  derive.SortTasks(inMonth(tasks, month, func(t entity.Task) entity.Date { return t.DueDate })),
			"events": derive.SortEvents(inMonth(events, month, func(e entity.Event) entity.Date { return e.RegistrationDeadline })),
		})
	}
	n.Output.Printer(n.Service.Clock).Calendar(month, tasks, events)
	return nil
}

func inMonth[T any](items []T, month time.Time, date func(T) entity.Date) []T {
	var out []T
	for _, it := range items {
		d := date(it)
		if d.Year() == month.Year() && d.Month() == month.Month() {
			out = append(out, it)
		}
	}
	return out
}
