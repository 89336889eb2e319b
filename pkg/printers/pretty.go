package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/glyph"
)

// noteWidth is where note bodies wrap.
const noteWidth = 72

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
	// Dates marks overdue and due-today rows. Zero uses the wall clock.
	Dates dates.Classifier
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	if count != 1 {
		noun += "s"
	}
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) id(id string) string {
	return color.New(color.FgHiYellow, color.Italic, color.Faint).Sprint(id)
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Tasks prints one row per task: status, priority, category, due date, title.
func (pp *PrettyPrint) Tasks(tasks ...entity.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, t := range tasks {
		pp.addTask(tbl, t)
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) addTask(tbl *uitable.Table, t entity.Task) {
	status := glyph.ForStatus(t.Status).String()
	due := t.DueDate.String()
	title := t.Title
	switch {
	case t.Completed():
		title = glyph.Strike(title)
		due = color.New(color.Faint).Sprint(due)
	case pp.Dates.IsPastDay(t.DueDate.Time):
		status = glyph.Overdue.String()
		due = color.New(color.FgHiRed).Sprint(due)
	case pp.Dates.IsToday(t.DueDate.Time):
		due = color.New(color.FgHiYellow, color.Bold).Sprint("today")
	case pp.Dates.IsTomorrow(t.DueDate.Time):
		due = color.New(color.FgHiCyan).Sprint("tomorrow")
	}
	row := []interface{}{status, glyph.ForPriority(t.Priority), glyph.ForCategory(t.Category), due, title}
	if pp.ShowID {
		row = append([]interface{}{pp.id(t.ID)}, row...)
	}
	tbl.AddRow(row...)
}

// Events prints one row per event with its registration deadline and
// participation date.
func (pp *PrettyPrint) Events(events ...entity.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, ev := range events {
		mark := glyph.Announcement.String()
		deadline := ev.RegistrationDeadline.String()
		switch {
		case pp.Dates.IsPastDay(ev.RegistrationDeadline.Time):
			mark = glyph.Missed.String()
			deadline = color.New(color.Faint).Sprint(deadline)
		case pp.Dates.IsToday(ev.RegistrationDeadline.Time):
			deadline = color.New(color.FgHiYellow, color.Bold).Sprint("today")
		case pp.Dates.IsTomorrow(ev.RegistrationDeadline.Time):
			deadline = color.New(color.FgHiCyan).Sprint("tomorrow")
		}
		row := []interface{}{mark, deadline, "→ " + ev.ParticipationDate.String(), ev.EventName}
		if pp.ShowID {
			row = append([]interface{}{pp.id(ev.ID)}, row...)
		}
		tbl.AddRow(row...)
		if ev.Notes != "" {
			pad := []interface{}{"", "", "", color.New(color.Faint).Sprint(ev.Notes)}
			if pp.ShowID {
				pad = append([]interface{}{""}, pad...)
			}
			tbl.AddRow(pad...)
		}
	}
	pp.flush(tbl)
}

// NoteGroups prints notes under their recency headings, wrapping long bodies.
func (pp *PrettyPrint) NoteGroups(groups ...derive.NoteGroup) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	h := color.New(color.Bold)
	d := color.New(color.Faint)
	for _, g := range groups {
		_, _ = h.Fprintln(pp.out(), g.Label)
		for _, n := range g.Notes {
			prefix := fmt.Sprintf("%s %s  ", glyph.Note, d.Sprint(n.Date.String()))
			if pp.ShowID {
				prefix = pp.id(n.ID) + "  " + prefix
			}
			indent := strings.Repeat(" ", ansi.PrintableRuneWidth(prefix))
			lines := strings.Split(wordwrap.String(n.Content, noteWidth), "\n")
			_, _ = fmt.Fprintln(pp.out(), prefix+lines[0])
			for _, line := range lines[1:] {
				_, _ = fmt.Fprintln(pp.out(), indent+line)
			}
		}
		pp.NewLine()
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
