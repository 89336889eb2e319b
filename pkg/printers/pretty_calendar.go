package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Dashboard prints the landing view: greeting, counters, previews and the
// month of the current date with deadline days in bold.
func (pp *PrettyPrint) Dashboard(d derive.Dashboard, tasks []entity.Task, events []entity.Event) {
	g := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = g.Fprintf(pp.out(), "%s!", d.Greeting)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", d.Date.Format("Monday, January 2 2006"))

	tbl := pp.table()
	tbl.AddRow("pending", d.Stats.Pending, "completed", d.Stats.Completed)
	tbl.AddRow("overdue", d.Stats.Overdue, "urgent", d.Stats.Urgent)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.Progress(d.Stats.Progress)
	pp.NewLine()

	pp.TitleWithCount("Due today", len(d.TodayTasks), "task")
	pp.Tasks(d.TodayTasks...)
	if len(d.OverdueTasks) > 0 {
		pp.TitleWithCount("Overdue", d.Stats.Overdue, "task")
		pp.Tasks(d.OverdueTasks...)
	}
	pp.Title("Registrations closing")
	pp.Events(d.UpcomingEvents...)
	if len(d.TodayNotes) > 0 {
		pp.Title("Today's notes")
		pp.NoteGroups(derive.NoteGroup{Label: derive.GroupToday, Notes: d.TodayNotes})
	}

	pp.Calendar(d.Date.Time, tasks, events)
}

// Progress prints a completion bar for a 0..100 percentage.
func (pp *PrettyPrint) Progress(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	done := color.New(color.FgHiGreen)
	rest := color.New(color.Faint)
	_, _ = done.Fprint(pp.out(), strings.Repeat("█", filled))
	_, _ = rest.Fprint(pp.out(), strings.Repeat("░", width-filled))
	_, _ = fmt.Fprintf(pp.out(), " %d%%\n", percent)
}

// Agenda prints what comes due between from and until, grouped by day.
func (pp *PrettyPrint) Agenda(from, until entity.Date, tasks []entity.Task, events []entity.Event) {
	pp.Title(fmt.Sprintf("Agenda %s → %s", from, until))
	if len(tasks) == 0 && len(events) == 0 {
		pp.none()
		return
	}
	h := color.New(color.Bold)
	for day := from; !day.After(until.Time); day = day.AddDays(1) {
		var dt []entity.Task
		for _, t := range tasks {
			if t.DueDate.Equal(day) {
				dt = append(dt, t)
			}
		}
		var de []entity.Event
		for _, ev := range events {
			if ev.RegistrationDeadline.Equal(day) {
				de = append(de, ev)
			}
		}
		if len(dt) == 0 && len(de) == 0 {
			continue
		}
		_, _ = h.Fprintln(pp.out(), day.Format("Mon Jan 2"))
		if len(dt) > 0 {
			pp.Tasks(dt...)
		}
		if len(de) > 0 {
			pp.Events(de...)
		}
	}
}

// Calendar prints the month containing on. Days with a pending task due or a
// registration closing are bold, today is underlined.
func (pp *PrettyPrint) Calendar(on time.Time, tasks []entity.Task, events []entity.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	count := make([]int, DaysIn(then))
	mark := func(d entity.Date) {
		if d.Year() == then.Year() && d.Month() == then.Month() {
			count[d.Day()-1]++
		}
	}
	for _, t := range tasks {
		if t.Pending() {
			mark(t.DueDate)
		}
	}
	for _, ev := range events {
		mark(ev.RegistrationDeadline)
	}
	today := 0
	if now := pp.Dates.Now(); now.Year() == then.Year() && now.Month() == then.Month() {
		today = now.Day()
	}
	pp.PrintMonthCount(then, count, today)
}

// PrintMonthCount prints a month grid. Days with a non-zero count are bold;
// today, when non-zero, is underlined.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int, today int) {
	d := StartDay(then)
	w := pp.out()

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < DaysIn(then); i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if i+1 == today {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(w, "%2d", i+1)
		_, _ = fmt.Fprint(w, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
