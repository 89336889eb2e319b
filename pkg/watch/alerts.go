package watch

import (
	"fmt"

	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
)

// Alert is one user-facing notification.
type Alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// Tag identifies the entity and condition, e.g. "task-<id>-today".
	Tag string `json:"tag"`
}

// Alerts derives the alerts for one tick, in order: high priority tasks due
// today, tasks due tomorrow, overdue tasks, then events whose registration
// closes today or tomorrow. Completed tasks never alert.
func Alerts(e derive.Engine, tasks []entity.Task, events []entity.Event) []Alert {
	var out []Alert
	for _, t := range e.TodayTasks(tasks) {
		if t.Priority != entity.PriorityHigh {
			continue
		}
		out = append(out, Alert{
			Title: "Task Due Today: " + t.Title,
			Body:  fmt.Sprintf("Don't forget to complete %q today!", t.Title),
			Tag:   tag("task", t.ID, "today"),
		})
	}
	for _, t := range e.TomorrowTasks(tasks) {
		out = append(out, Alert{
			Title: "Task Due Tomorrow: " + t.Title,
			Body:  fmt.Sprintf("%q is due tomorrow!", t.Title),
			Tag:   tag("task", t.ID, "tomorrow"),
		})
	}
	for _, t := range e.OverdueTasks(tasks) {
		out = append(out, Alert{
			Title: "Overdue Task: " + t.Title,
			Body:  fmt.Sprintf("%q is past its due date!", t.Title),
			Tag:   tag("task", t.ID, "overdue"),
		})
	}
	for _, ev := range events {
		if e.Dates.IsToday(ev.RegistrationDeadline.Time) {
			out = append(out, Alert{
				Title: "Registration Deadline Today: " + ev.EventName,
				Body:  fmt.Sprintf("Last day to register for %q!", ev.EventName),
				Tag:   tag("event", ev.ID, "today"),
			})
		}
	}
	for _, ev := range events {
		if e.Dates.IsTomorrow(ev.RegistrationDeadline.Time) {
			out = append(out, Alert{
				Title: "Registration Deadline Tomorrow: " + ev.EventName,
				Body:  fmt.Sprintf("Register for %q before tomorrow!", ev.EventName),
				Tag:   tag("event", ev.ID, "tomorrow"),
			})
		}
	}
	return out
}

func tag(kind, id, when string) string {
	return kind + "-" + id + "-" + when
}

// Title is the window title carrying the urgent badge.
func Title(urgent int) string {
	const name = "StudyHub - Student Life Manager"
	if urgent > 0 {
		return fmt.Sprintf("(%d) %s", urgent, name)
	}
	return name
}
