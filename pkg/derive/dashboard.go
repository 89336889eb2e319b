package derive

import (
	"tableflip.dev/studyhub/pkg/entity"
)

// dashboardPreview caps the short lists shown on the dashboard.
const dashboardPreview = 3

// Stats are the dashboard counters.
type Stats struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	Progress  int `json:"progress"`
	Urgent    int `json:"urgent"`
}

// Dashboard is the landing view: counters plus short previews.
type Dashboard struct {
	Greeting       string         `json:"greeting"`
	Date           entity.Date    `json:"date"`
	Stats          Stats          `json:"stats"`
	TodayTasks     []entity.Task  `json:"todayTasks"`
	OverdueTasks   []entity.Task  `json:"overdueTasks"`
	UpcomingEvents []entity.Event `json:"upcomingEvents"`
	TodayNotes     []entity.Note  `json:"todayNotes"`
}

// Dashboard derives the landing view from the full collections.
func (e Engine) Dashboard(tasks []entity.Task, events []entity.Event, notes []entity.Note) Dashboard {
	now := e.Dates.Now()
	overdue := SortTasks(e.OverdueTasks(tasks))
	return Dashboard{
		Greeting: Greeting(now),
		Date:     entity.DateOf(now),
		Stats: Stats{
			Pending:   len(e.PendingTasks(tasks)),
			Completed: len(e.CompletedTasks(tasks)),
			Overdue:   len(overdue),
			Progress:  Progress(tasks),
			Urgent:    e.UrgentCount(tasks, events),
		},
		TodayTasks:     SortTasks(e.TodayTasks(tasks)),
		OverdueTasks:   head(overdue, dashboardPreview),
		UpcomingEvents: head(e.FilterEvents(EventsUpcoming, events), dashboardPreview),
		TodayNotes:     e.TodayNotes(notes),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
