// Package derive computes the views a dashboard renders from the raw
// collections: filtered task and event lists, ordering, progress, the urgent
// badge count and notes grouped by recency.
//
// Every function is pure. Inputs are never mutated; results are fresh slices.
package derive

import (
	"sort"
	"time"

	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/entity"
)

// Engine derives views relative to the day its classifier reports.
type Engine struct {
	Dates dates.Classifier
}

// New returns an Engine over the given classifier.
func New(c dates.Classifier) Engine {
	return Engine{Dates: c}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// PendingTasks returns tasks that are not completed.
func (e Engine) PendingTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, entity.Task.Pending)
}

// TodayTasks returns pending tasks due today.
func (e Engine) TodayTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, func(t entity.Task) bool {
		return t.Pending() && e.Dates.IsToday(t.DueDate.Time)
	})
}

// UpcomingTasks returns pending tasks due after today.
func (e Engine) UpcomingTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, func(t entity.Task) bool {
		return t.Pending() && e.Dates.IsFutureDay(t.DueDate.Time)
	})
}

// OverdueTasks returns pending tasks due before today.
func (e Engine) OverdueTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, func(t entity.Task) bool {
		return t.Pending() && e.Dates.IsPastDay(t.DueDate.Time)
	})
}

// TomorrowTasks returns pending tasks due tomorrow.
func (e Engine) TomorrowTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, func(t entity.Task) bool {
		return t.Pending() && e.Dates.IsTomorrow(t.DueDate.Time)
	})
}

// CompletedTasks returns completed tasks regardless of date.
func (e Engine) CompletedTasks(tasks []entity.Task) []entity.Task {
	return filter(tasks, entity.Task.Completed)
}

// UpcomingEvents returns events whose registration is still open, including
// those closing today.
func (e Engine) UpcomingEvents(events []entity.Event) []entity.Event {
	return filter(events, func(ev entity.Event) bool {
		return !e.Dates.IsPastDay(ev.RegistrationDeadline.Time)
	})
}

// MissedEvents returns events whose registration deadline has passed.
func (e Engine) MissedEvents(events []entity.Event) []entity.Event {
	return filter(events, func(ev entity.Event) bool {
		return e.Dates.IsPastDay(ev.RegistrationDeadline.Time)
	})
}

// ClosingEvents returns events whose registration closes today or tomorrow.
func (e Engine) ClosingEvents(events []entity.Event) []entity.Event {
	return filter(events, func(ev entity.Event) bool {
		d := ev.RegistrationDeadline.Time
		return e.Dates.IsToday(d) || e.Dates.IsTomorrow(d)
	})
}

// Progress is the rounded percentage of completed tasks, 0 when empty.
func Progress(tasks []entity.Task) int {
	total := len(tasks)
	if total == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed() {
			done++
		}
	}
	// round half up: floor(100*done/total + 1/2)
	return (200*done + total) / (2 * total)
}

// UrgentCount is the badge number: overdue tasks, high priority tasks due
// today, and events closing today or tomorrow.
func (e Engine) UrgentCount(tasks []entity.Task, events []entity.Event) int {
	high := 0
	for _, t := range e.TodayTasks(tasks) {
		if t.Priority == entity.PriorityHigh {
			high++
		}
	}
	return len(e.OverdueTasks(tasks)) + high + len(e.ClosingEvents(events))
}

// SortTasks orders pending before completed, then by priority, then by due
// date. Ties keep their input order.
func SortTasks(tasks []entity.Task) []entity.Task {
	out := append([]entity.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed() != b.Completed() {
			return !a.Completed()
		}
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		return a.DueDate.Before(b.DueDate.Time)
	})
	return out
}

// SortEvents orders events by registration deadline.
func SortEvents(events []entity.Event) []entity.Event {
	out := append([]entity.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RegistrationDeadline.Before(out[j].RegistrationDeadline.Time)
	})
	return out
}

// Greeting returns the salutation for the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
