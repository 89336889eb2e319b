package derive

import (
	"fmt"
	"strings"

	"tableflip.dev/studyhub/pkg/entity"
)

// TaskFilter names a task list view.
type TaskFilter string

const (
	TasksAll       TaskFilter = "all"
	TasksToday     TaskFilter = "today"
	TasksUpcoming  TaskFilter = "upcoming"
	TasksOverdue   TaskFilter = "overdue"
	TasksCompleted TaskFilter = "completed"
)

// TaskFilters returns every task filter in tab order.
func TaskFilters() []TaskFilter {
	return []TaskFilter{TasksAll, TasksToday, TasksUpcoming, TasksOverdue, TasksCompleted}
}

// ParseTaskFilter converts raw input to a TaskFilter. Empty input yields all.
func ParseTaskFilter(raw string) (TaskFilter, error) {
	f := TaskFilter(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return TasksAll, nil
	}
	for _, candidate := range TaskFilters() {
		if f == candidate {
			return f, nil
		}
	}
	return TasksAll, fmt.Errorf("derive: unknown task filter %q", raw)
}

// EventFilter names an event list view.
type EventFilter string

const (
	EventsAll      EventFilter = "all"
	EventsUpcoming EventFilter = "upcoming"
	EventsMissed   EventFilter = "missed"
)

// EventFilters returns every event filter in tab order.
func EventFilters() []EventFilter {
	return []EventFilter{EventsAll, EventsUpcoming, EventsMissed}
}

// ParseEventFilter converts raw input to an EventFilter. Empty input yields all.
func ParseEventFilter(raw string) (EventFilter, error) {
	f := EventFilter(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return EventsAll, nil
	}
	for _, candidate := range EventFilters() {
		if f == candidate {
			return f, nil
		}
	}
	return EventsAll, fmt.Errorf("derive: unknown event filter %q", raw)
}

// FilterTasks returns the sorted task list for the filter.
func (e Engine) FilterTasks(f TaskFilter, tasks []entity.Task) []entity.Task {
	switch f {
	case TasksToday:
		tasks = e.TodayTasks(tasks)
	case TasksUpcoming:
		tasks = e.UpcomingTasks(tasks)
	case TasksOverdue:
		tasks = e.OverdueTasks(tasks)
	case TasksCompleted:
		tasks = e.CompletedTasks(tasks)
	}
	return SortTasks(tasks)
}

// FilterEvents returns the deadline-ordered event list for the filter.
func (e Engine) FilterEvents(f EventFilter, events []entity.Event) []entity.Event {
	switch f {
	case EventsUpcoming:
		events = e.UpcomingEvents(events)
	case EventsMissed:
		events = e.MissedEvents(events)
	}
	return SortEvents(events)
}

// TaskCounts returns the size of every task filter.
func (e Engine) TaskCounts(tasks []entity.Task) map[TaskFilter]int {
	return map[TaskFilter]int{
		TasksAll:       len(tasks),
		TasksToday:     len(e.TodayTasks(tasks)),
		TasksUpcoming:  len(e.UpcomingTasks(tasks)),
		TasksOverdue:   len(e.OverdueTasks(tasks)),
		TasksCompleted: len(e.CompletedTasks(tasks)),
	}
}

// EventCounts returns the size of every event filter.
func (e Engine) EventCounts(events []entity.Event) map[EventFilter]int {
	return map[EventFilter]int{
		EventsAll:      len(events),
		EventsUpcoming: len(e.UpcomingEvents(events)),
		EventsMissed:   len(e.MissedEvents(events)),
	}
}
