package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
)

// Dashboard derives the landing view from the current collections.
func (s *Service) Dashboard(_ context.Context) (derive.Dashboard, error) {
	if err := s.ready(); err != nil {
		return derive.Dashboard{}, err
	}
	snap := s.Store.Snapshot()
	return s.Engine().Dashboard(snap.Tasks, snap.Events, snap.Notes), nil
}

// TaskList is a filtered, sorted task view with the badge count of every
// filter.
type TaskList struct {
	Filter derive.TaskFilter         `json:"filter"`
	Tasks  []entity.Task             `json:"tasks"`
	Counts map[derive.TaskFilter]int `json:"counts"`
}

// FilterTasks returns the tasks matching f, sorted for display.
func (s *Service) FilterTasks(_ context.Context, f derive.TaskFilter) (TaskList, error) {
	if err := s.ready(); err != nil {
		return TaskList{}, err
	}
	tasks := s.Store.Tasks()
	e := s.Engine()
	return TaskList{
		Filter: f,
		Tasks:  e.FilterTasks(f, tasks),
		Counts: e.TaskCounts(tasks),
	}, nil
}

// EventList is a filtered, deadline-ordered event view.
type EventList struct {
	Filter derive.EventFilter         `json:"filter"`
	Events []entity.Event             `json:"events"`
	Counts map[derive.EventFilter]int `json:"counts"`
}

// FilterEvents returns the events matching f ordered by deadline.
func (s *Service) FilterEvents(_ context.Context, f derive.EventFilter) (EventList, error) {
	if err := s.ready(); err != nil {
		return EventList{}, err
	}
	events := s.Store.Events()
	e := s.Engine()
	return EventList{
		Filter: f,
		Events: e.FilterEvents(f, events),
		Counts: e.EventCounts(events),
	}, nil
}

// NoteGroups returns notes grouped by recency.
func (s *Service) NoteGroups(_ context.Context) ([]derive.NoteGroup, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Engine().GroupNotes(s.Store.Notes()), nil
}

// Agenda lists what falls due between today and a window ahead.
type Agenda struct {
	From   entity.Date    `json:"from"`
	Until  entity.Date    `json:"until"`
	Tasks  []entity.Task  `json:"tasks"`
	Events []entity.Event `json:"events"`
}

// Agenda returns pending tasks due and events closing from today through
// today plus window, both sorted for display. Overdue tasks are left out.
func (s *Service) Agenda(_ context.Context, window time.Duration) (Agenda, error) {
	if err := s.ready(); err != nil {
		return Agenda{}, err
	}
	if window < 0 {
		window = -window
	}
	from := s.today()
	until := entity.DateOf(s.clk().Now().Add(window))

	within := func(d entity.Date) bool {
		return !d.Before(from.Time) && !d.After(until.Time)
	}

	var tasks []entity.Task
	for _, t := range s.Store.Tasks() {
		if t.Pending() && within(t.DueDate) {
			tasks = append(tasks, t)
		}
	}
	var events []entity.Event
	for _, ev := range s.Store.Events() {
		if within(ev.RegistrationDeadline) {
			events = append(events, ev)
		}
	}
	return Agenda{
		From:   from,
		Until:  until,
		Tasks:  derive.SortTasks(tasks),
		Events: derive.SortEvents(events),
	}, nil
}

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the stored theme, or "" when unset.
func (s *Service) Theme(ctx context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.Store.Theme(ctx), nil
}

// SetTheme stores light or dark. "toggle" flips the stored theme, treating
// unset as light.
func (s *Service) SetTheme(ctx context.Context, theme string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	theme = strings.ToLower(strings.TrimSpace(theme))
	switch theme {
	case ThemeLight, ThemeDark:
	case "toggle":
		theme = ThemeDark
		if s.Store.Theme(ctx) == ThemeDark {
			theme = ThemeLight
		}
	default:
		return "", &ValidationError{Field: "theme", Reason: fmt.Sprintf("%q is not light, dark or toggle", theme)}
	}
	if err := s.Store.SetTheme(ctx, theme); err != nil {
		return "", err
	}
	return theme, nil
}
