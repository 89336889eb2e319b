// Package app is the entity mutator: create, update, toggle and delete for
// tasks, events and notes, plus the read views built on them. The CLI, the
// live dashboard and the HTTP API all go through Service.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/store"
)

// Service provides high-level operations over the entity store.
type Service struct {
	Store  *store.Store
	Clock  clock.Clock
	Logger *log.Logger
}

// New returns a Service. A nil clock uses the wall clock and a nil logger
// discards.
func New(st *store.Store, c clock.Clock, logger *log.Logger) *Service {
	if c == nil {
		c = clock.Real()
	}
	return &Service{Store: st, Clock: c, Logger: logging.OrDiscard(logger)}
}

func (s *Service) clk() clock.Clock {
	if s.Clock == nil {
		return clock.Real()
	}
	return s.Clock
}

func (s *Service) log() *log.Logger {
	return logging.OrDiscard(s.Logger)
}

// Engine returns the derivation engine for the service clock.
func (s *Service) Engine() derive.Engine {
	return derive.New(dates.New(s.clk()))
}

func (s *Service) ready() error {
	if s.Store == nil {
		return ErrNoStore
	}
	return nil
}

// today is the default for unset date fields.
func (s *Service) today() entity.Date {
	return entity.DateOf(s.clk().Now())
}

// TaskInput carries the editable task fields.
type TaskInput struct {
	Title    string          `json:"title"`
	Category entity.Category `json:"category"`
	Priority entity.Priority `json:"priority"`
	DueDate  entity.Date     `json:"dueDate"`
}

func (s *Service) normalizeTask(in TaskInput) (TaskInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, required("title")
	}
	var err error
	if in.Category, err = entity.ParseCategory(string(in.Category)); err != nil {
		return in, &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not one of study, event, personal", in.Category)}
	}
	if in.Priority, err = entity.ParsePriority(string(in.Priority)); err != nil {
		return in, &ValidationError{Field: "priority", Reason: fmt.Sprintf("%q is not one of high, medium, low", in.Priority)}
	}
	if in.DueDate.IsZero() {
		in.DueDate = s.today()
	}
	return in, nil
}

// Tasks returns every task in storage order.
func (s *Service) Tasks(_ context.Context) ([]entity.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Store.Tasks(), nil
}

// Task returns the task with id.
func (s *Service) Task(_ context.Context, id string) (entity.Task, error) {
	if err := s.ready(); err != nil {
		return entity.Task{}, err
	}
	tasks := s.Store.Tasks()
	i := entity.IndexOf(tasks, id)
	if i < 0 {
		return entity.Task{}, &NotFoundError{Kind: "task", ID: id}
	}
	return tasks[i], nil
}

// CreateTask validates in and appends a new pending task.
func (s *Service) CreateTask(ctx context.Context, in TaskInput) (entity.Task, error) {
	if err := s.ready(); err != nil {
		return entity.Task{}, err
	}
	in, err := s.normalizeTask(in)
	if err != nil {
		return entity.Task{}, err
	}
	t := entity.Task{
		ID:        entity.NewID(),
		Title:     in.Title,
		Category:  in.Category,
		Priority:  in.Priority,
		DueDate:   in.DueDate,
		Status:    entity.StatusPending,
		CreatedAt: entity.Stamp(s.clk().Now()),
	}
	err = s.Store.UpdateTasks(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		return append(tasks, t), nil
	})
	if err != nil {
		return entity.Task{}, err
	}
	s.log().Info("task created", "id", t.ID, "title", t.Title)
	return t, nil
}

// UpdateTask replaces the editable fields of task id. The id, creation time
// and completion status are kept.
func (s *Service) UpdateTask(ctx context.Context, id string, in TaskInput) (entity.Task, error) {
	if err := s.ready(); err != nil {
		return entity.Task{}, err
	}
	in, err := s.normalizeTask(in)
	if err != nil {
		return entity.Task{}, err
	}
	var updated entity.Task
	err = s.Store.UpdateTasks(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		i := entity.IndexOf(tasks, id)
		if i < 0 {
			return nil, &NotFoundError{Kind: "task", ID: id}
		}
		prev := tasks[i]
		updated = entity.Task{
			ID:        prev.ID,
			Title:     in.Title,
			Category:  in.Category,
			Priority:  in.Priority,
			DueDate:   in.DueDate,
			Status:    prev.Status,
			CreatedAt: prev.CreatedAt,
		}
		tasks[i] = updated
		return tasks, nil
	})
	if err != nil {
		return entity.Task{}, err
	}
	s.log().Info("task updated", "id", id)
	return updated, nil
}

// ToggleTask flips task id between pending and completed.
func (s *Service) ToggleTask(ctx context.Context, id string) (entity.Task, error) {
	if err := s.ready(); err != nil {
		return entity.Task{}, err
	}
	var updated entity.Task
	err := s.Store.UpdateTasks(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		i := entity.IndexOf(tasks, id)
		if i < 0 {
			return nil, &NotFoundError{Kind: "task", ID: id}
		}
		tasks[i].Status = tasks[i].Status.Toggle()
		updated = tasks[i]
		return tasks, nil
	})
	if err != nil {
		return entity.Task{}, err
	}
	s.log().Info("task toggled", "id", id, "status", updated.Status)
	return updated, nil
}

// DeleteTask removes task id. A missing id is not an error.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if entity.IndexOf(s.Store.Tasks(), id) < 0 {
		return nil
	}
	err := s.Store.UpdateTasks(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		return without(tasks, id), nil
	})
	if err != nil {
		return err
	}
	s.log().Info("task deleted", "id", id)
	return nil
}

func without[T entity.Identified](items []T, id string) []T {
	out := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}
