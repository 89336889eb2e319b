// Package store owns the journal collections and the key-value persistence
// boundary they are serialized to.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/logging"
)

// Flag is a persisted tri-state boolean.
type Flag int

const (
	// FlagUnset means nothing was ever stored.
	FlagUnset Flag = iota
	FlagTrue
	FlagFalse
)

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

// Snapshot is a point-in-time copy of every collection.
type Snapshot struct {
	Tasks  []entity.Task
	Events []entity.Event
	Notes  []entity.Note
}

// Store is the Entity Store: it owns the task, event and note collections,
// loads them once from a Persistence and writes the whole collection back on
// every change. It is safe for concurrent use.
type Store struct {
	p   Persistence
	log *log.Logger

	mu     sync.RWMutex
	tasks  []entity.Task
	events []entity.Event
	notes  []entity.Note
}

// Open loads every collection from p.
func Open(ctx context.Context, p Persistence, logger *log.Logger) (*Store, error) {
	if p == nil {
		return nil, errors.New("store: nil persistence")
	}
	s := &Store{p: p, log: logging.OrDiscard(logger)}
	s.Reload(ctx)
	return s, nil
}

// Persistence returns the backend the store writes to.
func (s *Store) Persistence() Persistence {
	return s.p
}

// Reload replaces the in-memory collections with what the backend holds.
// Unreadable collections load as empty.
func (s *Store) Reload(ctx context.Context) {
	tasks := load[entity.Task](ctx, s, KeyTasks)
	events := load[entity.Event](ctx, s, KeyEvents)
	notes := load[entity.Note](ctx, s, KeyNotes)

	s.mu.Lock()
	s.tasks, s.events, s.notes = tasks, events, notes
	s.mu.Unlock()
}

// Snapshot returns copies of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Tasks:  clone(s.tasks),
		Events: clone(s.events),
		Notes:  clone(s.notes),
	}
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks)
}

// Events returns a copy of the event collection.
func (s *Store) Events() []entity.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.events)
}

// Notes returns a copy of the note collection.
func (s *Store) Notes() []entity.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.notes)
}

// UpdateTasks passes a copy of the tasks to fn and persists what it returns.
// The in-memory collection changes only if fn succeeds and the write lands.
func (s *Store) UpdateTasks(ctx context.Context, fn func([]entity.Task) ([]entity.Task, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return update(ctx, s, KeyTasks, &s.tasks, fn)
}

// UpdateEvents is UpdateTasks for events.
func (s *Store) UpdateEvents(ctx context.Context, fn func([]entity.Event) ([]entity.Event, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return update(ctx, s, KeyEvents, &s.events, fn)
}

// UpdateNotes is UpdateTasks for notes.
func (s *Store) UpdateNotes(ctx context.Context, fn func([]entity.Note) ([]entity.Note, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return update(ctx, s, KeyNotes, &s.notes, fn)
}

// Watch streams backend changes when the backend supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.p.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

// Theme returns the stored theme name, or "" when none is stored or the
// backend cannot be read.
func (s *Store) Theme(ctx context.Context) string {
	v, err := s.p.Read(ctx, KeyTheme)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("theme unreadable", "err", err)
		}
		return ""
	}
	return strings.TrimSpace(string(v))
}

// SetTheme stores the theme name.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.p.Write(ctx, KeyTheme, []byte(theme))
}

// NotificationsFlag reads the notification flag through to the backend, so a
// change made by another process is seen.
func (s *Store) NotificationsFlag(ctx context.Context) Flag {
	v, err := s.p.Read(ctx, KeyNotifications)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("notification flag unreadable", "err", err)
		}
		return FlagUnset
	}
	switch strings.TrimSpace(string(v)) {
	case "true":
		return FlagTrue
	case "false":
		return FlagFalse
	default:
		return FlagUnset
	}
}

// SetNotificationsFlag stores the notification flag.
func (s *Store) SetNotificationsFlag(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.p.Write(ctx, KeyNotifications, []byte(v))
}

func load[T any](ctx context.Context, s *Store, key string) []T {
	data, err := s.p.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn("collection unreadable, starting empty", "key", key, "err", err)
		}
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("collection undecodable, starting empty", "key", key, "err", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// update must be called with s.mu held.
func update[T any](ctx context.Context, s *Store, key string, current *[]T, fn func([]T) ([]T, error)) error {
	next, err := fn(clone(*current))
	if err != nil {
		return err
	}
	if next == nil {
		next = []T{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.p.Write(ctx, key, data); err != nil {
		s.log.Error("write failed, change discarded", "key", key, "err", err)
		return err
	}
	*current = next
	s.log.Debug("collection written", "key", key, "count", len(next))
	return nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
