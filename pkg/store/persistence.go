package store

import (
	"context"
	"errors"
)

// Fixed persistence keys. Each names one blob.
const (
	KeyTasks         = "studyhub-tasks"
	KeyEvents        = "studyhub-events"
	KeyNotes         = "studyhub-notes"
	KeyTheme         = "studyhub-theme"
	KeyNotifications = "studyhub-notifications"
)

// Keys returns every key studyhub persists.
func Keys() []string {
	return []string{KeyTasks, KeyEvents, KeyNotes, KeyTheme, KeyNotifications}
}

var (
	// ErrKeyNotFound is returned by Read when nothing is stored under a key.
	ErrKeyNotFound = errors.New("store: key not found")

	// ErrUnavailable wraps any failure of the underlying backend.
	ErrUnavailable = errors.New("store: persistence unavailable")

	// ErrWatchUnsupported is returned by Store.Watch for backends that cannot
	// report changes.
	ErrWatchUnsupported = errors.New("store: backend does not support watch")
)

// Persistence is the key-value boundary collections are serialized to. Read
// returns ErrKeyNotFound for a missing key; every other failure wraps
// ErrUnavailable.
type Persistence interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

// Describer is implemented by backends that can name where they keep data.
type Describer interface {
	Describe() string
}

// Watcher is implemented by backends that can stream changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event reports that the blob stored under Key changed.
type Event struct {
	Key string
}
