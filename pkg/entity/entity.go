// Package entity defines the records a student journal keeps: tasks, events
// and notes, together with the wire shape they are persisted in.
package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category classifies a task.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryEvent    Category = "event"
	CategoryPersonal Category = "personal"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryStudy, CategoryEvent, CategoryPersonal}
}

// ParseCategory converts raw input to a Category. Empty input yields study.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryStudy, nil
	}
	for _, candidate := range Categories() {
		if candidate == c {
			return c, nil
		}
	}
	return CategoryStudy, fmt.Errorf("entity: unknown category %q", raw)
}

// Label is the human form of the category.
func (c Category) Label() string {
	switch c {
	case CategoryStudy:
		return "Study"
	case CategoryEvent:
		return "Event"
	case CategoryPersonal:
		return "Personal"
	default:
		return string(c)
	}
}

// Priority ranks how pressing a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns every priority from most to least pressing.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority converts raw input to a Priority. Empty input yields medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range Priorities() {
		if candidate == p {
			return p, nil
		}
	}
	return PriorityMedium, fmt.Errorf("entity: unknown priority %q", raw)
}

// Rank orders priorities: high < medium < low. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus converts raw input to a Status. Empty input yields pending.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return StatusPending, nil
	case StatusPending, StatusCompleted:
		return s, nil
	default:
		return StatusPending, fmt.Errorf("entity: unknown status %q", raw)
	}
}

// Toggle flips between pending and completed.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task is something to get done by a due date.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	DueDate   Date      `json:"dueDate"`
	Status    Status    `json:"status"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (t Task) EntityID() string { return t.ID }

// Pending reports whether the task is still open.
func (t Task) Pending() bool { return t.Status != StatusCompleted }

// Completed reports whether the task is done.
func (t Task) Completed() bool { return t.Status == StatusCompleted }

// Event is an announcement with a registration deadline, such as a
// hackathon, workshop or exam.
type Event struct {
	ID                   string    `json:"id"`
	EventName            string    `json:"eventName"`
	RegistrationDeadline Date      `json:"registrationDeadline"`
	ParticipationDate    Date      `json:"participationDate"`
	Notes                string    `json:"notes"`
	CreatedAt            Timestamp `json:"createdAt"`
}

func (e Event) EntityID() string { return e.ID }

// Note is free-form text pinned to a date.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Date      Date      `json:"date"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (n Note) EntityID() string { return n.ID }

// Identified is implemented by every entity.
type Identified interface {
	EntityID() string
}

// IndexOf returns the position of the entity with id, or -1.
func IndexOf[T Identified](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// NewID returns a fresh identifier. UUIDv7 values start with a millisecond
// timestamp followed by random bits, so ids sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
