package prompt

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/timeutil"
)

// Asker is what the forms need from a prompt. Console implements it.
type Asker interface {
	Text(label, def string, validate func(string) error) (string, error)
	Choose(label string, items []string, def string) (string, error)
}

// Task asks for every task field, offering the values in as defaults.
func Task(a Asker, in app.TaskInput, now time.Time) (app.TaskInput, error) {
	var err error
	if in.Title, err = a.Text("Title", in.Title, required); err != nil {
		return in, err
	}

	categories := make([]string, 0, len(entity.Categories()))
	for _, c := range entity.Categories() {
		categories = append(categories, string(c))
	}
	category, err := a.Choose("Category", categories, orDefault(string(in.Category), string(entity.CategoryStudy)))
	if err != nil {
		return in, err
	}
	in.Category = entity.Category(category)

	priorities := make([]string, 0, len(entity.Priorities()))
	for _, p := range entity.Priorities() {
		priorities = append(priorities, string(p))
	}
	priority, err := a.Choose("Priority", priorities, orDefault(string(in.Priority), string(entity.PriorityMedium)))
	if err != nil {
		return in, err
	}
	in.Priority = entity.Priority(priority)

	in.DueDate, err = date(a, "Due date", in.DueDate, now)
	return in, err
}

// Event asks for every event field, offering the values in as defaults.
func Event(a Asker, in app.EventInput, now time.Time) (app.EventInput, error) {
	var err error
	if in.EventName, err = a.Text("Event name", in.EventName, required); err != nil {
		return in, err
	}
	if in.RegistrationDeadline, err = date(a, "Registration deadline", in.RegistrationDeadline, now); err != nil {
		return in, err
	}
	if in.ParticipationDate, err = date(a, "Participation date", in.ParticipationDate, now); err != nil {
		return in, err
	}
	in.Notes, err = a.Text("Notes", in.Notes, nil)
	return in, err
}

// Note asks for the note content and its date.
func Note(a Asker, in app.NoteInput, now time.Time) (app.NoteInput, error) {
	var err error
	if in.Content, err = a.Text("Note", in.Content, required); err != nil {
		return in, err
	}
	in.Date, err = date(a, "Date", in.Date, now)
	return in, err
}

func date(a Asker, label string, current entity.Date, now time.Time) (entity.Date, error) {
	def := "today"
	if !current.IsZero() {
		def = current.String()
	}
	raw, err := a.Text(label, def, func(s string) error {
		_, err := timeutil.ParseDate(s, now)
		return err
	})
	if err != nil {
		return current, err
	}
	return timeutil.ParseDate(raw, now)
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
