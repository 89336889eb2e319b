package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/entity"
)

// script answers prompts in order. An empty answer takes the default, like
// pressing enter. Every answer must pass the prompt's validation.
type script struct {
	t       *testing.T
	answers []string
	asked   []string
	defs    map[string]string
}

func (s *script) next(label, def string) string {
	s.t.Helper()
	if len(s.answers) == 0 {
		s.t.Fatalf("unexpected prompt %q", label)
	}
	if s.defs == nil {
		s.defs = map[string]string{}
	}
	s.asked = append(s.asked, label)
	s.defs[label] = def
	v := s.answers[0]
	s.answers = s.answers[1:]
	if v == "" {
		v = def
	}
	return v
}

func (s *script) Text(label, def string, validate func(string) error) (string, error) {
	v := s.next(label, def)
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (s *script) Choose(label string, items []string, def string) (string, error) {
	v := s.next(label, def)
	for _, item := range items {
		if item == v {
			return v, nil
		}
	}
	return "", errors.New("not a choice: " + v)
}

var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

func TestTaskForm(t *testing.T) {
	a := &script{t: t, answers: []string{"Lab report", "", "high", "tomorrow"}}
	in, err := Task(a, app.TaskInput{}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Category", "Priority", "Due date"}, a.asked)
	assert.Equal(t, "study", a.defs["Category"])
	assert.Equal(t, "medium", a.defs["Priority"])
	assert.Equal(t, "today", a.defs["Due date"])
	assert.Equal(t, app.TaskInput{
		Title:    "Lab report",
		Category: entity.CategoryStudy,
		Priority: entity.PriorityHigh,
		DueDate:  entity.MustDate("2024-03-16"),
	}, in)
}

func TestTaskFormKeepsCurrentValues(t *testing.T) {
	current := app.TaskInput{
		Title:    "Gym",
		Category: entity.CategoryPersonal,
		Priority: entity.PriorityLow,
		DueDate:  entity.MustDate("2024-03-20"),
	}
	a := &script{t: t, answers: []string{"", "", "", ""}}
	in, err := Task(a, current, now)
	require.NoError(t, err)
	assert.Equal(t, current, in)
	assert.Equal(t, "2024-03-20", a.defs["Due date"])
}

func TestTaskFormRejectsBlankTitle(t *testing.T) {
	a := &script{t: t, answers: []string{"   "}}
	_, err := Task(a, app.TaskInput{}, now)
	assert.Error(t, err)
}

func TestEventForm(t *testing.T) {
	a := &script{t: t, answers: []string{"Hackathon", "3/20", "2024-4-2", "team of 3"}}
	in, err := Event(a, app.EventInput{}, now)
	require.NoError(t, err)
	assert.Equal(t, app.EventInput{
		EventName:            "Hackathon",
		RegistrationDeadline: entity.MustDate("2024-03-20"),
		ParticipationDate:    entity.MustDate("2024-04-02"),
		Notes:                "team of 3",
	}, in)
}

func TestEventFormBadDate(t *testing.T) {
	a := &script{t: t, answers: []string{"Hackathon", "someday"}}
	_, err := Event(a, app.EventInput{}, now)
	assert.Error(t, err)
}

func TestNoteForm(t *testing.T) {
	a := &script{t: t, answers: []string{"office hours moved", "yesterday"}}
	in, err := Note(a, app.NoteInput{}, now)
	require.NoError(t, err)
	assert.Equal(t, "office hours moved", in.Content)
	assert.Equal(t, "2024-03-14", in.Date.String())
}
