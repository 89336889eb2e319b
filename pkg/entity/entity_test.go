package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTaskWireShape(t *testing.T) {
	created := time.Date(2025, 3, 9, 14, 30, 5, 250*int(time.Millisecond), time.UTC)
	task := Task{
		ID:        "1741530605250-k3j2h1g0f",
		Title:     "Essay",
		Category:  CategoryStudy,
		Priority:  PriorityHigh,
		DueDate:   MustDate("2025-03-10"),
		Status:    StatusPending,
		CreatedAt: Stamp(created),
	}
	b, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"1741530605250-k3j2h1g0f","title":"Essay","category":"study","priority":"high","dueDate":"2025-03-10","status":"pending","createdAt":"2025-03-09T14:30:05.250Z"}`
	if string(b) != want {
		t.Fatalf("unexpected wire shape:\n got %s\nwant %s", b, want)
	}
}

func TestEventDecodesBrowserPayload(t *testing.T) {
	raw := `{"id":"a","eventName":"Hackathon","registrationDeadline":"2025-04-01","participationDate":"2025-04-12","notes":"","createdAt":"2025-03-01T08:00:00.000Z"}`
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.RegistrationDeadline.String() != "2025-04-01" {
		t.Fatalf("expected deadline 2025-04-01, got %s", e.RegistrationDeadline)
	}
	if e.RegistrationDeadline.Hour() != 0 || e.RegistrationDeadline.Location() != time.Local {
		t.Fatalf("expected local midnight, got %v", e.RegistrationDeadline.Time)
	}
	if got := e.CreatedAt.UTC(); !got.Equal(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", got)
	}
}

func TestDateTruncatesTimestamps(t *testing.T) {
	var n Note
	if err := json.Unmarshal([]byte(`{"id":"n","content":"x","date":"2025-01-31T22:10:00.000Z","createdAt":""}`), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n.Date.String() != "2025-01-31" {
		t.Fatalf("expected 2025-01-31, got %s", n.Date)
	}
	if !n.CreatedAt.IsZero() {
		t.Fatalf("expected zero createdAt")
	}
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	d := MustDate("2024-02-28").AddDays(2)
	if d.String() != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", d)
	}
}

func TestParseEnums(t *testing.T) {
	if c, err := ParseCategory(" Personal "); err != nil || c != CategoryPersonal {
		t.Fatalf("expected personal, got %q (%v)", c, err)
	}
	if p, err := ParsePriority(""); err != nil || p != PriorityMedium {
		t.Fatalf("expected medium default, got %q (%v)", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
	if s := StatusPending.Toggle().Toggle(); s != StatusPending {
		t.Fatalf("expected toggle involution, got %q", s)
	}
}

func TestNewIDIsUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 500; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
		if prev != "" && strings.Compare(id[:8], prev[:8]) < 0 {
			t.Fatalf("ids went backwards: %s after %s", id, prev)
		}
		prev = id
	}
}

func TestIndexOf(t *testing.T) {
	notes := []Note{{ID: "a"}, {ID: "b"}}
	if i := IndexOf(notes, "b"); i != 1 {
		t.Fatalf("expected 1, got %d", i)
	}
	if i := IndexOf(notes, "zzz"); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}
}
