package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutDate is the wire layout of calendar dates.
	LayoutDate = "2006-01-02"

	// LayoutTimestamp matches what browsers produce for Date.toISOString.
	LayoutTimestamp = "2006-01-02T15:04:05.000Z07:00"
)

// ParseTime parses an RFC 3339 timestamp, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is an instant serialized as an ISO-8601 UTC string.
type Timestamp struct {
	time.Time
}

// Stamp wraps t as a Timestamp.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(LayoutTimestamp)
}

// Date is a calendar date. The time of day is always local midnight.
type Date struct {
	time.Time
}

// DateOf truncates t to its local calendar date.
func DateOf(t time.Time) Date {
	l := t.Local()
	return Date{Time: time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)}
}

// ParseDate parses "YYYY-MM-DD" as local midnight. Empty input yields the
// zero Date.
func ParseDate(v string) (Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Date{}, nil
	}
	t, err := time.ParseInLocation(LayoutDate, v, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("entity: invalid date %q: %w", v, err)
	}
	return Date{Time: t}, nil
}

// MustDate parses v and panics on error. Intended for tests.
func MustDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// AddDays returns the date n calendar days away.
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

// Equal reports whether both dates name the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.String() == o.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	// Some browsers persisted full timestamps for date fields; keep the day.
	if len(raw) > len(LayoutDate) {
		raw = raw[:len(LayoutDate)]
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(LayoutDate)
}
