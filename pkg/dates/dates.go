// Package dates classifies calendar dates relative to the start of today.
//
// Every comparison discards the time of day: a date is first normalized to
// local midnight, then compared with today's midnight. Today, upcoming and
// overdue partition all dates.
package dates

import (
	"time"

	"tableflip.dev/studyhub/pkg/clock"
)

// Bucket is the temporal class of a date.
type Bucket int

const (
	// BucketOverdue holds dates strictly before today.
	BucketOverdue Bucket = iota
	// BucketToday holds today's date.
	BucketToday
	// BucketUpcoming holds dates strictly after today.
	BucketUpcoming
)

func (b Bucket) String() string {
	switch b {
	case BucketOverdue:
		return "overdue"
	case BucketToday:
		return "today"
	case BucketUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// Classifier answers today/tomorrow/past/future questions against a clock.
type Classifier struct {
	Clock clock.Clock
}

// New returns a Classifier reading the given clock. A nil clock uses the
// wall clock.
func New(c clock.Clock) Classifier {
	if c == nil {
		c = clock.Real()
	}
	return Classifier{Clock: c}
}

// StartOfDay returns local midnight of t's calendar date.
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// Now returns the current instant.
func (c Classifier) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// Today returns the start of the current day.
func (c Classifier) Today() time.Time {
	return StartOfDay(c.Now())
}

// Tomorrow returns the start of the next day.
func (c Classifier) Tomorrow() time.Time {
	return c.Today().AddDate(0, 0, 1)
}

// Yesterday returns the start of the previous day.
func (c Classifier) Yesterday() time.Time {
	return c.Today().AddDate(0, 0, -1)
}

// IsToday reports whether t falls on the current calendar date.
func (c Classifier) IsToday(t time.Time) bool {
	return StartOfDay(t).Equal(c.Today())
}

// IsTomorrow reports whether t falls on the day after today.
func (c Classifier) IsTomorrow(t time.Time) bool {
	return StartOfDay(t).Equal(c.Tomorrow())
}

// IsYesterday reports whether t falls on the day before today.
func (c Classifier) IsYesterday(t time.Time) bool {
	return StartOfDay(t).Equal(c.Yesterday())
}

// IsPastDay reports whether t's date is strictly before today.
func (c Classifier) IsPastDay(t time.Time) bool {
	return StartOfDay(t).Before(c.Today())
}

// IsFutureDay reports whether t's date is strictly after today.
func (c Classifier) IsFutureDay(t time.Time) bool {
	return StartOfDay(t).After(c.Today())
}

// Bucket places t in exactly one of overdue, today or upcoming.
func (c Classifier) Bucket(t time.Time) Bucket {
	day := StartOfDay(t)
	today := c.Today()
	switch {
	case day.Before(today):
		return BucketOverdue
	case day.After(today):
		return BucketUpcoming
	default:
		return BucketToday
	}
}

// DaysUntil returns the number of calendar days from today to t. Negative
// values are in the past.
func (c Classifier) DaysUntil(t time.Time) int {
	return int(civil(StartOfDay(t)).Sub(civil(c.Today())).Hours() / 24)
}

// civil maps a local midnight onto UTC so day differences ignore DST shifts.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
