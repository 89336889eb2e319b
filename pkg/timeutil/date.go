package timeutil

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/studyhub/pkg/entity"
)

const layoutShort = "1/2"

// ParseDate reads a calendar date relative to now. It accepts "today",
// "tomorrow", "yesterday", "2006-01-02", "2006-1-2" and "1/2". A bare
// month/day that has already passed this year means next year. Empty input
// yields the zero date.
func ParseDate(input string, now time.Time) (entity.Date, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	today := entity.DateOf(now)
	switch v {
	case "":
		return entity.Date{}, nil
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	for _, layout := range []string{entity.LayoutDate, "2006-1-2"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return entity.DateOf(t), nil
		}
	}

	t, err := time.ParseInLocation(layoutShort, v, time.Local)
	if err != nil {
		return entity.Date{}, fmt.Errorf("timeutil: unrecognized date %q, use YYYY-MM-DD, M/D, today or tomorrow", input)
	}
	// 1/3 typed on 12/5 means next January; 2/29 means the next leap day.
	for year := today.Year(); year <= today.Year()+8; year++ {
		d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
		if d.Month() != t.Month() || d.Day() != t.Day() || d.Before(today.Time) {
			continue
		}
		return entity.DateOf(d), nil
	}
	return entity.Date{}, fmt.Errorf("timeutil: no such date %q", input)
}
