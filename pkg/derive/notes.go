package derive

import (
	"sort"

	"tableflip.dev/studyhub/pkg/entity"
)

// Recency group labels, in output order.
const (
	GroupToday     = "Today"
	GroupYesterday = "Yesterday"
	GroupThisWeek  = "This Week"
	GroupOlder     = "Older"
)

// NoteGroup is a labelled run of notes.
type NoteGroup struct {
	Label string        `json:"label"`
	Notes []entity.Note `json:"notes"`
}

// SortNotes orders notes newest date first. Ties keep their input order.
func SortNotes(notes []entity.Note) []entity.Note {
	out := append([]entity.Note(nil), notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// GroupNotes sorts notes newest first and buckets each into the first
// matching group: Today, Yesterday, This Week (the last seven days) or
// Older. Empty groups are left out.
func (e Engine) GroupNotes(notes []entity.Note) []NoteGroup {
	today := e.Dates.Today()
	yesterday := today.AddDate(0, 0, -1)
	week := today.AddDate(0, 0, -7)

	labels := []string{GroupToday, GroupYesterday, GroupThisWeek, GroupOlder}
	buckets := make(map[string][]entity.Note, len(labels))
	for _, n := range SortNotes(notes) {
		d := n.Date.Time
		var label string
		switch {
		case !d.Before(today):
			label = GroupToday
		case !d.Before(yesterday):
			label = GroupYesterday
		case !d.Before(week):
			label = GroupThisWeek
		default:
			label = GroupOlder
		}
		buckets[label] = append(buckets[label], n)
	}

	groups := make([]NoteGroup, 0, len(labels))
	for _, label := range labels {
		if len(buckets[label]) == 0 {
			continue
		}
		groups = append(groups, NoteGroup{Label: label, Notes: buckets[label]})
	}
	return groups
}

// TodayNotes returns notes dated today.
func (e Engine) TodayNotes(notes []entity.Note) []entity.Note {
	return filter(notes, func(n entity.Note) bool {
		return e.Dates.IsToday(n.Date.Time)
	})
}
