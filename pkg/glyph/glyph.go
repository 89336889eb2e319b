// Package glyph holds the marks printed next to tasks, events and notes.
package glyph

import (
	"fmt"

	"tableflip.dev/studyhub/pkg/entity"
)

// Kind groups glyphs in the legend.
type Kind string

const (
	KindStatus   Kind = "Status"
	KindPriority Kind = "Priority"
	KindCategory Kind = "Category"
	KindEntry    Kind = "Entry"
)

type Glyph struct {
	Symbol  string
	Meaning string
	Kind    Kind
}

func (g Glyph) String() string {
	return g.Symbol
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var (
	Pending   = Glyph{Symbol: "●", Meaning: "task pending", Kind: KindStatus}
	Completed = Glyph{Symbol: "✘", Meaning: "task completed", Kind: KindStatus}
	Overdue   = Glyph{Symbol: "⚠", Meaning: "task overdue", Kind: KindStatus}

	High   = Glyph{Symbol: "‼", Meaning: "high priority", Kind: KindPriority}
	Medium = Glyph{Symbol: "!", Meaning: "medium priority", Kind: KindPriority}
	Low    = Glyph{Symbol: " ", Meaning: "low priority", Kind: KindPriority}

	Study    = Glyph{Symbol: "✎", Meaning: "study", Kind: KindCategory}
	Event    = Glyph{Symbol: "○", Meaning: "event", Kind: KindCategory}
	Personal = Glyph{Symbol: "♥", Meaning: "personal", Kind: KindCategory}

	Announcement = Glyph{Symbol: "◆", Meaning: "event registration", Kind: KindEntry}
	Missed       = Glyph{Symbol: "◇", Meaning: "registration closed", Kind: KindEntry}
	Note         = Glyph{Symbol: "⁃", Meaning: "note", Kind: KindEntry}
)

// Legend returns every glyph in display order.
func Legend() []Glyph {
	return []Glyph{
		Pending, Completed, Overdue,
		High, Medium, Low,
		Study, Event, Personal,
		Announcement, Missed, Note,
	}
}

// ForStatus returns the mark for a task status.
func ForStatus(s entity.Status) Glyph {
	if s == entity.StatusCompleted {
		return Completed
	}
	return Pending
}

// ForPriority returns the mark for a task priority.
func ForPriority(p entity.Priority) Glyph {
	switch p {
	case entity.PriorityHigh:
		return High
	case entity.PriorityMedium:
		return Medium
	default:
		return Low
	}
}

// ForCategory returns the mark for a task category.
func ForCategory(c entity.Category) Glyph {
	switch c {
	case entity.CategoryEvent:
		return Event
	case entity.CategoryPersonal:
		return Personal
	default:
		return Study
	}
}
