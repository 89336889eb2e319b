package glyph

import (
	"testing"

	"tableflip.dev/studyhub/pkg/entity"
)

func TestLegendIsComplete(t *testing.T) {
	seen := map[Kind]int{}
	for _, g := range Legend() {
		if g.Meaning == "" {
			t.Errorf("glyph %q has no meaning", g.Symbol)
		}
		seen[g.Kind]++
	}
	for _, k := range []Kind{KindStatus, KindPriority, KindCategory, KindEntry} {
		if seen[k] == 0 {
			t.Errorf("legend has no %s glyphs", k)
		}
	}
}

func TestLookups(t *testing.T) {
	if ForStatus(entity.StatusCompleted) != Completed || ForStatus(entity.StatusPending) != Pending {
		t.Error("status glyphs")
	}
	for _, p := range entity.Priorities() {
		if ForPriority(p).Kind != KindPriority {
			t.Errorf("priority %s", p)
		}
	}
	for _, c := range entity.Categories() {
		if got := ForCategory(c); got.Meaning != string(c) {
			t.Errorf("category %s mapped to %s", c, got.Meaning)
		}
	}
}

func TestStyles(t *testing.T) {
	if got := Bold("x"); got != "\x1b[1mx\x1b[0m" {
		t.Errorf("bold = %q", got)
	}
	if got := Strike("x"); got != "\x1b[9mx\x1b[0m" {
		t.Errorf("strike = %q", got)
	}
	if got := Underline("x"); got != "\x1b[4mx\x1b[0m" {
		t.Errorf("underline = %q", got)
	}
}
