// Package key prints the legend for the marks used in listings.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyhub/pkg/glyph"
	"tableflip.dev/studyhub/pkg/printers"
)

// Key prints the glyph legend grouped by kind.
type Key struct {
	Output printers.Options
}

func (k *Key) Do(ctx context.Context) error {
	legend := glyph.Legend()
	if k.Output.JSON {
		return k.Output.Encode(legend)
	}

	w := k.Output.Writer()
	_, _ = fmt.Fprintln(w, "")
	for _, kind := range []glyph.Kind{glyph.KindStatus, glyph.KindPriority, glyph.KindCategory, glyph.KindEntry} {
		k.Key(ctx, kind, legend)
		_, _ = fmt.Fprintln(w, "")
	}
	return nil
}

// Key renders the glyphs of one kind as a table.
func (k *Key) Key(_ context.Context, kind glyph.Kind, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprintf("%10s", kind), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		if v.Kind == kind {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Output.Writer(), tbl)
}
