package printers

import (
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/dates"
)

// Options select how a command renders its result.
type Options struct {
	JSON   bool
	ShowID bool
	Out    io.Writer
}

// Writer returns Out, or the color-aware stdout when unset.
func (o Options) Writer() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// Printer returns a PrettyPrint classifying dates against c.
func (o Options) Printer(c clock.Clock) *PrettyPrint {
	return &PrettyPrint{ShowID: o.ShowID, Out: o.Writer(), Dates: dates.New(c)}
}

// Encode writes v as JSON to the output.
func (o Options) Encode(v interface{}) error {
	return JSON(o.Writer(), v)
}
