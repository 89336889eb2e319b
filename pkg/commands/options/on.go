package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/timeutil"
)

const dateHelp = `"2024-2-28", "2/28", "today" or "tomorrow"`

// DateFlag is a date-valued flag that remembers whether it was set.
type DateFlag struct {
	Name string
	raw  string
}

func AddDateArg(cmd *cobra.Command, d *DateFlag, usage string) {
	cmd.Flags().StringVar(&d.raw, d.Name, "", fmt.Sprintf("%s, example: --%s=%s.", usage, d.Name, dateHelp))
}

// Changed reports whether the flag was given on the command line.
func (d *DateFlag) Changed(flags *pflag.FlagSet) bool {
	return flags.Changed(d.Name)
}

// Date parses the flag relative to now. Unset yields the zero Date.
func (d *DateFlag) Date(now time.Time) (entity.Date, error) {
	v, err := timeutil.ParseDate(d.raw, now)
	if err != nil {
		return entity.Date{}, fmt.Errorf("--%s: %w", d.Name, err)
	}
	return v, nil
}

// Pointer returns the parsed date when the flag was set, else nil.
func (d *DateFlag) Pointer(flags *pflag.FlagSet, now time.Time) (*entity.Date, error) {
	if !d.Changed(flags) {
		return nil, nil
	}
	v, err := d.Date(now)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
