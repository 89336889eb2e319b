package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/timeutil"
)

// TaskFilterOptions
type TaskFilterOptions struct {
	Filter derive.TaskFilter
	Within string
}

func TaskFilterNames() []string {
	out := make([]string, 0, len(derive.TaskFilters()))
	for _, f := range derive.TaskFilters() {
		out = append(out, string(f))
	}
	return out
}

func AddTaskFilterArgs(cmd *cobra.Command, o *TaskFilterOptions) {
	cmd.Flags().StringVar(&o.Within, "within", "",
		"Only tasks due within this window, example: --within=3d or 1w2d.")
}

// TaskFilterArg reads an optional filter from the positional arguments.
func (o *TaskFilterOptions) TaskFilterArg(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one filter, one of %s", strings.Join(TaskFilterNames(), ", "))
	}
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	f, err := derive.ParseTaskFilter(raw)
	if err != nil {
		return err
	}
	o.Filter = f
	return nil
}

// Window parses --within. Unset yields zero.
func (o *TaskFilterOptions) Window() (time.Duration, error) {
	if o.Within == "" {
		return 0, nil
	}
	d, _, err := timeutil.ParseWindow(o.Within)
	return d, err
}

// EventFilterOptions
type EventFilterOptions struct {
	Filter derive.EventFilter
}

func EventFilterNames() []string {
	out := make([]string, 0, len(derive.EventFilters()))
	for _, f := range derive.EventFilters() {
		out = append(out, string(f))
	}
	return out
}

func (o *EventFilterOptions) EventFilterArg(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one filter, one of %s", strings.Join(EventFilterNames(), ", "))
	}
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	f, err := derive.ParseEventFilter(raw)
	if err != nil {
		return err
	}
	o.Filter = f
	return nil
}

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "within", "w", timeutil.DefaultWindow,
		"How far ahead to look, example: --within=3d or 1w2d.")
}

func (o *WindowOptions) Duration() (time.Duration, error) {
	d, _, err := timeutil.ParseWindow(o.Window)
	return d, err
}
