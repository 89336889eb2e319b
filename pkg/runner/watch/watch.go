// Package watch runs the deadline watch in the foreground, printing alerts
// as they come due.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/notify"
	"tableflip.dev/studyhub/pkg/printers"
	"tableflip.dev/studyhub/pkg/store"
	"tableflip.dev/studyhub/pkg/timeutil"
	"tableflip.dev/studyhub/pkg/watch"
)

type Watch struct {
	Store    *store.Store
	Clock    clock.Clock
	Logger   *log.Logger
	Interval time.Duration
	Dedupe   bool
	// Once runs a single tick and returns.
	Once   bool
	Bell   bool
	In     io.Reader
	Output printers.Options
}

// Build wires a watch over the store with the terminal and log notifiers.
// The permission prompt reads from In and writes to the output.
func (n *Watch) Build() (*watch.Watch, *notify.Stored) {
	perms := &notify.Stored{
		Store:    n.Store,
		Prompter: &notify.ConsolePrompt{In: n.In, Out: n.Output.Writer()},
	}
	var notifiers notify.Multi
	if n.Logger != nil {
		notifiers = append(notifiers, &notify.Log{Logger: n.Logger})
	}
	w := &watch.Watch{
		Source:      n.Store,
		Permissions: perms,
		Clock:       n.Clock,
		Logger:      n.Logger,
		Interval:    n.Interval,
		Dedupe:      n.Dedupe,
	}
	if !n.Output.JSON {
		notifiers = append(notifiers, &notify.Terminal{Out: n.Output.Writer(), Bell: n.Bell})
		w.Badge = notify.NewTitleBadge(n.Output.Writer())
	}
	w.Notifier = notifiers
	return w, perms
}

func (n *Watch) Do(ctx context.Context) error {
	w, _ := n.Build()
	state, err := w.Enable(ctx)
	if err != nil {
		return err
	}
	if state != watch.Watching {
		return fmt.Errorf("%w: run `studyhub notify enable` to allow alerts", watch.ErrNotWatching)
	}

	if n.Once {
		res, err := w.Tick(ctx)
		if n.Output.JSON {
			if encErr := n.Output.Encode(res); encErr != nil {
				return encErr
			}
		}
		return err
	}

	interval := n.Interval
	if interval <= 0 {
		interval = watch.DefaultInterval
	}
	_, _ = color.New(color.Faint).Fprintf(n.Output.Writer(), "watching deadlines every %s, ctrl+c to stop\n", timeutil.FormatWindow(interval))

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
