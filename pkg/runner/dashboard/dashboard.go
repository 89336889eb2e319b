// Package dashboard prints the landing view, or keeps it on screen and
// current when run live.
package dashboard

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/printers"
	"tableflip.dev/studyhub/pkg/store"
	tuidash "tableflip.dev/studyhub/pkg/tui/dashboard"
	"tableflip.dev/studyhub/pkg/watch"
)

type Dashboard struct {
	Service *app.Service
	Output  printers.Options
	Logger  *log.Logger

	// Live keeps the dashboard running. On a terminal it is full screen;
	// otherwise it is reprinted every Interval.
	Live     bool
	Interval time.Duration
	// Watch, when set, is ticked with the dashboard.
	Watch *watch.Watch
	In    io.Reader
}

func (n *Dashboard) Do(ctx context.Context) error {
	if !n.Live || n.Output.JSON {
		return n.once(ctx)
	}
	if out, ok := n.Output.Writer().(*os.File); ok && isTerminal(out) {
		return n.tui(ctx, out)
	}
	return n.loop(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (n *Dashboard) once(ctx context.Context) error {
	d, err := n.Service.Dashboard(ctx)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(d)
	}
	snap := n.Service.Store.Snapshot()
	n.Output.Printer(n.Service.Clock).Dashboard(d, snap.Tasks, snap.Events)
	return nil
}

func (n *Dashboard) tui(ctx context.Context, out *os.File) error {
	changes, err := n.Service.Store.Watch(ctx)
	if err != nil && !errors.Is(err, store.ErrWatchUnsupported) {
		logging.OrDiscard(n.Logger).Warn("store changes not followed", "err", err)
	}
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	return tuidash.Run(tuidash.Options{
		Context:  ctx,
		Service:  n.Service,
		Watch:    n.Watch,
		Interval: n.Interval,
		Changes:  changes,
		Dark:     termenv.HasDarkBackground,
	}, in, out)
}

// loop is the non-terminal fallback: tick, reprint, wait.
func (n *Dashboard) loop(ctx context.Context) error {
	interval := n.Interval
	if interval <= 0 {
		interval = watch.DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n.Watch != nil {
			if _, err := n.Watch.Tick(ctx); err != nil {
				logging.OrDiscard(n.Logger).Warn("deadline alerts not delivered", "err", err)
			}
		}
		n.Service.Store.Reload(ctx)
		if err := n.once(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
