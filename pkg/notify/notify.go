// Package notify delivers deadline alerts and keeps the user's notification
// consent.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/studyhub/pkg/watch"
)

// Terminal prints each alert as a colored line.
type Terminal struct {
	Out io.Writer
	// Bell rings the terminal bell before each alert.
	Bell bool
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

func (t *Terminal) Notify(_ context.Context, a watch.Alert) error {
	title := alertColor(a.Tag)
	body := color.New(color.Faint)

	w := t.out()
	if t.Bell {
		if _, err := io.WriteString(w, "\a"); err != nil {
			return err
		}
	}
	if _, err := title.Fprint(w, a.Title); err != nil {
		return err
	}
	_, err := body.Fprintf(w, "  %s\n", a.Body)
	return err
}

func alertColor(tag string) *color.Color {
	switch {
	case strings.HasSuffix(tag, "-overdue"):
		return color.New(color.Bold, color.FgHiRed)
	case strings.HasSuffix(tag, "-today"):
		return color.New(color.Bold, color.FgHiYellow)
	default:
		return color.New(color.Bold, color.FgHiCyan)
	}
}

// Log writes each alert as a structured log record.
type Log struct {
	Logger *log.Logger
}

func (l *Log) Notify(_ context.Context, a watch.Alert) error {
	if l.Logger == nil {
		return errors.New("notify: no logger")
	}
	l.Logger.Info(a.Title, "body", a.Body, "tag", a.Tag)
	return nil
}

// Multi fans an alert out to every notifier.
type Multi []watch.Notifier

func (m Multi) Notify(ctx context.Context, a watch.Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TitleBadge shows the urgent count in the terminal window title.
type TitleBadge struct {
	Output *termenv.Output
}

// NewTitleBadge returns a badge writing to w.
func NewTitleBadge(w io.Writer) *TitleBadge {
	return &TitleBadge{Output: termenv.NewOutput(w)}
}

func (b *TitleBadge) SetUrgent(n int) {
	b.Output.SetWindowTitle(watch.Title(n))
}

// Func adapts a function to watch.Notifier.
type Func func(ctx context.Context, a watch.Alert) error

func (f Func) Notify(ctx context.Context, a watch.Alert) error { return f(ctx, a) }

// Describe renders an alert on one line.
func Describe(a watch.Alert) string {
	return fmt.Sprintf("%s: %s", a.Title, a.Body)
}
