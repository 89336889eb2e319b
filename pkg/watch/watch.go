// Package watch runs the deadline watch: while the user has granted
// notification permission it periodically derives deadline alerts from the
// store and hands them to a notifier.
package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/store"
)

// DefaultInterval is the tick period when none is configured.
const DefaultInterval = time.Minute

// ErrNotWatching is returned by Run when permission has not been granted.
var ErrNotWatching = errors.New("watch: notifications not enabled")

// Permission mirrors the browser notification permission states.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// State is the watch lifecycle state.
type State int

const (
	Idle State = iota
	Watching
)

func (s State) String() string {
	if s == Watching {
		return "watching"
	}
	return "idle"
}

// Source provides the collections a tick inspects.
type Source interface {
	Snapshot() store.Snapshot
}

// Notifier delivers an alert to the user.
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// Permissions is the user-consent capability.
type Permissions interface {
	// Permission reports the current state without prompting.
	Permission(ctx context.Context) Permission
	// Request asks the user for consent and reports the outcome.
	Request(ctx context.Context) (Permission, error)
}

// Badge displays the urgent count.
type Badge interface {
	SetUrgent(n int)
}

// Result describes one tick.
type Result struct {
	// Skipped is set when the tick did no work: the watch was idle or a
	// previous tick was still running.
	Skipped bool
	Alerts  []Alert
	Urgent  int
}

// Watch is the deadline watch state machine. Source, Notifier and
// Permissions are required; the rest are optional.
type Watch struct {
	Source      Source
	Notifier    Notifier
	Permissions Permissions
	Badge       Badge
	Clock       clock.Clock
	Logger      *log.Logger
	// Interval between ticks; DefaultInterval when zero.
	Interval time.Duration
	// Dedupe suppresses an alert already sent on the same calendar day.
	Dedupe bool

	ticking sync.Mutex

	mu    sync.Mutex
	state State
	sent  map[string]string // tag -> day last sent
}

// State returns the current state.
func (w *Watch) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Watch) setState(s State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != s {
		w.log().Info("deadline watch state changed", "from", w.state, "to", s)
	}
	w.state = s
}

func (w *Watch) log() *log.Logger {
	return logging.OrDiscard(w.Logger)
}

func (w *Watch) clk() clock.Clock {
	if w.Clock == nil {
		return clock.Real()
	}
	return w.Clock
}

func (w *Watch) interval() time.Duration {
	if w.Interval <= 0 {
		return DefaultInterval
	}
	return w.Interval
}

// Enable moves the watch to Watching when permission is already granted or
// the user grants it now. Otherwise the watch stays Idle.
func (w *Watch) Enable(ctx context.Context) (State, error) {
	if w.Permissions == nil {
		return w.State(), errors.New("watch: no permission provider")
	}
	if w.Permissions.Permission(ctx) == PermissionGranted {
		w.setState(Watching)
		return Watching, nil
	}
	p, err := w.Permissions.Request(ctx)
	if err != nil {
		w.setState(Idle)
		return Idle, fmt.Errorf("watch: request permission: %w", err)
	}
	if p != PermissionGranted {
		w.log().Info("notification permission not granted", "permission", p)
		w.setState(Idle)
		return Idle, nil
	}
	w.setState(Watching)
	return Watching, nil
}

// Resume moves to Watching only if permission was granted earlier. It never
// prompts.
func (w *Watch) Resume(ctx context.Context) State {
	if w.Permissions != nil && w.Permissions.Permission(ctx) == PermissionGranted {
		w.setState(Watching)
	}
	return w.State()
}

// Disable returns the watch to Idle.
func (w *Watch) Disable() {
	w.setState(Idle)
}

// Tick runs one deadline check. It does nothing when Idle or when another
// tick is still in progress. A revoked permission is noticed here and moves
// the watch to Idle without alerting.
func (w *Watch) Tick(ctx context.Context) (Result, error) {
	if !w.ticking.TryLock() {
		return Result{Skipped: true}, nil
	}
	defer w.ticking.Unlock()

	if w.State() != Watching {
		return Result{Skipped: true}, nil
	}
	if w.Source == nil || w.Notifier == nil || w.Permissions == nil {
		return Result{Skipped: true}, errors.New("watch: missing collaborator")
	}
	if w.Permissions.Permission(ctx) != PermissionGranted {
		w.setState(Idle)
		return Result{Skipped: true}, nil
	}

	now := w.clk().Now()
	// One instant for the whole tick, even across midnight.
	engine := derive.New(dates.New(clock.At(now)))
	snap := w.Source.Snapshot()

	alerts := w.dedupe(Alerts(engine, snap.Tasks, snap.Events), now)

	var errs []error
	for _, a := range alerts {
		if err := w.Notifier.Notify(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("watch: notify %s: %w", a.Tag, err))
		}
	}

	urgent := engine.UrgentCount(snap.Tasks, snap.Events)
	if w.Badge != nil {
		w.Badge.SetUrgent(urgent)
	}
	w.log().Debug("deadline tick", "alerts", len(alerts), "urgent", urgent)
	return Result{Alerts: alerts, Urgent: urgent}, errors.Join(errs...)
}

// dedupe drops alerts already sent today when Dedupe is set. Only today's
// tags are kept.
func (w *Watch) dedupe(alerts []Alert, now time.Time) []Alert {
	if !w.Dedupe {
		return alerts
	}
	day := dates.StartOfDay(now).Format("2006-01-02")

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sent == nil {
		w.sent = make(map[string]string)
	}
	for tag, sentOn := range w.sent {
		if sentOn != day {
			delete(w.sent, tag)
		}
	}
	out := alerts[:0]
	for _, a := range alerts {
		if w.sent[a.Tag] == day {
			continue
		}
		w.sent[a.Tag] = day
		out = append(out, a)
	}
	return out
}

// Run ticks immediately and then every Interval until ctx is done or the
// watch falls back to Idle. Notification failures are logged, not returned.
func (w *Watch) Run(ctx context.Context) error {
	if w.State() != Watching {
		return ErrNotWatching
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()

	for {
		if _, err := w.Tick(ctx); err != nil {
			w.log().Warn("deadline alerts not delivered", "err", err)
		}
		if w.State() != Watching {
			return ErrNotWatching
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
