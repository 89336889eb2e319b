package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/store"
)

var now = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)

func day(offset int) entity.Date {
	return entity.DateOf(now).AddDays(offset)
}

type fakeSource struct{ snap store.Snapshot }

func (f *fakeSource) Snapshot() store.Snapshot { return f.snap }

type recorder struct {
	mu      sync.Mutex
	alerts  []Alert
	err     error
	entered chan struct{}
	block   chan struct{}
}

func (r *recorder) Notify(_ context.Context, a Alert) error {
	if r.entered != nil {
		select {
		case r.entered <- struct{}{}:
		default:
		}
	}
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
	return r.err
}

func (r *recorder) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.alerts))
	for _, a := range r.alerts {
		out = append(out, a.Title)
	}
	return out
}

type fakePermissions struct {
	mu       sync.Mutex
	current  Permission
	answer   Permission
	err      error
	requests int
}

func (f *fakePermissions) Permission(context.Context) Permission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakePermissions) Request(context.Context) (Permission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.err != nil {
		return PermissionDefault, f.err
	}
	f.current = f.answer
	return f.answer, nil
}

func (f *fakePermissions) set(p Permission) {
	f.mu.Lock()
	f.current = p
	f.mu.Unlock()
}

type badge struct{ n int }

func (b *badge) SetUrgent(n int) { b.n = n }

func newWatch(snap store.Snapshot) (*Watch, *recorder, *fakePermissions, *badge) {
	rec := &recorder{}
	perms := &fakePermissions{current: PermissionDefault, answer: PermissionGranted}
	b := &badge{}
	w := &Watch{
		Source:      &fakeSource{snap: snap},
		Notifier:    rec,
		Permissions: perms,
		Badge:       b,
		Clock:       clock.NewFake(now),
	}
	return w, rec, perms, b
}

func essay() store.Snapshot {
	return store.Snapshot{Tasks: []entity.Task{{
		ID:       "1",
		Title:    "Essay",
		Priority: entity.PriorityHigh,
		DueDate:  day(0),
		Status:   entity.StatusPending,
	}}}
}

func TestEssayAlertsOncePerTick(t *testing.T) {
	ctx := context.Background()
	w, rec, _, b := newWatch(essay())

	state, err := w.Enable(ctx)
	require.NoError(t, err)
	require.Equal(t, Watching, state)

	for i := 1; i <= 3; i++ {
		res, err := w.Tick(ctx)
		require.NoError(t, err)
		require.Len(t, res.Alerts, 1)
		assert.Len(t, rec.titles(), i)
	}
	assert.Equal(t, []string{"Task Due Today: Essay", "Task Due Today: Essay", "Task Due Today: Essay"}, rec.titles())
	assert.Equal(t, "task-1-today", rec.alerts[0].Tag)
	assert.Equal(t, `Don't forget to complete "Essay" today!`, rec.alerts[0].Body)
	assert.Equal(t, 1, b.n)
}

func TestAlertsCoverage(t *testing.T) {
	e := derive.New(dates.New(clock.NewFake(now)))
	tasks := []entity.Task{
		{ID: "a", Title: "High today", Priority: entity.PriorityHigh, DueDate: day(0), Status: entity.StatusPending},
		{ID: "b", Title: "Low today", Priority: entity.PriorityLow, DueDate: day(0), Status: entity.StatusPending},
		{ID: "c", Title: "Tomorrow", Priority: entity.PriorityLow, DueDate: day(1), Status: entity.StatusPending},
		{ID: "d", Title: "Late", Priority: entity.PriorityMedium, DueDate: day(-3), Status: entity.StatusPending},
		{ID: "e", Title: "Done late", Priority: entity.PriorityHigh, DueDate: day(-3), Status: entity.StatusCompleted},
		{ID: "f", Title: "Done today", Priority: entity.PriorityHigh, DueDate: day(0), Status: entity.StatusCompleted},
		{ID: "g", Title: "Far", Priority: entity.PriorityHigh, DueDate: day(5), Status: entity.StatusPending},
	}
	events := []entity.Event{
		{ID: "x", EventName: "Expo", RegistrationDeadline: day(1)},
		{ID: "y", EventName: "Fair", RegistrationDeadline: day(0)},
		{ID: "z", EventName: "Gone", RegistrationDeadline: day(-1)},
	}

	alerts := Alerts(e, tasks, events)

	titles := make([]string, 0, len(alerts))
	for _, a := range alerts {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{
		"Task Due Today: High today",
		"Task Due Tomorrow: Tomorrow",
		"Overdue Task: Late",
		"Registration Deadline Today: Fair",
		"Registration Deadline Tomorrow: Expo",
	}, titles)
	assert.Equal(t, "event-x-tomorrow", alerts[4].Tag)
	assert.Equal(t, `Register for "Expo" before tomorrow!`, alerts[4].Body)
	assert.Equal(t, `"Late" is past its due date!`, alerts[2].Body)
}

func TestEnableDenied(t *testing.T) {
	w, rec, perms, _ := newWatch(essay())
	perms.answer = PermissionDenied

	state, err := w.Enable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Idle, state)

	res, err := w.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Empty(t, rec.titles())
}

func TestEnableRequestError(t *testing.T) {
	w, _, perms, _ := newWatch(essay())
	perms.err = errors.New("no terminal")

	state, err := w.Enable(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Idle, state)
}

func TestEnableSkipsPromptWhenGranted(t *testing.T) {
	w, _, perms, _ := newWatch(essay())
	perms.set(PermissionGranted)

	state, err := w.Enable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Watching, state)
	assert.Zero(t, perms.requests)
}

func TestResume(t *testing.T) {
	w, _, perms, _ := newWatch(essay())
	assert.Equal(t, Idle, w.Resume(context.Background()))
	assert.Zero(t, perms.requests, "resume must not prompt")

	perms.set(PermissionGranted)
	assert.Equal(t, Watching, w.Resume(context.Background()))

	w.Disable()
	assert.Equal(t, Idle, w.State())
}

func TestRevokedPermissionFallsBackToIdle(t *testing.T) {
	ctx := context.Background()
	w, rec, perms, _ := newWatch(essay())
	_, err := w.Enable(ctx)
	require.NoError(t, err)

	perms.set(PermissionDenied)
	res, err := w.Tick(ctx)
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Equal(t, Idle, w.State())
	assert.Empty(t, rec.titles())
}

func TestDedupeOncePerDay(t *testing.T) {
	ctx := context.Background()
	w, rec, _, _ := newWatch(essay())
	w.Dedupe = true
	fake := w.Clock.(*clock.Fake)
	_, err := w.Enable(ctx)
	require.NoError(t, err)

	_, err = w.Tick(ctx)
	require.NoError(t, err)
	fake.Advance(time.Hour)
	res, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
	assert.Len(t, rec.titles(), 1)

	// Next day the essay is overdue: a different tag.
	fake.AddDays(1)
	res, err = w.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, "Overdue Task: Essay", res.Alerts[0].Title)

	// Yesterday's tag is forgotten.
	assert.Len(t, w.sent, 1)
	assert.Contains(t, w.sent, res.Alerts[0].Tag)
}

func TestNotifyErrorsAreJoined(t *testing.T) {
	ctx := context.Background()
	w, rec, _, b := newWatch(essay())
	rec.err = errors.New("sink down")
	_, err := w.Enable(ctx)
	require.NoError(t, err)

	res, err := w.Tick(ctx)
	assert.ErrorContains(t, err, "sink down")
	assert.Len(t, res.Alerts, 1)
	assert.Equal(t, 1, b.n, "badge still updated")
}

func TestOverlappingTickIsSkipped(t *testing.T) {
	ctx := context.Background()
	w, rec, _, _ := newWatch(essay())
	rec.entered = make(chan struct{}, 1)
	rec.block = make(chan struct{})
	_, err := w.Enable(ctx)
	require.NoError(t, err)

	done := make(chan Result)
	go func() {
		res, _ := w.Tick(ctx)
		done <- res
	}()

	// The first tick is inside Notify, holding the guard.
	select {
	case <-rec.entered:
	case <-time.After(time.Second):
		t.Fatal("first tick never notified")
	}

	res, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	close(rec.block)
	first := <-done
	assert.False(t, first.Skipped)
	assert.Len(t, rec.titles(), 1)
}

func TestRunStopsOnCancel(t *testing.T) {
	w, rec, _, _ := newWatch(essay())
	w.Interval = 5 * time.Millisecond
	_, err := w.Enable(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.titles()) >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunStopsWhenRevoked(t *testing.T) {
	w, _, perms, _ := newWatch(essay())
	w.Interval = 5 * time.Millisecond
	_, err := w.Enable(context.Background())
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() { errc <- w.Run(context.Background()) }()
	perms.set(PermissionDenied)

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrNotWatching)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after revocation")
	}
}

func TestRunRequiresWatching(t *testing.T) {
	w, _, _, _ := newWatch(essay())
	assert.ErrorIs(t, w.Run(context.Background()), ErrNotWatching)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "StudyHub - Student Life Manager", Title(0))
	assert.Equal(t, "(3) StudyHub - Student Life Manager", Title(3))
}
