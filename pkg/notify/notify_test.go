package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/store"
	"tableflip.dev/studyhub/pkg/watch"
)

var essay = watch.Alert{
	Title: "Task Due Today: Essay",
	Body:  `Don't forget to complete "Essay" today!`,
	Tag:   "task-1-today",
}

func TestTerminal(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	term := &Terminal{Out: &buf, Bell: true}
	require.NoError(t, term.Notify(context.Background(), essay))

	assert.Equal(t, "\aTask Due Today: Essay  Don't forget to complete \"Essay\" today!\n", buf.String())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	l := &Log{Logger: logging.New(logging.Options{Writer: &buf, Level: "info"})}
	require.NoError(t, l.Notify(context.Background(), essay))

	out := buf.String()
	assert.Contains(t, out, "Task Due Today: Essay")
	assert.Contains(t, out, "tag=task-1-today")

	assert.Error(t, (&Log{}).Notify(context.Background(), essay))
}

func TestMulti(t *testing.T) {
	var got []string
	ok := Func(func(_ context.Context, a watch.Alert) error {
		got = append(got, a.Tag)
		return nil
	})
	broken := Func(func(context.Context, watch.Alert) error { return errors.New("down") })

	err := Multi{ok, broken, ok}.Notify(context.Background(), essay)

	assert.ErrorContains(t, err, "down")
	assert.Equal(t, []string{"task-1-today", "task-1-today"}, got)
}

func TestTitleBadge(t *testing.T) {
	var buf bytes.Buffer
	b := &TitleBadge{Output: termenv.NewOutput(&buf)}
	b.SetUrgent(2)
	assert.Contains(t, buf.String(), "(2) StudyHub - Student Life Manager")
}

func newStored(t *testing.T, p Prompter) (*Stored, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	st, err := store.Open(context.Background(), mem, nil)
	require.NoError(t, err)
	return &Stored{Store: st, Prompter: p}, mem
}

func TestStoredPermissionFlow(t *testing.T) {
	ctx := context.Background()
	s, mem := newStored(t, Always(true))

	assert.Equal(t, watch.PermissionDefault, s.Permission(ctx))

	p, err := s.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, watch.PermissionGranted, p)
	raw, err := mem.Read(ctx, store.KeyNotifications)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	require.NoError(t, s.Revoke(ctx))
	assert.Equal(t, watch.PermissionDenied, s.Permission(ctx))

	require.NoError(t, s.Grant(ctx))
	assert.Equal(t, watch.PermissionGranted, s.Permission(ctx))
}

func TestStoredRefusal(t *testing.T) {
	ctx := context.Background()
	s, _ := newStored(t, Always(false))

	p, err := s.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, watch.PermissionDenied, p)
	assert.Equal(t, watch.PermissionDenied, s.Permission(ctx))
}

func TestStoredWithoutPrompter(t *testing.T) {
	s, _ := newStored(t, nil)
	p, err := s.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, watch.PermissionDefault, p)
}

func TestStoredDrivesWatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newStored(t, Always(true))
	var alerts []watch.Alert
	w := &watch.Watch{
		Source:      s.Store,
		Permissions: s,
		Notifier: Func(func(_ context.Context, a watch.Alert) error {
			alerts = append(alerts, a)
			return nil
		}),
	}

	state, err := w.Enable(ctx)
	require.NoError(t, err)
	assert.Equal(t, watch.Watching, state)

	require.NoError(t, s.Revoke(ctx))
	res, err := w.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, watch.Idle, w.State())
	assert.Empty(t, alerts)
}

func TestConsolePrompt(t *testing.T) {
	tests := map[string]bool{
		"y\n":    true,
		"Y\n":    true,
		"n\n":    false,
		"\n":     false,
		"sure\n": false,
		"":       false,
	}
	for in, want := range tests {
		var out bytes.Buffer
		p := &ConsolePrompt{In: strings.NewReader(in), Out: &out}
		got, err := p.Confirm(context.Background(), "Allow?")
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Contains(t, out.String(), "Allow?", "input %q", in)
	}

	_, err := (&ConsolePrompt{}).Confirm(context.Background(), "Allow?")
	assert.Error(t, err)
}
