package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/studyhub/pkg/logging"
)

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p := NewDiskv(base)

	// Create the key directory up front so the watcher sees the file write.
	if err := p.Write(context.Background(), KeyTasks, []byte("[]")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write(context.Background(), KeyTasks, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == KeyTasks {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestDiskvWatchClosesOnCancel(t *testing.T) {
	p := NewDiskv(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }

	throttle.Enqueue(Event{Key: KeyNotes}, send)
	throttle.Enqueue(Event{Key: KeyNotes}, send)
	throttle.Enqueue(Event{Key: KeyNotes}, send)

	select {
	case ev := <-got:
		if ev.Key != KeyNotes {
			t.Fatalf("unexpected key %q", ev.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}

	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestKeyForPath(t *testing.T) {
	p := NewDiskv("/data")
	tests := map[string]string{
		"/data/studyhub/tasks": KeyTasks,
		"/data/studyhub/theme": KeyTheme,
		"/data":                "",
		"/elsewhere/x":         "",
	}
	for path, want := range tests {
		if got := p.keyForPath(path); got != want {
			t.Errorf("keyForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestWatchFailedLogsAndReportsEveryKey(t *testing.T) {
	var buf bytes.Buffer
	p := NewDiskv(t.TempDir())
	p.Logger = logging.New(logging.Options{Writer: &buf, Level: "warn"})

	throttle := newEventThrottle(10 * time.Millisecond)
	defer throttle.Stop()
	got := make(chan Event, 8)

	p.watchFailed(errors.New("inotify queue overflow"), throttle, func(ev Event) { got <- ev })

	if !strings.Contains(buf.String(), "inotify queue overflow") {
		t.Fatalf("watcher error not logged, log was %q", buf.String())
	}
	seen := map[string]bool{}
	for len(seen) < len(Keys()) {
		select {
		case ev := <-got:
			seen[ev.Key] = true
		case <-time.After(time.Second):
			t.Fatalf("got %d of %d keys", len(seen), len(Keys()))
		}
	}
}
