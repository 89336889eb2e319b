package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/store"
)

// reset clears the package level flag state between runs.
func reset(t *testing.T) {
	t.Helper()
	*oo = options.OutputOptions{}
	*co = options.ConfigOptions{}
	e := &env{co: co}
	rt = e
	t.Cleanup(func() { _ = e.Close() })
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	reset(t)
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})
	return cmd.ExecuteContext(context.Background())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func config(t *testing.T) (file, dir string) {
	t.Helper()
	dir = t.TempDir()
	file = filepath.Join(dir, ".studyhub.yaml")
	data := "backend: diskv\npath: " + filepath.Join(dir, "data") + "\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return file, filepath.Join(dir, "data")
}

func TestCommandTree(t *testing.T) {
	reset(t)
	root := New()
	for _, path := range [][]string{
		{"task", "add"}, {"task", "edit"}, {"task", "done"}, {"task", "rm"}, {"task", "ls"},
		{"event", "add"}, {"event", "edit"}, {"event", "rm"}, {"event", "ls"},
		{"note", "add"}, {"note", "edit"}, {"note", "rm"}, {"note", "ls"},
		{"notify", "status"}, {"notify", "enable"}, {"notify", "disable"},
		{"dashboard"}, {"agenda"}, {"calendar"}, {"watch"}, {"theme"},
		{"serve"}, {"info"}, {"key"}, {"version"}, {"completion"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Errorf("no command for %v: %v", path, err)
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	file, dir := config(t)

	if err := run(t, "--config", file, "--json", "task", "add", "finish", "lab", "report", "--priority", "high"); err != nil {
		t.Fatalf("task add: %v", err)
	}

	st, err := store.Open(context.Background(), store.NewDiskv(dir), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tasks := st.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Title != "finish lab report" || task.Priority != entity.PriorityHigh || task.Category != entity.CategoryStudy {
		t.Fatalf("unexpected task %+v", task)
	}

	if err := run(t, "--config", file, "--json", "task", "done", task.ID); err != nil {
		t.Fatalf("task done: %v", err)
	}
	st.Reload(context.Background())
	if got := st.Tasks()[0].Status; got != entity.StatusCompleted {
		t.Fatalf("status = %q, want completed", got)
	}

	if err := run(t, "--config", file, "--json", "task", "rm", task.ID); err != nil {
		t.Fatalf("task rm: %v", err)
	}
	st.Reload(context.Background())
	if n := len(st.Tasks()); n != 0 {
		t.Fatalf("got %d tasks after rm, want 0", n)
	}
}

func TestNoteAddRequiresContent(t *testing.T) {
	file, _ := config(t)
	if err := run(t, "--config", file, "note", "add"); err == nil {
		t.Fatal("expected an error without content")
	}
}

func TestUnknownBackend(t *testing.T) {
	file, _ := config(t)
	if err := run(t, "--config", file, "--backend", "floppy", "task", "ls"); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

func TestBadMonth(t *testing.T) {
	file, _ := config(t)
	if err := run(t, "--config", file, "calendar", "--month", "March"); err == nil {
		t.Fatal("expected an error for a malformed month")
	}
}

func TestInteractiveSkipsRequiredArgs(t *testing.T) {
	for _, path := range [][]string{{"task", "add"}, {"event", "add"}, {"note", "add"}} {
		reset(t)
		cmd, _, err := New().Find(path)
		if err != nil {
			t.Fatalf("find %v: %v", path, err)
		}
		if err := cmd.Args(cmd, nil); err == nil {
			t.Errorf("%v without -i: expected an error", path)
		}
		if err := cmd.ParseFlags([]string{"-i"}); err != nil {
			t.Fatalf("%v: parse -i: %v", path, err)
		}
		if err := cmd.Args(cmd, nil); err != nil {
			t.Errorf("%v -i: %v", path, err)
		}
	}
	for _, path := range [][]string{{"task", "edit"}, {"event", "edit"}, {"note", "edit"}} {
		reset(t)
		cmd, _, err := New().Find(path)
		if err != nil {
			t.Fatalf("find %v: %v", path, err)
		}
		if cmd.Flags().ShorthandLookup("i") == nil {
			t.Errorf("%v has no -i flag", path)
		}
	}
}
