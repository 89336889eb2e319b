package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
)

func TestDateFlag(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

	tests := map[string]struct {
		args    []string
		changed bool
		want    *entity.Date
		wantErr bool
	}{
		"unset": {},
		"tomorrow": {
			args:    []string{"--due", "tomorrow"},
			changed: true,
			want:    ptr(entity.MustDate("2024-03-16")),
		},
		"short form": {
			args:    []string{"--due=3/18"},
			changed: true,
			want:    ptr(entity.MustDate("2024-03-18")),
		},
		"garbage": {
			args:    []string{"--due", "someday"},
			changed: true,
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &TaskOptions{}
			cmd := &cobra.Command{Use: "add"}
			AddTaskArgs(cmd, o)
			if err := cmd.ParseFlags(tc.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			if got := o.Due.Changed(cmd.Flags()); got != tc.changed {
				t.Fatalf("Changed() = %v, want %v", got, tc.changed)
			}
			got, err := o.Due.Pointer(cmd.Flags(), now)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Pointer() error = %v, wantErr %v", err, tc.wantErr)
			}
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("Pointer() = %v, want nil", got)
			case tc.want != nil && (got == nil || !got.Equal(*tc.want)):
				t.Fatalf("Pointer() = %v, want %v", got, tc.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestTaskPointersOnlyWhenChanged(t *testing.T) {
	o := &TaskOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddTaskArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"-p", "high"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if c := o.CategoryPointer(cmd.Flags()); c != nil {
		t.Fatalf("CategoryPointer() = %v, want nil", *c)
	}
	p := o.PriorityPointer(cmd.Flags())
	if p == nil || *p != entity.PriorityHigh {
		t.Fatalf("PriorityPointer() = %v, want high", p)
	}
}

func TestTitleFrom(t *testing.T) {
	o := &TaskOptions{}
	o.TitleFrom([]string{"read", "chapter", "4"})
	if o.Title != "read chapter 4" {
		t.Fatalf("Title = %q", o.Title)
	}

	o = &TaskOptions{Title: "flag wins"}
	o.TitleFrom([]string{"ignored"})
	if o.Title != "flag wins" {
		t.Fatalf("Title = %q", o.Title)
	}
}

func TestTaskFilterArg(t *testing.T) {
	o := &TaskFilterOptions{}
	if err := o.TaskFilterArg(nil, nil); err != nil {
		t.Fatalf("no args: %v", err)
	}
	if o.Filter != derive.TasksAll {
		t.Fatalf("Filter = %q, want all", o.Filter)
	}
	if err := o.TaskFilterArg(nil, []string{"Overdue"}); err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if o.Filter != derive.TasksOverdue {
		t.Fatalf("Filter = %q, want overdue", o.Filter)
	}
	if err := o.TaskFilterArg(nil, []string{"nope"}); err == nil {
		t.Fatal("expected an error for an unknown filter")
	}
	if err := o.TaskFilterArg(nil, []string{"today", "overdue"}); err == nil {
		t.Fatal("expected an error for two filters")
	}
}

func TestWindow(t *testing.T) {
	o := &TaskFilterOptions{}
	if d, err := o.Window(); err != nil || d != 0 {
		t.Fatalf("Window() = %v, %v; want 0, nil", d, err)
	}
	o.Within = "1w2d"
	d, err := o.Window()
	if err != nil {
		t.Fatalf("Window(): %v", err)
	}
	if want := 9 * 24 * time.Hour; d != want {
		t.Fatalf("Window() = %v, want %v", d, want)
	}

	w := &WindowOptions{Window: "soon"}
	if _, err := w.Duration(); err == nil {
		t.Fatal("expected an error for a bad window")
	}
}

func TestIDArgs(t *testing.T) {
	o := &IDOptions{}
	if err := o.IDArgs(nil, nil); err == nil {
		t.Fatal("expected an error without ids")
	}
	if err := o.IDArg(nil, []string{"a", "b"}); err == nil {
		t.Fatal("expected an error for two ids")
	}
	if err := o.IDArgs(nil, []string{"a", "b"}); err != nil {
		t.Fatalf("IDArgs: %v", err)
	}
	if o.ID() != "a" {
		t.Fatalf("ID() = %q, want a", o.ID())
	}
}

func TestInteractiveArgs(t *testing.T) {
	o := &InteractiveOptions{}
	cmd := &cobra.Command{Use: "add"}
	InteractiveArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"-i"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !o.Interactive {
		t.Fatal("-i did not set Interactive")
	}
}
