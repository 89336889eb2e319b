// Package remove deletes tasks, events or notes by id.
package remove

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/printers"
)

type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
	KindNote  Kind = "note"
)

type Remove struct {
	Service *app.Service
	Kind    Kind
	IDs     []string
	Output  printers.Options
}

// Do deletes each id. Unknown ids are not an error.
func (n *Remove) Do(ctx context.Context) error {
	var del func(context.Context, string) error
	switch n.Kind {
	case KindTask:
		del = n.Service.DeleteTask
	case KindEvent:
		del = n.Service.DeleteEvent
	case KindNote:
		del = n.Service.DeleteNote
	default:
		return fmt.Errorf("remove: unknown kind %q", n.Kind)
	}

	for _, id := range n.IDs {
		if err := del(ctx, id); err != nil {
			return err
		}
	}
	if n.Output.JSON {
		return n.Output.Encode(map[string]interface{}{"removed": n.IDs, "kind": n.Kind})
	}
	f := color.New(color.Faint)
	for _, id := range n.IDs {
		_, _ = f.Fprintf(n.Output.Writer(), "removed %s %s\n", n.Kind, id)
	}
	return nil
}
