// Package complete toggles a task between pending and completed.
package complete

import (
	"context"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/printers"
)

type Complete struct {
	Service *app.Service
	IDs     []string
	Output  printers.Options
}

// Do toggles each task in order, stopping at the first failure.
func (n *Complete) Do(ctx context.Context) error {
	pp := n.Output.Printer(n.Service.Clock)
	for _, id := range n.IDs {
		t, err := n.Service.ToggleTask(ctx, id)
		if err != nil {
			return err
		}
		if n.Output.JSON {
			if err := n.Output.Encode(t); err != nil {
				return err
			}
			continue
		}
		pp.Tasks(t)
	}
	return nil
}
