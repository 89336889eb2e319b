package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	IDs []string
}

// IDArgs takes one or more ids from the positional arguments.
func (o *IDOptions) IDArgs(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("requires at least one id, see --show-id on the list commands")
	}
	o.IDs = args
	return nil
}

// IDArg takes exactly one id.
func (o *IDOptions) IDArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one id, see --show-id on the list commands")
	}
	o.IDs = args
	return nil
}

func (o *IDOptions) ID() string {
	if len(o.IDs) == 0 {
		return ""
	}
	return o.IDs[0]
}
