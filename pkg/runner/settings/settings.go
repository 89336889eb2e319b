// Package settings shows and changes the stored theme and notification
// consent.
package settings

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/notify"
	"tableflip.dev/studyhub/pkg/printers"
	"tableflip.dev/studyhub/pkg/watch"
)

// Theme prints the stored theme, or stores Set when it is not empty.
type Theme struct {
	Service *app.Service
	Set     string
	Output  printers.Options
}

func (n *Theme) Do(ctx context.Context) error {
	var (
		theme string
		err   error
	)
	if n.Set == "" {
		theme, err = n.Service.Theme(ctx)
	} else {
		theme, err = n.Service.SetTheme(ctx, n.Set)
	}
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(map[string]string{"theme": theme})
	}
	if theme == "" {
		theme = color.New(color.Faint).Sprint("unset (follows the terminal background)")
	}
	_, err = fmt.Fprintln(n.Output.Writer(), "theme:", theme)
	return err
}

// Action is a notification consent command.
type Action string

const (
	ActionStatus  Action = "status"
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
)

// Notifications reports or changes the notification consent. Enable asks
// through the permission prompter when consent was not granted yet.
type Notifications struct {
	Permissions *notify.Stored
	Action      Action
	Output      printers.Options
}

func (n *Notifications) Do(ctx context.Context) error {
	var (
		p   watch.Permission
		err error
	)
	switch n.Action {
	case ActionStatus, "":
		p = n.Permissions.Permission(ctx)
	case ActionEnable:
		p, err = n.Permissions.Request(ctx)
	case ActionDisable:
		if err = n.Permissions.Revoke(ctx); err == nil {
			p = watch.PermissionDenied
		}
	default:
		return fmt.Errorf("settings: unknown notifications action %q", n.Action)
	}
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return n.Output.Encode(map[string]string{"permission": string(p)})
	}

	c := color.New(color.Faint)
	switch p {
	case watch.PermissionGranted:
		c = color.New(color.FgGreen, color.Bold)
	case watch.PermissionDenied:
		c = color.New(color.FgRed)
	}
	_, err = fmt.Fprintf(n.Output.Writer(), "notifications: %s\n", c.Sprint(p))
	return err
}
