package notify

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/studyhub/pkg/prompt"
	"tableflip.dev/studyhub/pkg/store"
	"tableflip.dev/studyhub/pkg/watch"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// ConsentQuestion is what Stored asks before enabling alerts.
const ConsentQuestion = "Allow studyhub to alert you about upcoming deadlines?"

// Stored keeps notification consent in the store flag: "true" is granted,
// "false" denied and no value the default state.
type Stored struct {
	Store    *store.Store
	Prompter Prompter
}

func (s *Stored) Permission(ctx context.Context) watch.Permission {
	switch s.Store.NotificationsFlag(ctx) {
	case store.FlagTrue:
		return watch.PermissionGranted
	case store.FlagFalse:
		return watch.PermissionDenied
	default:
		return watch.PermissionDefault
	}
}

// Request prompts unless consent was already granted, and stores the answer.
// Without a Prompter the current state is returned unchanged.
func (s *Stored) Request(ctx context.Context) (watch.Permission, error) {
	current := s.Permission(ctx)
	if current == watch.PermissionGranted || s.Prompter == nil {
		return current, nil
	}
	ok, err := s.Prompter.Confirm(ctx, ConsentQuestion)
	if err != nil {
		return current, fmt.Errorf("notify: prompt: %w", err)
	}
	if err := s.Store.SetNotificationsFlag(ctx, ok); err != nil {
		return current, err
	}
	if ok {
		return watch.PermissionGranted, nil
	}
	return watch.PermissionDenied, nil
}

// Revoke withdraws consent. A running watch notices on its next tick.
func (s *Stored) Revoke(ctx context.Context) error {
	return s.Store.SetNotificationsFlag(ctx, false)
}

// Grant records consent without prompting.
func (s *Stored) Grant(ctx context.Context) error {
	return s.Store.SetNotificationsFlag(ctx, true)
}

// ConsolePrompt asks on Out and reads the answer from In. Anything other than
// y is a refusal.
type ConsolePrompt struct {
	In  io.Reader
	Out io.Writer
}

func (p *ConsolePrompt) Confirm(_ context.Context, question string) (bool, error) {
	if p.In == nil || p.Out == nil {
		return false, errors.New("notify: prompt needs input and output")
	}
	return (&prompt.Console{In: p.In, Out: p.Out}).Confirm(question)
}

// Always is a Prompter that answers every question the same way.
type Always bool

func (a Always) Confirm(context.Context, string) (bool, error) { return bool(a), nil }
