// Package prompt asks for answers on the terminal with promptui: yes/no
// consent and the fields of the add and edit forms.
package prompt

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned when the user interrupts a prompt or input ends
// before an answer.
var ErrCancelled = errors.New("prompt: cancelled")

// Console prompts on Out and reads keys from In.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// Confirm asks a y/N question. Anything but y is a refusal, as is input
// ending without an answer.
func (c *Console) Confirm(question string) (bool, error) {
	p := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Stdin:     io.NopCloser(c.In),
		Stdout:    NopCloser(c.Out),
	}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrEOF):
		return false, nil
	default:
		return false, cancelled(err)
	}
}

// Text asks for a line of input. An empty answer takes def. The prompt
// repeats until validate accepts the answer.
func (c *Console) Text(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
		Stdin:    io.NopCloser(c.In),
		Stdout:   NopCloser(c.Out),
	}
	v, err := p.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return v, nil
}

// Choose asks for one of items, starting on def.
func (c *Console) Choose(label string, items []string, def string) (string, error) {
	pos := 0
	for i, item := range items {
		if item == def {
			pos = i
		}
	}
	s := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: pos,
		HideHelp:  true,
		Stdin:     io.NopCloser(c.In),
		Stdout:    NopCloser(c.Out),
	}
	_, v, err := s.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return v, nil
}

func cancelled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

// NopCloser returns a WriteCloser whose Close does nothing, so promptui never
// closes the caller's writer.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
