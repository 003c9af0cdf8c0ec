package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs action, showing a spinner titled title while it works
// when the session is interactive. The action's error is returned as is.
func WithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Type(spinner.Dots).
		Context(ctx).
		Action(func() { actionErr = action(ctx) }).
		Run()
	if actionErr != nil {
		return actionErr
	}
	return err
}
