package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// Huh asks questions with an interactive charmbracelet/huh form
type Huh struct {
	in  io.Reader
	out io.Writer
}

// NewHuh creates an interactive prompter
func NewHuh(in io.Reader, out io.Writer) *Huh {
	return &Huh{in: in, out: out}
}

// Confirm implements Prompter
func (h *Huh) Confirm(ctx context.Context, question string) Confirmation {
	if ctx == nil {
		ctx = context.Background()
	}
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).
		WithInput(h.in).
		WithOutput(h.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			return Aborted
		}
		return Unparseable
	}

	if ok {
		return Confirmed
	}
	return Declined
}
