// Package prompt asks the user yes/no questions.
//
// A question has four possible outcomes: the user confirmed, declined,
// aborted the prompt (Ctrl-C, closed input) or gave an answer that could
// not be understood. Only Confirmed lets a caller proceed; the other
// outcomes are kept distinct so they can be logged.
package prompt

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Confirmation is the outcome of a yes/no question
type Confirmation int

const (
	Declined Confirmation = iota
	Confirmed
	Aborted
	Unparseable
)

func (c Confirmation) String() string {
	switch c {
	case Confirmed:
		return "confirmed"
	case Declined:
		return "declined"
	case Aborted:
		return "aborted"
	case Unparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

// Proceed reports whether the caller may go ahead
func (c Confirmation) Proceed() bool {
	return c == Confirmed
}

// Prompter asks yes/no questions
type Prompter interface {
	Confirm(ctx context.Context, question string) Confirmation
}

// Auto returns an interactive Huh prompter when both in and out are
// terminals, and a line-based Console prompter otherwise.
func Auto(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewHuh(in, out)
	}
	return NewConsole(in, out)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
