package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Console asks questions on a plain line-oriented stream
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompter reading answers from in
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter. An empty answer declines.
func (c *Console) Confirm(ctx context.Context, question string) Confirmation {
	if ctx != nil && ctx.Err() != nil {
		return Aborted
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		// Closed input counts as the user walking away
		fmt.Fprintln(c.out)
		return Aborted
	}

	return parseAnswer(line)
}

func parseAnswer(answer string) Confirmation {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return Confirmed
	case "", "n", "no":
		return Declined
	default:
		return Unparseable
	}
}
