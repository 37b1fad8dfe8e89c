// Package style renders omni's user-facing diagnostics.
//
// Every line omni prints for the user (as opposed to log lines) has the
// shape "omni: <subcommand>: <message>". Colors are chosen per output
// writer: a Renderer writing to a pipe or a file prints plain text.
package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer formats messages for one output writer
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer for w, detecting its color support
func NewRenderer(w io.Writer) *Renderer {
	return newRenderer(w, lipgloss.NewRenderer(w))
}

// NewPlainRenderer creates a renderer for w that never emits colors
func NewPlainRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return newRenderer(w, r)
}

func newRenderer(w io.Writer, r *lipgloss.Renderer) *Renderer {
	return &Renderer{out: w, styles: newStyles(r)}
}

// Styles returns the styles bound to this renderer
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Writer returns the writer the renderer prints to
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Prefix renders "omni: <dir>:", or "omni:" when dir is empty
func (r *Renderer) Prefix(dir string) string {
	if dir == "" {
		return r.styles.Prefix.Render("omni:")
	}
	return r.styles.Prefix.Render("omni:") + " " + r.styles.Direction.Render(dir+":")
}

// Message renders one diagnostic line, without the trailing newline
func (r *Renderer) Message(dir, msg string) string {
	return r.Prefix(dir) + " " + msg
}

// Messagef prints a diagnostic line
func (r *Renderer) Messagef(dir, format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.Message(dir, fmt.Sprintf(format, args...)))
}

// Errorf prints a fatal diagnostic line
func (r *Renderer) Errorf(dir, format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.Message(dir, r.styles.Error.Render(fmt.Sprintf(format, args...))))
}

// Highlight renders s in the highlight color
func (r *Renderer) Highlight(s string) string {
	return r.styles.Highlight.Render(s)
}

// Italic renders s in italics
func (r *Renderer) Italic(s string) string {
	return r.styles.Italic.Render(s)
}

// Block prints "  <title>:" followed by body indented by four spaces,
// every line rendered with st. A leading YAML document marker is dropped.
func (r *Renderer) Block(title, body string, st lipgloss.Style) {
	fmt.Fprintln(r.out, "  "+st.Render(title+":"))
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		if line == "---" || line == "" {
			continue
		}
		fmt.Fprintln(r.out, "    "+st.Render(line))
	}
}
