package kernel

import (
	"fmt"
	"io"
	"strings"
)

// Renderer is the output surface notifications render into. A notebook host
// would inject HTML and script into the cell output area; the console
// renderer degrades both to plain text.
type Renderer interface {
	// DisplayHTML renders an HTML snippet into the current output surface.
	DisplayHTML(html string) error

	// DisplayScript executes a script snippet on the output surface.
	DisplayScript(script string) error
}

// ConsoleRenderer renders notification artifacts onto a plain terminal.
// HTML snippets are reduced to their text content; scripts cannot run, so
// they degrade to a single warning line.
type ConsoleRenderer struct {
	Out io.Writer
}

// NewConsoleRenderer creates a renderer writing to w.
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{Out: w}
}

// DisplayHTML prints the text content of the snippet, tags stripped.
func (r *ConsoleRenderer) DisplayHTML(html string) error {
	text := strings.TrimSpace(stripTags(html))
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.Out, text)
	return err
}

// DisplayScript warns that script output is unsupported on a console.
func (r *ConsoleRenderer) DisplayScript(_ string) error {
	_, err := fmt.Fprintln(r.Out, "[cellwatch] desktop notification unavailable on console output")
	return err
}

// stripTags removes HTML tags and collapses the remaining whitespace.
// Good enough for the small banner snippets this package renders; not a
// general HTML-to-text converter.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
