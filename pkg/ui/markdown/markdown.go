// Package markdown renders rich text as CommonMark, optionally previewed
// through glamour.
//
// Bold, italic and strikethrough map to **, * and ~~. Color and underline
// have no CommonMark form and are dropped.
package markdown

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/styles"
)

// escaper backslash-escapes the punctuation that can start inline markup
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// Escape backslash-escapes Markdown punctuation in s
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render converts t to Markdown source
func Render(t rich.Text) string {
	var b strings.Builder
	for _, span := range rich.Compact(rich.Spans(t)) {
		opening, closing := markers(span.Style)
		for i, line := range strings.Split(span.Content, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeLine(&b, line, opening, closing)
		}
	}
	return b.String()
}

func markers(s rich.Style) (opening, closing string) {
	if s.Strikethrough.Enabled() {
		opening += "~~"
	}
	if s.Bold.Enabled() {
		opening += "**"
	}
	if s.Italic.Enabled() {
		opening += "*"
	}
	for i := len(opening) - 1; i >= 0; i-- {
		closing += string(opening[i])
	}
	return opening, closing
}

// writeLine keeps surrounding whitespace outside the markers, where
// CommonMark requires it for emphasis to open and close
func writeLine(b *strings.Builder, line, opening, closing string) {
	core := strings.TrimFunc(line, unicode.IsSpace)
	if core == "" || opening == "" {
		b.WriteString(Escape(line))
		return
	}
	start := strings.Index(line, core)
	b.WriteString(line[:start])
	b.WriteString(opening)
	b.WriteString(Escape(core))
	b.WriteString(closing)
	b.WriteString(line[start+len(core):])
}

// Options configures the glamour preview
type Options struct {
	// Style is a glamour standard style name; "" or "auto" follows the terminal
	Style string
	// Wrap is the word wrap column; 0 disables wrapping
	Wrap int
}

// Preview renders t as Markdown and then through a glamour terminal renderer
func Preview(t rich.Text, opts Options) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(opts.Wrap)}
	switch strings.ToLower(opts.Style) {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStandardStyle(opts.Style))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "cannot create markdown preview with style %q", opts.Style).
			WithDetail("style", opts.Style)
	}

	out, err := tr.Render(Render(t))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "markdown preview failed")
	}
	return out, nil
}

// Renderer writes Markdown source, or its glamour preview
type Renderer struct {
	output  io.Writer
	preview bool
	opts    Options
}

// New creates a renderer writing Markdown source
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// NewPreview creates a renderer writing glamour previews. The options are
// checked here so a bad style name fails before anything is written.
func NewPreview(w io.Writer, opts Options) (*Renderer, error) {
	if _, err := Preview(rich.Text{}, opts); err != nil {
		return nil, err
	}
	return &Renderer{output: w, preview: true, opts: opts}, nil
}

// RenderText writes t followed by a newline
func (r *Renderer) RenderText(t rich.Text) error {
	if !r.preview {
		_, err := fmt.Fprintln(r.output, Render(t))
		return err
	}
	out, err := Preview(t, r.opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.output, out)
	return err
}

// RenderError renders an error as a bold Markdown line
func (r *Renderer) RenderError(err error) error {
	return r.RenderText(rich.Group(styles.Tag("Strong", "Error:"), rich.New(" "+err.Error())))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderText(rich.New(msg))
}
