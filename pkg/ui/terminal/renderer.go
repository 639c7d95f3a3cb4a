// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/styles"
)

// Styler turns resolved rich styles into lipgloss styles bound to one renderer
type Styler struct {
	renderer *lipgloss.Renderer
}

// NewStyler creates a styler for r. A nil r uses the lipgloss default renderer.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{renderer: r}
}

// Style maps a resolved rich.Style onto a lipgloss style. Only fields that
// are On produce attributes; Inherit and Off both leave the terminal default.
func (s *Styler) Style(style rich.Style) lipgloss.Style {
	ls := s.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if c, ok := style.Color.Get(); ok {
		ls = ls.Foreground(lipgloss.Color(c.Hex()))
	}
	if style.Bold.Enabled() {
		ls = ls.Bold(true)
	}
	if style.Italic.Enabled() {
		ls = ls.Italic(true)
	}
	if style.Underline.Enabled() {
		ls = ls.Underline(true)
	}
	if style.Strikethrough.Enabled() {
		ls = ls.Strikethrough(true)
	}
	return ls
}

// Render flattens t and styles every content segment with its resolved style
func (s *Styler) Render(t rich.Text) string {
	var b strings.Builder
	t.Flatten(rich.NewStackFlattener(func(content string, style rich.Style) {
		s.write(&b, content, style)
	}))
	return b.String()
}

// write styles content line by line so lipgloss never pads lines to a common width
func (s *Styler) write(b *strings.Builder, content string, style rich.Style) {
	if content == "" {
		return
	}
	ls := s.Style(style)
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(ls.Render(line))
		}
	}
}

// Renderer provides rich terminal output through lipgloss
type Renderer struct {
	output io.Writer
	styler *Styler
}

// New creates a terminal renderer that detects the color profile of w
func New(w io.Writer) (*Renderer, error) {
	r := lipgloss.NewRenderer(w)
	styles.SetDarkBackground(r.HasDarkBackground())
	return &Renderer{
		output: w,
		styler: NewStyler(r),
	}, nil
}

// NewWithProfile creates a terminal renderer with a fixed color profile
func NewWithProfile(w io.Writer, profile termenv.Profile) (*Renderer, error) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Renderer{
		output: w,
		styler: NewStyler(r),
	}, nil
}

// Styler returns the styler used by the renderer
func (r *Renderer) Styler() *Styler {
	return r.styler
}

// RenderText writes the styled text followed by a newline
func (r *Renderer) RenderText(t rich.Text) error {
	_, err := fmt.Fprintln(r.output, r.styler.Render(t))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.RenderText(rich.Group(styles.Tag("Error", "Error: "), rich.New(err.Error())))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderText(styles.Tag("Info", msg))
}
