// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/richtext/pkg/rich"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	debug  bool
}

// New creates a renderer that writes the concatenated content of each text
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// NewDebug creates a renderer that writes the structural dump of each text
func NewDebug(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output, debug: true}, nil
}

// RenderText writes t as plain text, or as its %#v dump in debug mode
func (r *Renderer) RenderText(t rich.Text) error {
	var err error
	if r.debug {
		_, err = fmt.Fprintf(r.output, "%#v\n", t)
	} else {
		_, err = fmt.Fprintln(r.output, t.String())
	}
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
