// Package xml exports rich text as nested <text> elements.
//
// Each node becomes one element carrying its own style, not the resolved
// one, so the export preserves the tree exactly:
//
//	<text bold="true">a<text color="#ff0000" italic="false">b</text></text>
package xml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
)

// ElementName is the tag used for every node
const ElementName = "text"

// Encoder builds an element tree from flattening events
type Encoder struct {
	doc   *etree.Document
	stack []*etree.Element
}

// NewEncoder returns an encoder with an empty document
func NewEncoder() *Encoder {
	return &Encoder{doc: etree.NewDocument()}
}

// PushStyle opens an element for the next node
func (e *Encoder) PushStyle(style rich.Style) {
	var el *etree.Element
	if n := len(e.stack); n > 0 {
		el = e.stack[n-1].CreateElement(ElementName)
	} else {
		el = e.doc.CreateElement(ElementName)
	}
	setStyle(el, style)
	e.stack = append(e.stack, el)
}

// Content appends character data to the open element
func (e *Encoder) Content(content string) {
	if content == "" || len(e.stack) == 0 {
		return
	}
	e.stack[len(e.stack)-1].CreateText(content)
}

// PopStyle closes the open element
func (e *Encoder) PopStyle(rich.Style) {
	if n := len(e.stack); n > 0 {
		e.stack = e.stack[:n-1]
	}
}

// Document returns the document built so far
func (e *Encoder) Document() *etree.Document {
	return e.doc
}

func setStyle(el *etree.Element, style rich.Style) {
	if c, ok := style.Color.Get(); ok {
		el.CreateAttr("color", c.String())
	}
	for _, attr := range []struct {
		name  string
		state rich.State
	}{
		{"bold", style.Bold},
		{"italic", style.Italic},
		{"underline", style.Underline},
		{"strikethrough", style.Strikethrough},
	} {
		if v, ok := attr.state.Bool(); ok {
			el.CreateAttr(attr.name, fmt.Sprint(v))
		}
	}
}

// Marshal returns t as an XML fragment without a declaration
func Marshal(t rich.Text) (string, error) {
	enc := NewEncoder()
	t.Flatten(enc)
	out, err := enc.Document().WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to write xml")
	}
	return out, nil
}

// Renderer writes one XML fragment per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderText writes t as a <text> element followed by a newline
func (r *Renderer) RenderText(t rich.Text) error {
	out, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError writes <error code="...">message</error>
func (r *Renderer) RenderError(err error) error {
	doc := etree.NewDocument()
	el := doc.CreateElement("error")
	el.CreateAttr("code", string(errors.GetErrorCode(err)))
	el.SetText(err.Error())
	return r.write(doc)
}

// RenderMessage writes <message>msg</message>
func (r *Renderer) RenderMessage(msg string) error {
	doc := etree.NewDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}

func (r *Renderer) write(doc *etree.Document) error {
	if _, err := doc.WriteTo(r.output); err != nil {
		return err
	}
	_, err := io.WriteString(r.output, "\n")
	return err
}
