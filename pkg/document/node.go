package document

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
	"gopkg.in/yaml.v3"
)

// node is the wire shape of a rich.Text
type node struct {
	Content  string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Style    *style `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Children []node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// style is the wire shape of a rich.Style. Nil fields inherit.
type style struct {
	Color         string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Bold          *bool  `json:"bold,omitempty" yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic        *bool  `json:"italic,omitempty" yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underline     *bool  `json:"underline,omitempty" yaml:"underline,omitempty" toml:"underline,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty"`
}

// plain nodes carry content only and can be written as a bare string
func (n node) plain() bool {
	return n.Style == nil && len(n.Children) == 0
}

// nodeFields has the same fields as node without its methods
type nodeFields node

func (n node) MarshalJSON() ([]byte, error) {
	if n.plain() {
		return json.Marshal(n.Content)
	}
	return json.Marshal(nodeFields(n))
}

func (n *node) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = node{Content: s}
		return nil
	}
	var f nodeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = node(f)
	return nil
}

func (n node) MarshalYAML() (interface{}, error) {
	if n.plain() {
		return n.Content, nil
	}
	return nodeFields(n), nil
}

func (n *node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*n = node{Content: s}
		return nil
	}
	var f nodeFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	*n = node(f)
	return nil
}

func toNode(t rich.Text) node {
	n := node{Content: t.Content, Style: toStyle(t.Style)}
	if len(t.Children) > 0 {
		n.Children = make([]node, len(t.Children))
		for i, c := range t.Children {
			n.Children[i] = toNode(c)
		}
	}
	return n
}

func toStyle(s rich.Style) *style {
	if s.IsDefault() {
		return nil
	}
	out := &style{
		Bold:          stateToBool(s.Bold),
		Italic:        stateToBool(s.Italic),
		Underline:     stateToBool(s.Underline),
		Strikethrough: stateToBool(s.Strikethrough),
	}
	if c, ok := s.Color.Get(); ok {
		out.Color = c.String()
	}
	return out
}

func stateToBool(s rich.State) *bool {
	v, ok := s.Bool()
	if !ok {
		return nil
	}
	return &v
}

func boolToState(b *bool) rich.State {
	if b == nil {
		return rich.Inherit
	}
	return rich.StateOf(*b)
}

// path is the position of a node, for error details: "root", "root.children[2]"
func (n node) toText(path string) (rich.Text, error) {
	var style rich.Style
	if n.Style != nil {
		s, err := n.Style.toStyle(path)
		if err != nil {
			return rich.Text{}, err
		}
		style = s
	}

	b := rich.NewBuilder(n.Content, style)
	for i, c := range n.Children {
		child, err := c.toText(childPath(path, i))
		if err != nil {
			return rich.Text{}, err
		}
		b.Add(child)
	}
	return b.Build(), nil
}

func (s *style) toStyle(path string) (rich.Style, error) {
	out := rich.Style{
		Bold:          boolToState(s.Bold),
		Italic:        boolToState(s.Italic),
		Underline:     boolToState(s.Underline),
		Strikethrough: boolToState(s.Strikethrough),
	}
	if s.Color != "" {
		c, err := rich.ParseHex(s.Color)
		if err != nil {
			return rich.Style{}, errors.Wrapf(err, errors.ErrInvalidColor, "invalid color at %s", path).
				WithDetail("path", path).
				WithDetail("color", s.Color)
		}
		out.Color = rich.Some(c)
	}
	return out, nil
}

func childPath(parent string, i int) string {
	return fmt.Sprintf("%s.children[%d]", parent, i)
}
