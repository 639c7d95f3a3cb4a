package rich

import (
	"slices"
	"strings"
)

// Text is a node in a rich text tree: some content, the style applied at this
// node, and an ordered list of child nodes rendered after the content.
//
// Children are held by value, so a node exclusively owns its subtree and a
// tree can never contain itself. Styles are not propagated at construction
// time; a child's effective style is only resolved while flattening.
type Text struct {
	// Content held by this node, possibly empty for pure containers
	Content string
	// Style applied to this node's content and inherited by its children
	Style Style
	// Children rendered after Content, in order
	Children []Text
}

// New creates a leaf node with the identity style and no children
func New(content string) Text {
	return Text{Content: content}
}

// Group creates a container node with empty content holding children
func Group(children ...Text) Text {
	return Text{}.Append(children...)
}

// With returns t with child appended to the end of its children. Each call
// copies the child slice, so a chain of n calls costs O(n²); use a Builder
// to produce many children.
func (t Text) With(child Text) Text {
	return t.Append(child)
}

// WithString returns t with a leaf node holding content appended
func (t Text) WithString(content string) Text {
	return t.Append(New(content))
}

// Append returns t with children appended in order.
//
// The receiver's backing array is never written to, so values derived from
// the same node stay independent of each other. The price is a copy of the
// existing children on every call; Builder appends in amortized O(1).
func (t Text) Append(children ...Text) Text {
	if len(children) == 0 {
		return t
	}
	t.Children = append(slices.Clip(t.Children), children...)
	return t
}

// WithStyle returns t with its own style replaced
func (t Text) WithStyle(style Style) Text {
	t.Style = style
	return t
}

// WithColor returns t with its own color replaced
func (t Text) WithColor(c OptionalColor) Text {
	t.Style = t.Style.WithColor(c)
	return t
}

// WithBold returns t with its own bold state replaced
func (t Text) WithBold(state State) Text {
	t.Style = t.Style.WithBold(state)
	return t
}

// WithItalic returns t with its own italic state replaced
func (t Text) WithItalic(state State) Text {
	t.Style = t.Style.WithItalic(state)
	return t
}

// WithUnderline returns t with its own underline state replaced
func (t Text) WithUnderline(state State) Text {
	t.Style = t.Style.WithUnderline(state)
	return t
}

// WithStrikethrough returns t with its own strikethrough state replaced
func (t Text) WithStrikethrough(state State) Text {
	t.Style = t.Style.WithStrikethrough(state)
	return t
}

// Color sets the color
func (t Text) Color(c Color) Text { return t.WithColor(Some(c)) }

// NoColor clears the color so it is inherited again
func (t Text) NoColor() Text { return t.WithColor(OptionalColor{}) }

// Bold enables bold
func (t Text) Bold() Text { return t.WithBold(On) }

// NoBold disables bold
func (t Text) NoBold() Text { return t.WithBold(Off) }

// Italic enables italic
func (t Text) Italic() Text { return t.WithItalic(On) }

// NoItalic disables italic
func (t Text) NoItalic() Text { return t.WithItalic(Off) }

// Underline enables underline
func (t Text) Underline() Text { return t.WithUnderline(On) }

// NoUnderline disables underline
func (t Text) NoUnderline() Text { return t.WithUnderline(Off) }

// Strikethrough enables strikethrough
func (t Text) Strikethrough() Text { return t.WithStrikethrough(On) }

// NoStrikethrough disables strikethrough
func (t Text) NoStrikethrough() Text { return t.WithStrikethrough(Off) }

// Equal reports whether t and other have the same content, style and
// children, recursively
func (t Text) Equal(other Text) bool {
	if t.Content != other.Content || t.Style != other.Style {
		return false
	}
	return slices.EqualFunc(t.Children, other.Children, Text.Equal)
}

// NodeCount returns the number of nodes in the tree rooted at t
func (t Text) NodeCount() int {
	n := 0
	Flatten(t, &counter{n: &n})
	return n
}

// String returns the content of every node in traversal order, without any
// styling and without separators
func (t Text) String() string {
	var p plain
	Flatten(t, &p)
	return p.buf.String()
}

type plain struct {
	buf strings.Builder
}

func (p *plain) PushStyle(Style)        {}
func (p *plain) Content(content string) { p.buf.WriteString(content) }
func (p *plain) PopStyle(Style)         {}

type counter struct {
	n *int
}

func (c *counter) PushStyle(Style) { *c.n++ }
func (c *counter) Content(string)  {}
func (c *counter) PopStyle(Style)  {}
