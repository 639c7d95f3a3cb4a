/*
Package rich provides a format-agnostic rich text model.

A Text is a tree of styled fragments. Each node holds some content, the Style
applied at that node, and ordered children. Styles are partial: every field
may be left unset, and a node's effective style is only worked out when the
tree is flattened, by merging the styles of the path from the root down to
the node. Output formats (plain strings, ANSI escapes, screen cells, markup)
are implemented outside this package on top of Flatten.

# Building text

Builders return new values and never modify the receiver:

	msg := rich.New("Red text, ").Color(rich.Red).
		WithString("still red, ").
		With(rich.New("red and italic, ").Italic()).
		With(rich.New("blue and not italic").Color(rich.Blue))

	// Use NoX to switch a decoration off below an ancestor that enabled it
	msg = rich.New("italic, ").Italic().
		With(rich.New("not italic anymore").NoItalic())

# Styles

Decorations are three-state: Inherit (the zero value), On and Off. Merging
is a per-field override where the overlay wins for every field it sets:

	base := rich.NewStyle().WithForeground(rich.Red).WithBold(rich.On)
	over := rich.NewStyle().WithBold(rich.Off)
	base.Merge(over) // red, explicitly not bold

# Flattening

Flatten walks a tree depth-first and reports PushStyle, Content and PopStyle
for every node to a Flattener. StackFlattener resolves the styles for you:

	rich.Flatten(msg, rich.NewStackFlattener(func(content string, style rich.Style) {
		fmt.Printf("%q %s\n", content, style)
	}))

Text implements fmt.Stringer, returning the content with all styling
stripped, and fmt.GoStringer for a compact debug dump.
*/
package rich
