package rich

// Builder accumulates children for a node with amortized constant-time
// appends. It is meant for code producing many children in a loop, such as
// decoders; a Builder must not be copied after first use.
type Builder struct {
	node Text
}

// NewBuilder starts a node with the given content and style
func NewBuilder(content string, style Style) *Builder {
	return &Builder{node: Text{Content: content, Style: style}}
}

// Add appends children to the node being built
func (b *Builder) Add(children ...Text) *Builder {
	b.node.Children = append(b.node.Children, children...)
	return b
}

// AddString appends a leaf holding content
func (b *Builder) AddString(content string) *Builder {
	return b.Add(New(content))
}

// Len returns the number of children added so far
func (b *Builder) Len() int {
	return len(b.node.Children)
}

// Build returns the finished node. The returned value does not share spare
// capacity with the builder, so later Adds do not affect it.
func (b *Builder) Build() Text {
	t := b.node
	t.Children = t.Children[:len(t.Children):len(t.Children)]
	return t
}
