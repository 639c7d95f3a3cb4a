package rich

// ConsumerFunc receives each piece of content with its fully resolved style
type ConsumerFunc func(content string, style Style)

// StackFlattener is a Flattener that keeps a stack of resolved styles and
// hands every piece of content to a consumer together with the style on top.
//
// Each pushed entry is the merge of the entry below it (or the identity style)
// with the style being entered, so the top of the stack is always the merge of
// the whole root-to-node chain, with the current node taking priority.
//
// A StackFlattener belongs to a single traversal.
type StackFlattener struct {
	stack    []Style
	consumer ConsumerFunc
}

// NewStackFlattener creates a flattener with an empty style stack
func NewStackFlattener(consumer ConsumerFunc) *StackFlattener {
	return &StackFlattener{consumer: consumer}
}

// PushStyle pushes the merge of the current top and style
func (f *StackFlattener) PushStyle(style Style) {
	f.stack = append(f.stack, f.Top().Merge(style))
}

// Content calls the consumer with content and the current resolved style
func (f *StackFlattener) Content(content string) {
	f.consumer(content, f.Top())
}

// PopStyle drops the top of the stack. The argument is not needed since the
// stack already holds the resolved style.
func (f *StackFlattener) PopStyle(Style) {
	if len(f.stack) > 0 {
		f.stack = f.stack[:len(f.stack)-1]
	}
}

// Top returns the resolved style on top of the stack, or the identity style
// when the stack is empty
func (f *StackFlattener) Top() Style {
	if len(f.stack) == 0 {
		return Style{}
	}
	return f.stack[len(f.stack)-1]
}

// Depth returns the number of styles on the stack
func (f *StackFlattener) Depth() int {
	return len(f.stack)
}

// Span is a piece of content with its resolved style
type Span struct {
	Content string
	Style   Style
}

// Spans flattens t and returns every (content, resolved style) pair in
// traversal order, including empty content
func Spans(t Text) []Span {
	var spans []Span
	Flatten(t, NewStackFlattener(func(content string, style Style) {
		spans = append(spans, Span{Content: content, Style: style})
	}))
	return spans
}

// Compact drops spans with empty content and joins neighbouring spans that
// resolve to the same style
func Compact(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Content == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style {
			out[n-1].Content += s.Content
			continue
		}
		out = append(out, s)
	}
	return out
}
