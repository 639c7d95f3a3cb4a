package rich

// Flattener receives the events of a flattening traversal.
//
// Calls are strictly nested: every PushStyle is matched by exactly one
// PopStyle, and a node's content and its whole subtree are reported between
// the two. Content is called for every node, including nodes with empty
// content.
type Flattener interface {
	// PushStyle is called when a node is entered, with the node's own style
	PushStyle(style Style)
	// Content is called with the node's content right after PushStyle
	Content(content string)
	// PopStyle is called when a node is exited, with the same style it was entered with
	PopStyle(style Style)
}

// Flatten walks the tree rooted at root depth-first, reporting each node to f.
//
// For every node f receives PushStyle(node.Style), Content(node.Content), the
// events of each child in order, then PopStyle(node.Style). The walk keeps its
// own stack, so tree depth is bounded by memory rather than goroutine stack.
func Flatten(root Text, f Flattener) {
	type frame struct {
		node *Text
		next int
	}

	f.PushStyle(root.Style)
	f.Content(root.Content)
	stack := []frame{{node: &root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Children) {
			child := &top.node.Children[top.next]
			top.next++
			f.PushStyle(child.Style)
			f.Content(child.Content)
			stack = append(stack, frame{node: child})
			continue
		}
		f.PopStyle(top.node.Style)
		stack = stack[:len(stack)-1]
	}
}

// Flatten walks t with f, see the package level Flatten
func (t Text) Flatten(f Flattener) {
	Flatten(t, f)
}
