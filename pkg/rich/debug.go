package rich

import (
	"strconv"
	"strings"
)

// GoString returns a compact dump of the tree, used by the %#v verb.
//
// A node prints its quoted content, its style when not the identity, and its
// children as a bracketed list. A single part prints bare; several parts are
// joined with ", " inside parentheses:
//
//	"plain"
//	("one", ["two", "three"])
//	("red", #ff0000 + !Bold)
func (t Text) GoString() string {
	var b strings.Builder
	writeDebug(&b, t)
	return b.String()
}

func writeDebug(b *strings.Builder, t Text) {
	parts := 0
	if t.Content != "" {
		parts++
	}
	if !t.Style.IsDefault() {
		parts++
	}
	if len(t.Children) > 0 {
		parts++
	}

	wrap := parts != 1
	if wrap {
		b.WriteByte('(')
	}

	sep := false
	next := func() {
		if sep {
			b.WriteString(", ")
		}
		sep = true
	}

	if t.Content != "" {
		next()
		b.WriteString(strconv.Quote(t.Content))
	}
	if !t.Style.IsDefault() {
		next()
		b.WriteString(t.Style.String())
	}
	if len(t.Children) > 0 {
		next()
		b.WriteByte('[')
		for i, child := range t.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDebug(b, child)
		}
		b.WriteByte(']')
	}

	if wrap {
		b.WriteByte(')')
	}
}
