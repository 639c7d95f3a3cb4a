package rich

import "strings"

// Style is the decoration applied to the content of a single Text node.
//
// Every field is optional so styles can be layered through merging. The zero
// value sets nothing and is therefore the identity for Merge. Style is
// comparable, so it can be used with == and as a map key.
type Style struct {
	// Color is the foreground text color
	Color OptionalColor
	// Bold decoration
	Bold State
	// Italic decoration
	Italic State
	// Underline decoration
	Underline State
	// Strikethrough decoration
	Strikethrough State
}

// NewStyle returns the identity style
func NewStyle() Style {
	return Style{}
}

// IsDefault reports whether s is the identity style, i.e. merging it changes nothing
func (s Style) IsDefault() bool {
	return s == Style{}
}

// MergeFrom merges overlay into s field by field. Fields set in overlay win;
// fields overlay leaves unset keep the value from s.
func (s *Style) MergeFrom(overlay Style) {
	s.Color = overlay.Color.Or(s.Color)
	s.Bold = overlay.Bold.Or(s.Bold)
	s.Italic = overlay.Italic.Or(s.Italic)
	s.Underline = overlay.Underline.Or(s.Underline)
	s.Strikethrough = overlay.Strikethrough.Or(s.Strikethrough)
}

// Merge returns the result of merging overlay on top of s, see MergeFrom
func (s Style) Merge(overlay Style) Style {
	s.MergeFrom(overlay)
	return s
}

// WithColor returns a copy of s with the color replaced
func (s Style) WithColor(c OptionalColor) Style {
	s.Color = c
	return s
}

// WithForeground returns a copy of s with the color set to c
func (s Style) WithForeground(c Color) Style {
	return s.WithColor(Some(c))
}

// WithBold returns a copy of s with the bold state replaced
func (s Style) WithBold(state State) Style {
	s.Bold = state
	return s
}

// WithItalic returns a copy of s with the italic state replaced
func (s Style) WithItalic(state State) Style {
	s.Italic = state
	return s
}

// WithUnderline returns a copy of s with the underline state replaced
func (s Style) WithUnderline(state State) Style {
	s.Underline = state
	return s
}

// WithStrikethrough returns a copy of s with the strikethrough state replaced
func (s Style) WithStrikethrough(state State) Style {
	s.Strikethrough = state
	return s
}

// String describes the fields that are set, joined by " + ".
// Explicitly disabled decorations are prefixed with "!".
func (s Style) String() string {
	var parts []string
	if c, ok := s.Color.Get(); ok {
		parts = append(parts, c.String())
	}
	for _, d := range []struct {
		state State
		name  string
	}{
		{s.Bold, "Bold"},
		{s.Italic, "Italic"},
		{s.Underline, "Underline"},
		{s.Strikethrough, "Strikethrough"},
	} {
		switch d.state {
		case On:
			parts = append(parts, d.name)
		case Off:
			parts = append(parts, "!"+d.name)
		}
	}
	return strings.Join(parts, " + ")
}
