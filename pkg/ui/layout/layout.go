// Package layout lays rich text out on a cell grid.
//
// A Converter resolves every content segment to a concrete Format, filling
// in a default foreground and a background the rich model does not carry,
// and collects the segments into a Job: the concatenated text plus one
// Section per segment. Draw writes a Job onto a tcell screen.
package layout

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arthur-debert/richtext/pkg/rich"
)

// Format is a fully resolved cell style
type Format struct {
	Foreground    rich.Color
	Background    rich.OptionalColor
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// TcellStyle converts the format to a tcell style. An unset background
// keeps the terminal default.
func (f Format) TcellStyle() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(f.Foreground)).
		Bold(f.Bold).
		Italic(f.Italic).
		Underline(f.Underline).
		StrikeThrough(f.Strikethrough)
	if bg, ok := f.Background.Get(); ok {
		st = st.Background(tcellColor(bg))
	}
	return st
}

func tcellColor(c rich.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Section is the byte range of Job.Text drawn with one format
type Section struct {
	Start, End int
	Format     Format
}

// Job is text ready for layout
type Job struct {
	Text     string
	Sections []Section
}

// Append adds text drawn with format as a new section
func (j *Job) Append(text string, format Format) {
	start := len(j.Text)
	j.Text += text
	j.Sections = append(j.Sections, Section{Start: start, End: len(j.Text), Format: format})
}

// Converter holds the defaults applied when resolving rich styles
type Converter struct {
	// Foreground is used when no node on the path sets a color
	Foreground rich.Color
	// Background applies to every cell; unset keeps the terminal default
	Background rich.OptionalColor
}

// DefaultConverter draws gray text on the terminal background
func DefaultConverter() Converter {
	return Converter{Foreground: rich.Gray}
}

// ToFormat resolves a style against the converter defaults
func (c Converter) ToFormat(style rich.Style) Format {
	return Format{
		Foreground:    style.Color.OrElse(c.Foreground),
		Background:    c.Background,
		Bold:          style.Bold.Enabled(),
		Italic:        style.Italic.Enabled(),
		Underline:     style.Underline.Enabled(),
		Strikethrough: style.Strikethrough.Enabled(),
	}
}

// ToJob flattens t into a job with one section per content segment
func (c Converter) ToJob(t rich.Text) Job {
	var job Job
	t.Flatten(rich.NewStackFlattener(func(content string, style rich.Style) {
		job.Append(content, c.ToFormat(style))
	}))
	return job
}
