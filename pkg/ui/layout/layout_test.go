package layout_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/layout"
)

func TestToFormat(t *testing.T) {
	conv := layout.DefaultConverter()

	tests := []struct {
		name  string
		style rich.Style
		want  layout.Format
	}{
		{
			name:  "default foreground",
			style: rich.Style{Italic: rich.On},
			want:  layout.Format{Foreground: rich.Gray, Italic: true},
		},
		{
			name:  "own color",
			style: rich.Style{Color: rich.Some(rich.Red), Underline: rich.On},
			want:  layout.Format{Foreground: rich.Red, Underline: true},
		},
		{
			name:  "explicit off",
			style: rich.Style{Bold: rich.Off, Strikethrough: rich.Off},
			want:  layout.Format{Foreground: rich.Gray},
		},
		{
			name:  "all flags",
			style: rich.Style{Bold: rich.On, Italic: rich.On, Underline: rich.On, Strikethrough: rich.On},
			want:  layout.Format{Foreground: rich.Gray, Bold: true, Italic: true, Underline: true, Strikethrough: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.ToFormat(tt.style))
		})
	}
}

func TestConverterBackground(t *testing.T) {
	conv := layout.Converter{Foreground: rich.White, Background: rich.Some(rich.DarkBlue)}

	got := conv.ToFormat(rich.Style{})
	assert.Equal(t, rich.White, got.Foreground)
	assert.Equal(t, rich.Some(rich.DarkBlue), got.Background)
}

func TestToJob(t *testing.T) {
	conv := layout.DefaultConverter()
	text := rich.New("Red ").Color(rich.Red).
		With(rich.New("italic").Italic()).
		With(rich.Group()).
		WithString("!")

	job := conv.ToJob(text)

	assert.Equal(t, "Red italic!", job.Text)
	require.Len(t, job.Sections, 4, "one section per content call, empty ones included")
	assert.Equal(t, layout.Section{Start: 0, End: 4, Format: layout.Format{Foreground: rich.Red}}, job.Sections[0])
	assert.Equal(t, layout.Section{Start: 4, End: 10, Format: layout.Format{Foreground: rich.Red, Italic: true}}, job.Sections[1])
	assert.Equal(t, 10, job.Sections[2].Start)
	assert.Equal(t, 10, job.Sections[2].End)
	assert.Equal(t, "!", job.Text[job.Sections[3].Start:job.Sections[3].End])
}

func TestTcellStyle(t *testing.T) {
	f := layout.Format{Foreground: rich.Red, Bold: true, Underline: true}
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Bold(true).
		Italic(false).
		Underline(true).
		StrikeThrough(false)
	assert.Equal(t, want, f.TcellStyle())

	f.Background = rich.Some(rich.Black)
	assert.Equal(t, want.Background(tcell.NewRGBColor(0, 0, 0)), f.TcellStyle())
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var out []rune
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDraw(t *testing.T) {
	screen := newScreen(t, 10, 5)
	job := layout.DefaultConverter().ToJob(rich.New("ab\n").With(rich.New("cd").Bold()))

	rows := layout.Draw(screen, 1, 1, 8, job)
	assert.Equal(t, 2, rows)

	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, 'a', r)
	assert.Equal(t, layout.Format{Foreground: rich.Gray}.TcellStyle(), style)

	r, _, style, _ = screen.GetContent(2, 2)
	assert.Equal(t, 'd', r)
	assert.Equal(t, layout.Format{Foreground: rich.Gray, Bold: true}.TcellStyle(), style)
}

func TestDrawWraps(t *testing.T) {
	screen := newScreen(t, 10, 5)
	job := layout.DefaultConverter().ToJob(rich.New("abcdef"))

	assert.Equal(t, 2, layout.Draw(screen, 0, 0, 4, job))
	assert.Equal(t, "abcd", rowText(screen, 0, 4))
	assert.Equal(t, "ef", rowText(screen, 1, 2))
}

func TestDrawWideRunes(t *testing.T) {
	screen := newScreen(t, 10, 5)
	job := layout.DefaultConverter().ToJob(rich.New("a世b"))

	assert.Equal(t, 3, layout.Draw(screen, 0, 0, 2, job))

	r, _, _, _ := screen.GetContent(0, 1)
	assert.Equal(t, '世', r)
	r, _, _, _ = screen.GetContent(0, 2)
	assert.Equal(t, 'b', r)
}

func TestDrawRuneWiderThanRow(t *testing.T) {
	screen := newScreen(t, 4, 3)
	job := layout.DefaultConverter().ToJob(rich.New("世x"))

	// no blank row ahead of a rune that can never fit
	assert.Equal(t, 2, layout.Draw(screen, 0, 0, 1, job))

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '世', r)
	r, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, 'x', r)
}

func TestDrawEdgeCases(t *testing.T) {
	screen := newScreen(t, 4, 2)
	conv := layout.DefaultConverter()

	assert.Equal(t, 0, layout.Draw(screen, 0, 0, 4, conv.ToJob(rich.Text{})))
	assert.Equal(t, 0, layout.Draw(screen, 0, 0, 0, conv.ToJob(rich.New("x"))))
	assert.Equal(t, 1, layout.Draw(screen, 0, 0, 4, conv.ToJob(rich.New("line\n"))))
	// rows past the bottom are counted but not drawn
	assert.Equal(t, 4, layout.Draw(screen, 0, 0, 1, conv.ToJob(rich.New("wxyz"))))
}

func TestViewReturnsOnKey(t *testing.T) {
	screen := newScreen(t, 12, 3)
	job := layout.DefaultConverter().ToJob(rich.New("hello world"))

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, layout.View(screen, job, 5))

	assert.Equal(t, "hello", rowText(screen, 0, 5))
	assert.Equal(t, " worl", rowText(screen, 1, 5))
	assert.Equal(t, "d", rowText(screen, 2, 1))
}
