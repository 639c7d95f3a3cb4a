package layout

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
)

// Draw writes job onto screen starting at (x, y), wrapping at width columns
// and on newlines. Rows below the screen are skipped. It returns the number
// of rows the job occupies.
func Draw(screen tcell.Screen, x, y, width int, job Job) int {
	if width <= 0 || job.Text == "" {
		return 0
	}
	_, height := screen.Size()

	col, row := 0, 0
	for _, section := range job.Sections {
		style := section.Format.TcellStyle()
		for _, r := range job.Text[section.Start:section.End] {
			if r == '\n' {
				col, row = 0, row+1
				continue
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				// tabs and other controls take one blank cell
				r, w = ' ', 1
			}
			// a rune wider than the row still gets drawn at its start
			if col > 0 && col+w > width {
				col, row = 0, row+1
			}
			if y+row < height {
				screen.SetContent(x+col, y+row, r, nil, style)
			}
			col += w
		}
	}
	if col == 0 && row > 0 {
		return row
	}
	return row + 1
}

// View shows job full screen until a key is pressed. The job is redrawn,
// rewrapped to the new width, whenever the terminal is resized. A
// non-positive width uses the full screen width.
func View(screen tcell.Screen, job Job, width int) error {
	logger := logging.GetLogger("layout")

	redraw := func() {
		w, _ := screen.Size()
		if width > 0 && width < w {
			w = width
		}
		screen.Clear()
		rows := Draw(screen, 0, 0, w, job)
		logger.Trace().Int("width", w).Int("rows", rows).Msg("Drew job")
		screen.Show()
	}

	redraw()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return errors.New(errors.ErrScreen, "screen closed before a key was pressed")
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			logger.Debug().Str("key", ev.Name()).Msg("Leaving view")
			return nil
		}
	}
}
