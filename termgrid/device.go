// Package termgrid renders a pad grid in the terminal, for developing
// against controller hardware you don't have plugged in.
package termgrid

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/padcanvas/canvas"
	"github.com/odvcencio/padcanvas/color"
	"github.com/odvcencio/padcanvas/framebuf"
)

// Each pad is drawn as a two-column block so it reads roughly square.
const padCols = 2

// Config configures a terminal pad grid.
type Config struct {
	Layout canvas.Layout

	// Title is drawn above the grid, truncated to the grid width.
	Title string

	// Screen, if set, must already be initialized; tests pass a
	// tcell.SimulationScreen here. When nil the device opens and
	// initializes the real terminal screen and owns its lifecycle.
	Screen tcell.Screen
}

// Device is a terminal-rendered pad grid. It implements canvas.Canvas.
type Device struct {
	*framebuf.Buffer
	screen     tcell.Screen
	ownsScreen bool
	rowOffset  int
}

// New creates a terminal pad grid and draws its chrome.
func New(cfg Config) (*Device, error) {
	if cfg.Layout.Width < 0 || cfg.Layout.Height < 0 {
		return nil, fmt.Errorf("termgrid: invalid dimensions %dx%d", cfg.Layout.Width, cfg.Layout.Height)
	}
	screen := cfg.Screen
	owns := false
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("termgrid: create screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, fmt.Errorf("termgrid: init screen: %w", err)
		}
		screen = s
		owns = true
	}

	d := &Device{
		Buffer:     framebuf.New(cfg.Layout),
		screen:     screen,
		ownsScreen: owns,
	}
	screen.Clear()
	if cfg.Title != "" {
		d.rowOffset = 1
		d.drawTitle(cfg.Title)
	}
	screen.Show()
	return d, nil
}

// Flush draws the pads changed since the last flush and updates the
// terminal. It never fails; the error return satisfies canvas.Canvas.
func (d *Device) Flush() error {
	d.ForEachDirty(func(x, y int, c color.Color) {
		if !d.Layout().Valid(x, y) {
			return
		}
		d.drawPad(x, y, c)
	})
	d.screen.Show()
	d.Commit()
	return nil
}

// Close releases the terminal if the device owns it.
func (d *Device) Close() error {
	if d.ownsScreen {
		d.screen.Fini()
	}
	return nil
}

func (d *Device) drawPad(x, y int, c color.Color) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for i := 0; i < padCols; i++ {
		d.screen.SetContent(x*padCols+i, y+d.rowOffset, ' ', nil, style)
	}
}

func (d *Device) drawTitle(title string) {
	maxWidth := d.Layout().Width * padCols
	title = truncate(title, maxWidth)
	col := 0
	for _, r := range title {
		d.screen.SetContent(col, 0, r, nil, tcell.StyleDefault)
		col += runewidth.RuneWidth(r)
	}
}

func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
