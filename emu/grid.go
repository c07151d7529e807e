// Package emu provides an in-memory pad grid device, used as the
// reference canvas implementation and as a recording target for demos
// and tests.
package emu

import (
	"fmt"

	"github.com/odvcencio/padcanvas/canvas"
	"github.com/odvcencio/padcanvas/color"
	"github.com/odvcencio/padcanvas/framebuf"
)

// FrameSink receives the full current plane on every flush. A non-nil
// error fails the flush; the grid keeps its pending writes so the
// caller can retry or give up.
type FrameSink func(pixels []color.Color) error

// Config configures an emulated grid.
type Config struct {
	Layout canvas.Layout

	// Sink, if set, receives each flushed frame. A nil sink makes
	// Flush a pure buffer commit.
	Sink FrameSink
}

// Grid is an in-memory canvas. It implements canvas.Canvas.
type Grid struct {
	*framebuf.Buffer
	sink FrameSink
}

// New creates an emulated grid.
func New(cfg Config) (*Grid, error) {
	if cfg.Layout.Width < 0 || cfg.Layout.Height < 0 {
		return nil, fmt.Errorf("emu: invalid dimensions %dx%d", cfg.Layout.Width, cfg.Layout.Height)
	}
	return &Grid{
		Buffer: framebuf.New(cfg.Layout),
		sink:   cfg.Sink,
	}, nil
}

// Flush hands the current frame to the sink, then commits it. If the
// sink rejects the frame the pending writes stay pending and the error
// is returned.
func (g *Grid) Flush() error {
	if g.sink != nil {
		if err := g.sink(g.Snapshot()); err != nil {
			return fmt.Errorf("emu: flush: %w", err)
		}
	}
	g.Commit()
	return nil
}
