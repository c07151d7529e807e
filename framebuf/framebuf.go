// Package framebuf provides the buffered pixel store shared by the
// padcanvas device implementations.
package framebuf

import (
	"github.com/odvcencio/padcanvas/canvas"
	"github.com/odvcencio/padcanvas/color"
)

// Buffer holds two row-major pixel planes for a pad grid: the current
// plane, which reflects every write immediately, and the flushed plane,
// which reflects only what has been committed to the device. Writes are
// tracked per cell so a device can transmit just the pads that changed
// since the last commit.
//
// Buffer implements the state half of the canvas contract; devices embed
// it and add their transport in Flush.
type Buffer struct {
	layout  canvas.Layout
	cur     []color.Color
	flushed []color.Color

	// Generation marker per cell; a cell is dirty when its stamp
	// matches the current generation.
	dirtyStamp []uint32
	dirtyGen   uint32
	dirtyCount int
}

// New creates a buffer for the given layout with all pads black.
func New(layout canvas.Layout) *Buffer {
	total := layout.Width * layout.Height
	if total < 0 {
		total = 0
	}
	return &Buffer{
		layout:     layout,
		cur:        make([]color.Color, total),
		flushed:    make([]color.Color, total),
		dirtyStamp: make([]uint32, total),
		dirtyGen:   1,
	}
}

// Layout returns the buffer's geometry.
func (b *Buffer) Layout() canvas.Layout {
	return b.layout
}

// GetUnchecked returns the current color at (x, y), including writes
// not yet committed.
func (b *Buffer) GetUnchecked(x, y int) color.Color {
	return b.cur[y*b.layout.Width+x]
}

// SetUnchecked assigns the pending color at (x, y). The cell is marked
// dirty only if the value actually changed.
func (b *Buffer) SetUnchecked(x, y int, c color.Color) {
	idx := y*b.layout.Width + x
	if b.cur[idx] == c {
		return
	}
	b.cur[idx] = c
	if b.dirtyStamp[idx] != b.dirtyGen {
		b.dirtyStamp[idx] = b.dirtyGen
		b.dirtyCount++
	}
}

// GetOldUnchecked returns the most recently committed color at (x, y).
func (b *Buffer) GetOldUnchecked(x, y int) color.Color {
	return b.flushed[y*b.layout.Width+x]
}

// IsDirty returns true if any pad changed since the last commit.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of pads changed since the last commit.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// ForEachDirty calls fn for each dirty pad in row-major order with its
// current color.
func (b *Buffer) ForEachDirty(fn func(x, y int, c color.Color)) {
	if b.dirtyCount == 0 {
		return
	}
	for y := 0; y < b.layout.Height; y++ {
		rowStart := y * b.layout.Width
		for x := 0; x < b.layout.Width; x++ {
			idx := rowStart + x
			if b.dirtyStamp[idx] == b.dirtyGen {
				fn(x, y, b.cur[idx])
			}
		}
	}
}

// Commit copies the current plane over the flushed plane and resets
// dirty tracking. Devices call it after their transport accepted the
// frame.
func (b *Buffer) Commit() {
	copy(b.flushed, b.cur)
	b.dirtyCount = 0
	b.advanceDirtyGen()
}

// Snapshot returns a copy of the current plane in row-major order.
func (b *Buffer) Snapshot() []color.Color {
	out := make([]color.Color, len(b.cur))
	copy(out, b.cur)
	return out
}

func (b *Buffer) advanceDirtyGen() {
	b.dirtyGen++
	if b.dirtyGen == 0 {
		clear(b.dirtyStamp)
		b.dirtyGen = 1
	}
}
