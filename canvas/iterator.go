package canvas

import "github.com/odvcencio/padcanvas/color"

// Pad is an immutable handle to a coordinate proven valid for canvases
// of type C. Handles are created only by Iter, so holding one is the
// proof of validity; its accessors skip bounds checks entirely.
//
// The type parameter ties a handle to the concrete canvas type it was
// produced for. A handle must only be used with canvases of that type;
// since all devices of one type share a layout, any such canvas accepts
// it.
type Pad[C Canvas] struct {
	x, y int
}

// X returns the pad's column.
func (p Pad[C]) X() int { return p.x }

// Y returns the pad's row.
func (p Pad[C]) Y() int { return p.y }

// Get returns the current color of this pad on the given canvas.
func (p Pad[C]) Get(c C) color.Color {
	return c.GetUnchecked(p.x, p.y)
}

// GetOld returns the most recently flushed color of this pad on the
// given canvas.
func (p Pad[C]) GetOld(c C) color.Color {
	return c.GetOldUnchecked(p.x, p.y)
}

// Set assigns the pending color of this pad on the given canvas.
func (p Pad[C]) Set(c C, col color.Color) {
	c.SetUnchecked(p.x, p.y, col)
}

// Iterator walks the valid coordinates of a canvas layout in row-major
// order, yielding each exactly once. A single pass consumes the
// iterator; abandoning it mid-sequence needs no cleanup.
//
// The cursor is on a valid coordinate immediately after construction,
// and immediately after each yield sits just before the next one.
type Iterator[C Canvas] struct {
	layout Layout
	x, y   int
}

// Iter starts a traversal over the valid coordinates of the canvas.
func Iter[C Canvas](c C) *Iterator[C] {
	it := &Iterator[C]{layout: c.Layout()}
	it.findNextValid()
	return it
}

// Next returns the handle for the next valid coordinate, or ok=false
// once the layout is exhausted.
func (it *Iterator[C]) Next() (pad Pad[C], ok bool) {
	if !it.findNextValid() {
		return Pad[C]{}, false
	}
	pad = Pad[C]{x: it.x, y: it.y}
	it.advance()
	return pad, true
}

func (it *Iterator[C]) advance() {
	it.x++
	if it.x >= it.layout.Width {
		it.x = 0
		it.y++
	}
}

// findNextValid moves the cursor forward to the next valid coordinate,
// reporting false once the bounding box is exhausted. Bounded by
// width*height steps: y never decreases and strictly increases after at
// most width calls to advance.
func (it *Iterator[C]) findNextValid() bool {
	for {
		if it.y >= it.layout.Height {
			return false
		}
		if it.layout.Valid(it.x, it.y) {
			return true
		}
		it.advance()
	}
}

// ForEach traverses the canvas and calls fn for each valid pad in
// row-major order.
func ForEach[C Canvas](c C, fn func(Pad[C])) {
	it := Iter(c)
	for {
		pad, ok := it.Next()
		if !ok {
			return
		}
		fn(pad)
	}
}
