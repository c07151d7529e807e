package canvas

// Layout describes the addressable geometry of a pad grid type: the
// bounding box and which coordinates inside it are physically present.
//
// A layout is configuration, not state. Every device of a given type
// carries an identical layout, and a device never changes its layout
// during a session. Handles produced by Iter rely on this.
type Layout struct {
	// Width and Height are the bounding box dimensions.
	Width, Height int

	// Mask reports whether an in-box coordinate is physically present.
	// A nil mask means the grid is fully rectangular. Mask must be a
	// pure function of its arguments.
	Mask func(x, y int) bool
}

// Valid reports whether (x, y) addresses a physical pad. It is false
// for any coordinate outside the bounding box, including negative ones.
func (l Layout) Valid(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return false
	}
	return l.Mask == nil || l.Mask(x, y)
}

// Count returns the number of valid coordinates in the layout.
func (l Layout) Count() int {
	if l.Mask == nil {
		if l.Width <= 0 || l.Height <= 0 {
			return 0
		}
		return l.Width * l.Height
	}
	n := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Mask(x, y) {
				n++
			}
		}
	}
	return n
}

// Rect returns a fully rectangular layout.
func Rect(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// PadGrid returns the classic pad controller layout: an n×n pad field
// with an extra top row and right column of round buttons, where the
// top-right corner position has no button.
func PadGrid(n int) Layout {
	side := n + 1
	return Layout{
		Width:  side,
		Height: side,
		Mask: func(x, y int) bool {
			return !(x == side-1 && y == 0)
		},
	}
}
