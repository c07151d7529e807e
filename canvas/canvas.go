// Package canvas defines the device-independent contract for addressable
// 2D grids of colored pads.
//
// A Canvas is the surface of a pad controller: a bounding box of
// coordinates, a validity predicate carving the physically present pads
// out of that box, and buffered color state per pad. Writes accumulate
// until Flush pushes them to the underlying device.
//
// The unchecked accessors assume the coordinate is valid and perform no
// verification; they exist so that pre-validated paths (the package-level
// Set/Get/GetOld functions, and handles produced by Iter) never pay for a
// redundant bounds check. Callers holding raw coordinates should go
// through the checked package-level functions instead.
//
// A canvas has exactly one mutator at a time. Nothing in this package
// locks; concurrent use is the caller's bug.
package canvas

import (
	"fmt"

	"github.com/odvcencio/padcanvas/color"
)

// Canvas is the capability contract implemented by every pad grid device.
//
// Layout must return the same geometry for the lifetime of the device;
// validity is fixed configuration, not state. The unchecked methods have
// unspecified behavior for coordinates the layout rejects.
type Canvas interface {
	// Layout returns the fixed geometry of this device type.
	Layout() Layout

	// GetUnchecked returns the current color at the given location,
	// including writes not yet flushed. No bounds checking.
	GetUnchecked(x, y int) color.Color

	// SetUnchecked assigns the pending color at the given location.
	// The new value is immediately visible to GetUnchecked. No bounds
	// checking.
	SetUnchecked(x, y int, c color.Color)

	// GetOldUnchecked returns the most recently flushed color at the
	// given location, unaffected by pending writes. No bounds checking.
	GetOldUnchecked(x, y int) color.Color

	// Flush commits all pending writes to the underlying device.
	// Transport failures are returned, never swallowed; the canvas does
	// not retry.
	Flush() error
}

// Set assigns the pending color at (x, y).
// Panics if the location is not valid for the canvas layout.
func Set(c Canvas, x, y int, col color.Color) {
	mustValid(c, x, y)
	c.SetUnchecked(x, y, col)
}

// Get returns the current color at (x, y).
// Panics if the location is not valid for the canvas layout.
func Get(c Canvas, x, y int) color.Color {
	mustValid(c, x, y)
	return c.GetUnchecked(x, y)
}

// GetOld returns the most recently flushed color at (x, y).
// Panics if the location is not valid for the canvas layout.
func GetOld(c Canvas, x, y int) color.Color {
	mustValid(c, x, y)
	return c.GetOldUnchecked(x, y)
}

func mustValid(c Canvas, x, y int) {
	if !c.Layout().Valid(x, y) {
		panic(fmt.Sprintf("canvas: coordinates (%d|%d) out of bounds", x, y))
	}
}
