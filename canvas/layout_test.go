package canvas

import "testing"

func TestLayoutValid_Bounds(t *testing.T) {
	l := Rect(4, 3)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{4, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := l.Valid(c.x, c.y); got != c.want {
			t.Fatalf("Valid(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestLayoutValid_Deterministic(t *testing.T) {
	l := Layout{Width: 5, Height: 5, Mask: func(x, y int) bool {
		return (x+y)%2 == 0
	}}

	for y := -1; y <= 5; y++ {
		for x := -1; x <= 5; x++ {
			first := l.Valid(x, y)
			for i := 0; i < 3; i++ {
				if l.Valid(x, y) != first {
					t.Fatalf("Valid(%d, %d) changed across calls", x, y)
				}
			}
		}
	}
}

func TestLayoutValid_MaskOnlyInsideBox(t *testing.T) {
	l := Layout{Width: 2, Height: 2, Mask: func(x, y int) bool {
		return true
	}}
	if l.Valid(2, 0) || l.Valid(0, 2) {
		t.Fatalf("expected mask to be overridden outside the bounding box")
	}
}

func TestLayoutCount(t *testing.T) {
	if got := Rect(4, 3).Count(); got != 12 {
		t.Fatalf("expected 12 valid cells, got %d", got)
	}
	if got := Rect(0, 3).Count(); got != 0 {
		t.Fatalf("expected 0 valid cells for zero width, got %d", got)
	}

	checker := Layout{Width: 4, Height: 4, Mask: func(x, y int) bool {
		return (x+y)%2 == 0
	}}
	if got := checker.Count(); got != 8 {
		t.Fatalf("expected 8 valid cells on the checkerboard, got %d", got)
	}
}

func TestPadGrid(t *testing.T) {
	l := PadGrid(8)
	if l.Width != 9 || l.Height != 9 {
		t.Fatalf("expected 9x9 bounding box, got %dx%d", l.Width, l.Height)
	}
	if l.Valid(8, 0) {
		t.Fatalf("expected the top-right corner to be missing")
	}
	if !l.Valid(0, 0) || !l.Valid(8, 8) || !l.Valid(8, 1) {
		t.Fatalf("expected remaining edge buttons to be valid")
	}
	if got := l.Count(); got != 80 {
		t.Fatalf("expected 80 buttons, got %d", got)
	}
}
