package framebuf

import (
	"testing"

	"github.com/odvcencio/padcanvas/canvas"
	"github.com/odvcencio/padcanvas/color"
)

func TestBuffer_ReadYourWrites(t *testing.T) {
	b := New(canvas.Rect(4, 4))

	b.SetUnchecked(2, 3, color.Cyan)
	if got := b.GetUnchecked(2, 3); got != color.Cyan {
		t.Fatalf("expected write to be visible immediately, got %v", got)
	}
	if got := b.GetOldUnchecked(2, 3); got != color.Black {
		t.Fatalf("expected flushed plane untouched, got %v", got)
	}
}

func TestBuffer_DirtyTracking(t *testing.T) {
	b := New(canvas.Rect(4, 4))

	if b.IsDirty() {
		t.Fatalf("expected fresh buffer to be clean")
	}

	b.SetUnchecked(0, 0, color.Red)
	b.SetUnchecked(1, 0, color.Red)
	if got := b.DirtyCount(); got != 2 {
		t.Fatalf("expected 2 dirty pads, got %d", got)
	}

	// Rewriting the same value is not a change.
	b.SetUnchecked(0, 0, color.Red)
	if got := b.DirtyCount(); got != 2 {
		t.Fatalf("expected dirty count unchanged, got %d", got)
	}

	// Writing the value already on the flushed plane is not a change
	// either.
	b.SetUnchecked(3, 3, color.Black)
	if got := b.DirtyCount(); got != 2 {
		t.Fatalf("expected no-op write to stay clean, got %d dirty", got)
	}
}

func TestBuffer_ForEachDirtyRowMajor(t *testing.T) {
	b := New(canvas.Rect(3, 3))

	b.SetUnchecked(2, 2, color.Blue)
	b.SetUnchecked(1, 0, color.Red)
	b.SetUnchecked(0, 1, color.Green)

	var got [][2]int
	b.ForEachDirty(func(x, y int, c color.Color) {
		got = append(got, [2]int{x, y})
	})

	want := [][2]int{{1, 0}, {0, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d dirty pads, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dirty pad %d: expected (%d|%d), got (%d|%d)",
				i, want[i][0], want[i][1], got[i][0], got[i][1])
		}
	}
}

func TestBuffer_Commit(t *testing.T) {
	b := New(canvas.Rect(2, 2))

	b.SetUnchecked(1, 1, color.Magenta)
	b.Commit()

	if b.IsDirty() {
		t.Fatalf("expected commit to clear dirty tracking")
	}
	if got := b.GetOldUnchecked(1, 1); got != color.Magenta {
		t.Fatalf("expected flushed plane updated, got %v", got)
	}

	// A fresh write after commit dirties again.
	b.SetUnchecked(1, 1, color.White)
	if got := b.DirtyCount(); got != 1 {
		t.Fatalf("expected 1 dirty pad after commit, got %d", got)
	}
}

func TestBuffer_SnapshotIsIndependent(t *testing.T) {
	b := New(canvas.Rect(2, 1))

	b.SetUnchecked(0, 0, color.Red)
	snap := b.Snapshot()
	b.SetUnchecked(0, 0, color.Blue)

	if snap[0] != color.Red {
		t.Fatalf("expected snapshot to keep the captured value, got %v", snap[0])
	}
}

func TestBuffer_EmptyLayout(t *testing.T) {
	b := New(canvas.Rect(0, 5))
	if b.IsDirty() {
		t.Fatalf("expected empty buffer to be clean")
	}
	b.ForEachDirty(func(x, y int, c color.Color) {
		t.Fatalf("unexpected dirty pad (%d|%d)", x, y)
	})
	if got := len(b.Snapshot()); got != 0 {
		t.Fatalf("expected empty snapshot, got %d pixels", got)
	}
}
