package emu

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/padcanvas/color"
)

// Frame is one recorded flush: the full current plane with an ID and
// capture time. Frame IDs are ULIDs, so sorting by ID reproduces
// capture order.
type Frame struct {
	ID     ulid.ULID
	At     time.Time
	Pixels []color.Color
}

// Recorder captures flushed frames. Its Record method is a FrameSink.
type Recorder struct {
	frames []Frame
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record stores a copy of the frame. It never fails.
func (r *Recorder) Record(pixels []color.Color) error {
	buf := make([]color.Color, len(pixels))
	copy(buf, pixels)
	r.frames = append(r.frames, Frame{
		ID:     ulid.Make(),
		At:     time.Now(),
		Pixels: buf,
	})
	return nil
}

// Frames returns the recorded frames in capture order.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}
