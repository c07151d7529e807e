// Package serialgrid drives a pad grid controller attached over a
// serial port.
//
// The wire format is a flat change list: one 6-byte message per changed
// pad (marker, x, y, and the color quantized to 6 bits per channel),
// terminated by a commit byte. The controller applies the batch
// atomically on commit, so partial frames are never shown.
package serialgrid

import (
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/odvcencio/padcanvas/canvas"
	"github.com/odvcencio/padcanvas/color"
	"github.com/odvcencio/padcanvas/framebuf"
)

const (
	msgSetPad = 0xF0
	msgCommit = 0xF7

	// Coordinates travel as single bytes.
	maxSide = 256

	defaultBaud = 115200
)

// Port is the transport a Device writes frames to. serial.Port
// satisfies it; tests substitute an in-memory implementation.
type Port interface {
	io.Writer
	Close() error
}

// Config configures a serial pad grid.
type Config struct {
	// Port is the serial port name, e.g. /dev/ttyACM0.
	Port string

	// Baud is the line rate. Zero means 115200.
	Baud int

	Layout canvas.Layout
}

// Device is a pad grid behind a serial port. It implements
// canvas.Canvas.
type Device struct {
	*framebuf.Buffer
	port Port
}

// Open dials the configured serial port (8N1) and wraps it in a Device.
func Open(cfg Config) (*Device, error) {
	baud := cfg.Baud
	if baud == 0 {
		baud = defaultBaud
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("serialgrid: open %s: %w", cfg.Port, err)
	}
	return New(port, cfg.Layout)
}

// New wraps an already-open port in a Device.
func New(port Port, layout canvas.Layout) (*Device, error) {
	if port == nil {
		return nil, fmt.Errorf("serialgrid: nil port")
	}
	if layout.Width < 0 || layout.Height < 0 ||
		layout.Width > maxSide || layout.Height > maxSide {
		return nil, fmt.Errorf("serialgrid: layout %dx%d does not fit the wire format",
			layout.Width, layout.Height)
	}
	return &Device{
		Buffer: framebuf.New(layout),
		port:   port,
	}, nil
}

// Flush transmits the pads changed since the last flush and commits
// them. With nothing dirty it writes nothing. On a transport error the
// pending writes stay pending and the error is returned.
func (d *Device) Flush() error {
	dirty := d.DirtyCount()
	if dirty == 0 {
		return nil
	}
	frame := make([]byte, 0, dirty*6+1)
	d.ForEachDirty(func(x, y int, c color.Color) {
		r, g, b := c.Quantize6()
		frame = append(frame, msgSetPad, byte(x), byte(y), r, g, b)
	})
	frame = append(frame, msgCommit)

	if _, err := d.port.Write(frame); err != nil {
		return fmt.Errorf("serialgrid: flush %d pads: %w", dirty, err)
	}
	d.Commit()
	return nil
}

// Close closes the underlying port.
func (d *Device) Close() error {
	return d.port.Close()
}
