package host

import (
	befunge "github.com/PartyWumpus/befunge-editor"
)

// Color is an RGB triple used by the graphics instructions.
type Color struct {
	R, G, B uint8
}

// EventKind discriminates host events polled by the z instruction.
type EventKind uint8

const (
	EventClose EventKind = iota
	EventClick
)

// Event is a host-originated event delivered to the program through the
// graphics event queue.
type Event struct {
	Kind EventKind
	X, Y int64 // click position; zero for other kinds
}

// Channel is the capability surface the engine calls into. Output calls are
// fire-and-forget but must preserve call order; input calls must not block.
//
// Implementations are driven from the same goroutine as the engine and need
// no internal locking.
type Channel interface {
	// ReadInt supplies the next numeric input value. ok is false when no
	// value is available yet; the engine suspends and retries the same
	// instruction once the host has provided one.
	ReadInt() (v befunge.Cell, ok bool)
	// ReadChar supplies the next character input value, same contract as
	// ReadInt.
	ReadChar() (v befunge.Cell, ok bool)

	WriteInt(v befunge.Cell)
	WriteChar(v befunge.Cell)

	// Configure sizes (or resizes) the framebuffer target. Graphics calls
	// before Configure are discarded.
	Configure(w, h int)
	Pixel(x, y int64, c Color)
	Line(x1, y1, x2, y2 int64, c Color)
	Fill(c Color)
	// Present flushes the current frame to the display.
	Present()
	// PollEvent dequeues one pending event; ok is false when none is queued.
	PollEvent() (Event, bool)
}

// Null is a headless channel: reads return zero immediately, writes and
// graphics calls are discarded. Useful for throughput runs and tests that
// exercise only control flow.
type Null struct{}

func (Null) ReadInt() (befunge.Cell, bool)          { return 0, true }
func (Null) ReadChar() (befunge.Cell, bool)         { return 0, true }
func (Null) WriteInt(befunge.Cell)                  {}
func (Null) WriteChar(befunge.Cell)                 {}
func (Null) Configure(int, int)                     {}
func (Null) Pixel(int64, int64, Color)              {}
func (Null) Line(int64, int64, int64, int64, Color) {}
func (Null) Fill(Color)                             {}
func (Null) Present()                               {}
func (Null) PollEvent() (Event, bool)               { return Event{}, false }
