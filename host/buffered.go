package host

import (
	"strconv"
	"strings"

	befunge "github.com/PartyWumpus/befunge-editor"
)

// Buffered is a Channel backed by in-memory queues: input is provided up
// front (or between batches), output is captured for inspection, and graphics
// calls render into a Framebuffer. It is the channel of choice for tests and
// for batch hosts.
type Buffered struct {
	in     []befunge.Cell
	ints   []befunge.Cell
	out    strings.Builder
	fb     *Framebuffer
	events []Event
}

// NewBuffered returns a channel with empty queues and no framebuffer.
func NewBuffered() *Buffered {
	return &Buffered{}
}

// Provide queues input values. Both & and ~ consume from the same queue, in
// order.
func (b *Buffered) Provide(vs ...befunge.Cell) {
	b.in = append(b.in, vs...)
}

// ProvideString queues each code point of s as one input value.
func (b *Buffered) ProvideString(s string) {
	for _, r := range s {
		b.in = append(b.in, befunge.Cell(r))
	}
}

// PushEvent queues a host event for the z instruction.
func (b *Buffered) PushEvent(e Event) {
	b.events = append(b.events, e)
}

// Ints returns every value written by the . instruction, in order. It is a
// convenience view; Output holds the same values interleaved with characters.
func (b *Buffered) Ints() []befunge.Cell { return b.ints }

// Output returns everything the program wrote, in call order: characters from
// , verbatim and numbers from . in decimal with a trailing space.
func (b *Buffered) Output() string { return b.out.String() }

// Framebuffer returns the graphics target, or nil before the program's setup
// instruction ran.
func (b *Buffered) Framebuffer() *Framebuffer { return b.fb }

func (b *Buffered) take() (befunge.Cell, bool) {
	if len(b.in) == 0 {
		return 0, false
	}
	v := b.in[0]
	b.in = b.in[1:]
	return v, true
}

func (b *Buffered) ReadInt() (befunge.Cell, bool)  { return b.take() }
func (b *Buffered) ReadChar() (befunge.Cell, bool) { return b.take() }

func (b *Buffered) WriteInt(v befunge.Cell) {
	b.ints = append(b.ints, v)
	b.out.WriteString(strconv.FormatInt(int64(v), 10))
	b.out.WriteByte(' ')
}

func (b *Buffered) WriteChar(v befunge.Cell) { b.out.WriteRune(rune(v)) }

func (b *Buffered) Configure(w, h int) { b.fb = NewFramebuffer(w, h) }

func (b *Buffered) Pixel(x, y int64, c Color) {
	if b.fb != nil {
		b.fb.Set(x, y, c)
	}
}

func (b *Buffered) Line(x1, y1, x2, y2 int64, c Color) {
	if b.fb != nil {
		b.fb.Line(x1, y1, x2, y2, c)
	}
}

func (b *Buffered) Fill(c Color) {
	if b.fb != nil {
		b.fb.Fill(c)
	}
}

func (b *Buffered) Present() {
	if b.fb != nil {
		b.fb.presents++
	}
}

func (b *Buffered) PollEvent() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	e := b.events[0]
	b.events = b.events[1:]
	return e, true
}
