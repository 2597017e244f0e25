package debug

import (
	"github.com/PartyWumpus/befunge-editor/engine"
)

// history stores per-tick undo records, newest last. With a positive cap it
// is a ring that silently drops the oldest record; with cap 0 it grows
// without bound.
type history struct {
	buf  []engine.Undo
	cap  int
	head int // next write slot when ring
	size int
}

func newHistory(cap int) *history {
	h := &history{cap: cap}
	if cap > 0 {
		h.buf = make([]engine.Undo, cap)
	}
	return h
}

func (h *history) push(u engine.Undo) {
	if h.cap == 0 {
		h.buf = append(h.buf, u)
		h.size++
		return
	}
	h.buf[h.head] = u
	h.head = (h.head + 1) % h.cap
	if h.size < h.cap {
		h.size++
	}
}

// pop removes and returns the newest record. ok is false when empty.
func (h *history) pop() (engine.Undo, bool) {
	if h.size == 0 {
		return engine.Undo{}, false
	}
	h.size--
	if h.cap == 0 {
		u := h.buf[len(h.buf)-1]
		h.buf = h.buf[:len(h.buf)-1]
		return u, true
	}
	h.head = (h.head - 1 + h.cap) % h.cap
	return h.buf[h.head], true
}

func (h *history) len() int { return h.size }
