package engine

import (
	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/host"
	"github.com/PartyWumpus/befunge-editor/space"
)

// Machine is one interpreter instance: a fungespace, a data stack and the
// instruction pointer state. It has exactly one owner; nothing in it locks.
type Machine struct {
	space      *space.Space
	stack      Stack
	pos        befunge.Coord
	dir        befunge.Direction
	stringMode bool
	halted     bool
	color      host.Color

	// Undo recording, enabled by the debug layer. When off, the only cost
	// on the hot path is the recording flag check in the p instruction.
	recording bool
	wrote     bool
	lastWrite CellWrite
}

// New returns a reset Machine with an empty fungespace.
func New() *Machine {
	return &Machine{
		space: space.New(),
		dir:   befunge.Right,
	}
}

// Load resets the machine and loads src into fungespace at the origin.
func (m *Machine) Load(src string) {
	m.LoadAt(befunge.Coord{}, src)
}

// LoadAt resets the machine and loads src at origin. The pointer starts at
// origin heading right.
func (m *Machine) LoadAt(origin befunge.Coord, src string) {
	m.space.Clear()
	m.space.LoadText(origin, src)
	m.stack.Reset()
	m.pos = origin
	m.dir = befunge.Right
	m.stringMode = false
	m.halted = false
	m.color = host.Color{}
	m.wrote = false
}

// Space exposes the machine's fungespace for inspection and for host-driven
// edits between batches.
func (m *Machine) Space() *space.Space { return m.space }

// Stack exposes the data stack for inspection.
func (m *Machine) Stack() *Stack { return &m.stack }

// Position returns the instruction pointer's coordinate.
func (m *Machine) Position() befunge.Coord { return m.pos }

// Heading returns the instruction pointer's direction.
func (m *Machine) Heading() befunge.Direction { return m.dir }

// StringMode reports whether the next cells are read literally.
func (m *Machine) StringMode() bool { return m.stringMode }

// Halted reports whether the program executed its halt instruction.
func (m *Machine) Halted() bool { return m.halted }

// DrawColor returns the current graphics colour.
func (m *Machine) DrawColor() host.Color { return m.color }

func (m *Machine) advance() {
	m.pos = m.pos.Step(m.dir)
}

// CellWrite records the previous value of a fungespace location overwritten
// by one tick, for rewind.
type CellWrite struct {
	At   befunge.Coord
	Prev befunge.Cell
}

// Undo captures everything one tick can change, enough to reverse it:
// the pre-tick pointer state and a full copy of the stack, plus the prior
// cell value when the tick stored to fungespace.
type Undo struct {
	Pos        befunge.Coord
	Dir        befunge.Direction
	StringMode bool
	Halted     bool
	Color      host.Color
	Stack      []befunge.Cell
	Write      *CellWrite
}

// SetRecording toggles capture of fungespace writes for rewind. Only the
// debug layer flips this, and only between ticks.
func (m *Machine) SetRecording(on bool) {
	m.recording = on
	m.wrote = false
}

// Snapshot captures the pre-tick state. Callers pair it with TakeWrite after
// the tick to complete the undo record.
func (m *Machine) Snapshot() Undo {
	return Undo{
		Pos:        m.pos,
		Dir:        m.dir,
		StringMode: m.stringMode,
		Halted:     m.halted,
		Color:      m.color,
		Stack:      m.stack.Snapshot(),
	}
}

// TakeWrite returns the fungespace write performed by the last tick, if any,
// and clears it. Valid only while recording.
func (m *Machine) TakeWrite() *CellWrite {
	if !m.wrote {
		return nil
	}
	m.wrote = false
	w := m.lastWrite
	return &w
}

// Restore rewinds the machine to u, including any fungespace write.
func (m *Machine) Restore(u Undo) {
	m.pos = u.Pos
	m.dir = u.Dir
	m.stringMode = u.StringMode
	m.halted = u.Halted
	m.color = u.Color
	m.stack.Restore(u.Stack)
	if u.Write != nil {
		m.space.Set(u.Write.At, u.Write.Prev)
	}
	m.wrote = false
}
