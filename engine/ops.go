package engine

import (
	"math/rand"

	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/host"
)

// Effect is what a tick reports back to its driver beyond state mutation.
type Effect uint8

const (
	// EffectNone: the tick executed and the pointer advanced.
	EffectNone Effect = iota
	// EffectHalt: the tick executed the halt instruction. The pointer still
	// advanced once, keeping tick counts deterministic.
	EffectHalt
	// EffectAwaitInput: an input instruction found no value on the channel.
	// Nothing was mutated; re-running the tick after the host provides a
	// value completes it.
	EffectAwaitInput
)

// Tick executes the instruction under the pointer against ch and advances
// the pointer. Calling Tick on a halted machine is a no-op reporting
// EffectHalt.
func (m *Machine) Tick(ch host.Channel) Effect {
	if m.halted {
		return EffectHalt
	}
	op := m.space.Get(m.pos)

	if m.stringMode {
		if op == '"' {
			m.stringMode = false
		} else {
			m.stack.Push(op)
		}
		m.advance()
		return EffectNone
	}
	return m.exec(op, ch)
}

// exec dispatches one instruction in normal mode. Unrecognized cells are
// no-ops; underflow, division by zero and modulo by zero all resolve to zero
// by language policy rather than faulting.
func (m *Machine) exec(op befunge.Cell, ch host.Channel) Effect {
	switch op {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		m.stack.Push(op - '0')

	case '+':
		a := m.stack.Pop()
		b := m.stack.Pop()
		m.stack.Push(b + a)
	case '-':
		a := m.stack.Pop()
		b := m.stack.Pop()
		m.stack.Push(b - a)
	case '*':
		a := m.stack.Pop()
		b := m.stack.Pop()
		m.stack.Push(b * a)
	case '/':
		a := m.stack.Pop()
		b := m.stack.Pop()
		if a == 0 {
			m.stack.Push(0)
		} else {
			m.stack.Push(b / a)
		}
	case '%':
		a := m.stack.Pop()
		b := m.stack.Pop()
		if a == 0 {
			m.stack.Push(0)
		} else {
			m.stack.Push(b % a)
		}

	case '`':
		a := m.stack.Pop()
		b := m.stack.Pop()
		if b > a {
			m.stack.Push(1)
		} else {
			m.stack.Push(0)
		}
	case '!':
		if m.stack.Pop() == 0 {
			m.stack.Push(1)
		} else {
			m.stack.Push(0)
		}

	case ':':
		m.stack.Dup()
	case '\\':
		m.stack.Swap()
	case '$':
		m.stack.Drop()

	case '>':
		m.dir = befunge.Right
	case '<':
		m.dir = befunge.Left
	case '^':
		m.dir = befunge.Up
	case 'v':
		m.dir = befunge.Down
	case '?':
		m.dir = befunge.Direction(rand.Intn(4))
	case '_':
		if m.stack.Pop() == 0 {
			m.dir = befunge.Right
		} else {
			m.dir = befunge.Left
		}
	case '|':
		if m.stack.Pop() == 0 {
			m.dir = befunge.Down
		} else {
			m.dir = befunge.Up
		}
	case '#':
		m.advance() // skip the next cell unconditionally

	case '"':
		m.stringMode = true

	case 'g':
		y := m.stack.Pop()
		x := m.stack.Pop()
		m.stack.Push(m.space.Get(befunge.Coord{X: int64(x), Y: int64(y)}))
	case 'p':
		y := m.stack.Pop()
		x := m.stack.Pop()
		v := m.stack.Pop()
		at := befunge.Coord{X: int64(x), Y: int64(y)}
		if m.recording {
			m.lastWrite = CellWrite{At: at, Prev: m.space.Get(at)}
			m.wrote = true
		}
		m.space.Set(at, v)

	case '&':
		v, ok := ch.ReadInt()
		if !ok {
			return EffectAwaitInput
		}
		m.stack.Push(v)
	case '~':
		v, ok := ch.ReadChar()
		if !ok {
			return EffectAwaitInput
		}
		m.stack.Push(v)
	case '.':
		ch.WriteInt(m.stack.Pop())
	case ',':
		ch.WriteChar(m.stack.Pop())

	case '@':
		m.halted = true
		m.advance()
		return EffectHalt

	case 's':
		y := m.stack.Pop()
		x := m.stack.Pop()
		ch.Configure(int(x), int(y))
	case 'f':
		b := m.stack.Pop()
		g := m.stack.Pop()
		r := m.stack.Pop()
		m.color = host.Color{R: uint8(r), G: uint8(g), B: uint8(b)}
	case 'x':
		y := m.stack.Pop()
		x := m.stack.Pop()
		ch.Pixel(int64(x), int64(y), m.color)
	case 'c':
		ch.Fill(m.color)
	case 'l':
		y1 := m.stack.Pop()
		x1 := m.stack.Pop()
		y2 := m.stack.Pop()
		x2 := m.stack.Pop()
		ch.Line(int64(x1), int64(y1), int64(x2), int64(y2), m.color)
	case 'u':
		ch.Present()
	case 'z':
		ev, ok := ch.PollEvent()
		if !ok {
			m.stack.Push(0)
			break
		}
		switch ev.Kind {
		case host.EventClose:
			m.stack.Push(1)
		case host.EventClick:
			m.stack.Push(befunge.Cell(ev.Y))
			m.stack.Push(befunge.Cell(ev.X))
			m.stack.Push(4)
		}

	default:
		// space and anything unrecognized: advance only
	}

	m.advance()
	return EffectNone
}
