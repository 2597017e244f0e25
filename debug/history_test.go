package debug

import (
	stderrors "errors"
	"testing"

	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/engine"
	"github.com/PartyWumpus/befunge-editor/errors"
)

func stubUndo(x int) engine.Undo {
	return engine.Undo{Pos: befunge.Coord{X: int64(x)}}
}

// machineState flattens everything StepBack promises to restore.
type machineState struct {
	pos        befunge.Coord
	dir        befunge.Direction
	stringMode bool
	halted     bool
	stack      []befunge.Cell
}

func captureState(c *Controller) machineState {
	m := c.Machine()
	return machineState{
		pos:        m.Position(),
		dir:        m.Heading(),
		stringMode: m.StringMode(),
		halted:     m.Halted(),
		stack:      m.Stack().Snapshot(),
	}
}

func (s machineState) equal(o machineState) bool {
	if s.pos != o.pos || s.dir != o.dir || s.stringMode != o.stringMode ||
		s.halted != o.halted || len(s.stack) != len(o.stack) {
		return false
	}
	for i := range s.stack {
		if s.stack[i] != o.stack[i] {
			return false
		}
	}
	return true
}

func TestStepBack_RestoresEveryTick(t *testing.T) {
	// Exercises digits, string mode, arithmetic, a fungespace write and
	// output: every instruction class StepBack must reverse.
	src := `1"a"+577p.@`
	c, _ := newProgram(src)
	c.EnableHistory(0)

	var states []machineState
	for {
		states = append(states, captureState(c))
		res := c.Step()
		if res.Outcome == Halted {
			break
		}
	}

	for i := len(states) - 1; i >= 0; i-- {
		if err := c.StepBack(); err != nil {
			t.Fatalf("StepBack #%d: %v", len(states)-i, err)
		}
		if got := captureState(c); !got.equal(states[i]) {
			t.Fatalf("rewind to tick %d: state %+v, want %+v", i, got, states[i])
		}
	}
	if err := c.StepBack(); !stderrors.Is(err, errors.NoHistory()) {
		t.Fatalf("StepBack past start = %v, want NoHistory", err)
	}
}

func TestStepBack_RestoresFungespaceWrite(t *testing.T) {
	c, _ := newProgram("577p@")
	c.EnableHistory(0)

	target := befunge.Coord{X: 7, Y: 7}
	for i := 0; i < 4; i++ {
		c.Step()
	}
	if got := c.Machine().Space().Get(target); got != 5 {
		t.Fatalf("cell = %d before rewind, want 5", got)
	}

	if err := c.StepBack(); err != nil {
		t.Fatalf("StepBack: %v", err)
	}
	if got := c.Machine().Space().Get(target); got != befunge.Blank {
		t.Fatalf("cell = %d after rewind, want blank", got)
	}
	wantStack(t, c, 5, 7, 7)
}

func TestStepBack_UnwindsHalt(t *testing.T) {
	c, _ := newProgram("@")
	c.EnableHistory(0)
	if res := c.Step(); res.Outcome != Halted {
		t.Fatalf("Step = %v", res.Outcome)
	}
	if err := c.StepBack(); err != nil {
		t.Fatalf("StepBack: %v", err)
	}
	if c.Machine().Halted() {
		t.Fatal("machine still halted after rewind")
	}
	if c.Machine().Position() != (befunge.Coord{}) {
		t.Fatalf("position = %v", c.Machine().Position())
	}
}

func TestStepBack_Disabled(t *testing.T) {
	c, _ := newProgram("1@")
	c.Step()
	err := c.StepBack()
	if !stderrors.Is(err, errors.HistoryDisabled()) {
		t.Fatalf("StepBack = %v, want HistoryDisabled", err)
	}
}

func TestHistory_BoundedRing(t *testing.T) {
	c, _ := newProgram("12345@")
	c.EnableHistory(2)

	res, n := c.RunUntil(0)
	if res.Outcome != Halted || n != 6 {
		t.Fatalf("run = %v after %d ticks", res.Outcome, n)
	}
	if c.HistoryDepth() != 2 {
		t.Fatalf("HistoryDepth() = %d, want 2", c.HistoryDepth())
	}

	// Only the last two ticks ('5' and '@') can be rewound.
	if err := c.StepBack(); err != nil {
		t.Fatalf("StepBack 1: %v", err)
	}
	if err := c.StepBack(); err != nil {
		t.Fatalf("StepBack 2: %v", err)
	}
	wantStack(t, c, 1, 2, 3, 4)
	if c.Machine().Halted() {
		t.Fatal("still halted after rewinding the halt tick")
	}
	if err := c.StepBack(); !stderrors.Is(err, errors.NoHistory()) {
		t.Fatalf("StepBack 3 = %v, want NoHistory", err)
	}
}

func TestHistory_DisableClears(t *testing.T) {
	c, _ := newProgram("123@")
	c.EnableHistory(0)
	c.Step()
	c.Step()
	if c.HistoryDepth() != 2 {
		t.Fatalf("HistoryDepth() = %d", c.HistoryDepth())
	}
	c.DisableHistory()
	if c.HistoryDepth() != 0 {
		t.Fatalf("HistoryDepth() = %d after disable", c.HistoryDepth())
	}
}

func TestHistoryRing_Order(t *testing.T) {
	h := newHistory(3)
	for i := 1; i <= 5; i++ {
		h.push(stubUndo(i))
	}
	if h.len() != 3 {
		t.Fatalf("len = %d", h.len())
	}
	for want := 5; want >= 3; want-- {
		u, ok := h.pop()
		if !ok || u.Pos.X != int64(want) {
			t.Fatalf("pop = %v,%v, want x=%d", u.Pos, ok, want)
		}
	}
	if _, ok := h.pop(); ok {
		t.Fatal("pop from drained ring succeeded")
	}
}
