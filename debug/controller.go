package debug

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/engine"
	"github.com/PartyWumpus/befunge-editor/errors"
	"github.com/PartyWumpus/befunge-editor/host"
)

// Outcome classifies how a step or batch ended.
type Outcome uint8

const (
	// Continued: the tick executed, nothing noteworthy.
	Continued Outcome = iota
	// Halted: the program executed its halt instruction, or was already
	// halted.
	Halted
	// Break: the pointer arrived at a breakpoint; the instruction there has
	// not run yet.
	Break
	// AwaitingInput: an input instruction needs a value from the host. No
	// tick was consumed; provide input on the channel and resume.
	AwaitingInput
	// LimitReached: the batch exhausted its tick budget.
	LimitReached
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Halted:
		return "halted"
	case Break:
		return "breakpoint"
	case AwaitingInput:
		return "awaiting-input"
	case LimitReached:
		return "limit-reached"
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// StepResult reports the outcome of one step or batch. At is the breakpoint
// coordinate when Outcome is Break.
type StepResult struct {
	Outcome Outcome
	At      befunge.Coord
}

type watch struct {
	onChange bool
	lastSeen befunge.Cell
}

// Controller owns a Machine and its host channel and drives execution in
// host-controlled increments.
type Controller struct {
	m  *engine.Machine
	ch host.Channel

	breaks map[befunge.Coord]*watch

	hist      *history
	recording bool

	// A reported breakpoint is suppressed until the pointer leaves its
	// coordinate, so the resuming step can execute the cell.
	suppressed bool
	suppressAt befunge.Coord
}

// NewController wraps m with breakpoint and history control, routing the
// program's I/O through ch.
func NewController(m *engine.Machine, ch host.Channel) *Controller {
	return &Controller{
		m:      m,
		ch:     ch,
		breaks: make(map[befunge.Coord]*watch),
	}
}

// Machine exposes the controlled machine for inspection.
func (c *Controller) Machine() *engine.Machine { return c.m }

// SetBreakpoint arms a breakpoint at the coordinate. With onChange set it
// fires only when the cell's value differs from its last observed value.
// Setting an existing coordinate replaces its mode.
func (c *Controller) SetBreakpoint(at befunge.Coord, onChange bool) {
	c.breaks[at] = &watch{onChange: onChange, lastSeen: c.m.Space().Get(at)}
	Logger().Debug("breakpoint set",
		zap.Int64("x", at.X), zap.Int64("y", at.Y), zap.Bool("on_change", onChange))
}

// RemoveBreakpoint disarms the breakpoint at the coordinate, if any.
func (c *Controller) RemoveBreakpoint(at befunge.Coord) {
	delete(c.breaks, at)
}

// HasBreakpoint reports whether a breakpoint is armed at the coordinate.
func (c *Controller) HasBreakpoint(at befunge.Coord) bool {
	_, ok := c.breaks[at]
	return ok
}

// Breakpoints returns the armed coordinates in unspecified order.
func (c *Controller) Breakpoints() []befunge.Coord {
	out := make([]befunge.Coord, 0, len(c.breaks))
	for at := range c.breaks {
		out = append(out, at)
	}
	return out
}

// ParseTarget parses a breakpoint target of the form "x,y". It is the
// validation boundary for host-supplied coordinate specs.
func ParseTarget(spec string) (befunge.Coord, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(spec), ",")
	if !ok {
		return befunge.Coord{}, errors.InvalidTarget(spec, nil)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return befunge.Coord{}, errors.InvalidTarget(spec, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return befunge.Coord{}, errors.InvalidTarget(spec, err)
	}
	return befunge.Coord{X: x, Y: y}, nil
}

// EnableHistory starts recording one undo record per tick. limit bounds the
// record count, oldest dropped first; 0 means unbounded. Enabling clears any
// previous recording.
func (c *Controller) EnableHistory(limit int) {
	if limit < 0 {
		limit = 0
	}
	c.hist = newHistory(limit)
	c.recording = true
	c.m.SetRecording(true)
}

// DisableHistory stops recording and discards all records.
func (c *Controller) DisableHistory() {
	c.hist = nil
	c.recording = false
	c.m.SetRecording(false)
}

// HistoryDepth reports how many ticks can currently be rewound.
func (c *Controller) HistoryDepth() int {
	if c.hist == nil {
		return 0
	}
	return c.hist.len()
}

// Step executes exactly one tick, then evaluates breakpoints against the new
// pointer position. A Break result means the instruction at that coordinate
// has not run; the next Step runs it.
func (c *Controller) Step() StepResult {
	if c.m.Halted() {
		return StepResult{Outcome: Halted}
	}

	var undo engine.Undo
	if c.recording {
		undo = c.m.Snapshot()
	}

	eff := c.m.Tick(c.ch)
	if eff == engine.EffectAwaitInput {
		// The tick did not happen; nothing to record.
		return StepResult{Outcome: AwaitingInput}
	}
	if c.recording {
		undo.Write = c.m.TakeWrite()
		c.hist.push(undo)
	}
	if eff == engine.EffectHalt {
		return StepResult{Outcome: Halted}
	}

	pos := c.m.Position()
	if c.suppressed && c.suppressAt != pos {
		c.suppressed = false
	}
	if w, ok := c.breaks[pos]; ok && !c.suppressed {
		fire := true
		if w.onChange {
			v := c.m.Space().Get(pos)
			fire = v != w.lastSeen
			w.lastSeen = v
		}
		if fire {
			c.suppressed = true
			c.suppressAt = pos
			Logger().Debug("breakpoint hit", zap.Int64("x", pos.X), zap.Int64("y", pos.Y))
			return StepResult{Outcome: Break, At: pos}
		}
	}
	return StepResult{Outcome: Continued}
}

// RunUntil steps until the program halts, a breakpoint fires, input is
// required, or limit ticks have executed (0 means no budget). It returns the
// terminating result and the number of ticks executed in this batch.
func (c *Controller) RunUntil(limit int) (StepResult, int) {
	n := 0
	for {
		if c.m.Halted() {
			return StepResult{Outcome: Halted}, n
		}
		if limit > 0 && n >= limit {
			return StepResult{Outcome: LimitReached}, n
		}
		res := c.Step()
		if res.Outcome == AwaitingInput {
			return res, n
		}
		n++
		if res.Outcome == Halted || res.Outcome == Break {
			return res, n
		}
	}
}

// StepBack rewinds the most recent tick, restoring machine, stack and any
// fungespace write to their pre-tick state. It fails when history is
// disabled or exhausted.
func (c *Controller) StepBack() error {
	if !c.recording {
		return errors.HistoryDisabled()
	}
	u, ok := c.hist.pop()
	if !ok {
		return errors.NoHistory()
	}
	c.m.Restore(u)
	c.suppressed = false
	return nil
}
