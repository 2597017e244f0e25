package debug

import (
	stderrors "errors"
	"testing"

	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/engine"
	"github.com/PartyWumpus/befunge-editor/errors"
	"github.com/PartyWumpus/befunge-editor/host"
)

func newProgram(src string) (*Controller, *host.Buffered) {
	m := engine.New()
	m.Load(src)
	ch := host.NewBuffered()
	return NewController(m, ch), ch
}

func wantStack(t *testing.T, c *Controller, want ...befunge.Cell) {
	t.Helper()
	got := c.Machine().Stack().Snapshot()
	if len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stack = %v, want %v", got, want)
		}
	}
}

func TestRunUntil_EndToEnd(t *testing.T) {
	// push 5, push 6, add, output 11, halt: exactly 5 ticks.
	c, ch := newProgram("56+.@")

	res, n := c.RunUntil(0)
	if res.Outcome != Halted {
		t.Fatalf("outcome = %v, want Halted", res.Outcome)
	}
	if n != 5 {
		t.Fatalf("ticks = %d, want 5", n)
	}
	if ints := ch.Ints(); len(ints) != 1 || ints[0] != 11 {
		t.Fatalf("Ints() = %v, want [11]", ints)
	}

	// Running a halted program executes nothing.
	res, n = c.RunUntil(0)
	if res.Outcome != Halted || n != 0 {
		t.Fatalf("halted rerun = %v, %d ticks", res.Outcome, n)
	}
}

func TestRunUntil_CountdownLoop(t *testing.T) {
	// The conditional exits right on zero, looping back otherwise.
	c, _ := newProgram("3>:#v_@\n ^-1<")
	res, _ := c.RunUntil(1000)
	if res.Outcome != Halted {
		t.Fatalf("outcome = %v, want Halted", res.Outcome)
	}
	wantStack(t, c, 0)
}

func TestRunUntil_LimitReached(t *testing.T) {
	c, _ := newProgram(">v\n^<")
	res, n := c.RunUntil(100)
	if res.Outcome != LimitReached {
		t.Fatalf("outcome = %v, want LimitReached", res.Outcome)
	}
	if n != 100 {
		t.Fatalf("ticks = %d, want 100", n)
	}
	// State stays valid and resumable.
	res, n = c.RunUntil(50)
	if res.Outcome != LimitReached || n != 50 {
		t.Fatalf("resume = %v after %d ticks", res.Outcome, n)
	}
}

func TestBreakpoint_ArmsOnArrival(t *testing.T) {
	c, _ := newProgram("123@")
	at := befunge.Coord{X: 2, Y: 0}
	c.SetBreakpoint(at, false)

	res, n := c.RunUntil(0)
	if res.Outcome != Break || res.At != at {
		t.Fatalf("result = %+v, want break at %v", res, at)
	}
	if n != 2 {
		t.Fatalf("ticks = %d, want 2", n)
	}
	// The instruction at the breakpoint has not executed.
	wantStack(t, c, 1, 2)
	if c.Machine().Position() != at {
		t.Fatalf("position = %v, want %v", c.Machine().Position(), at)
	}

	// Resuming executes the cell and does not re-trigger the same arrival.
	res, n = c.RunUntil(0)
	if res.Outcome != Halted {
		t.Fatalf("resume outcome = %v, want Halted", res.Outcome)
	}
	if n != 2 {
		t.Fatalf("resume ticks = %d, want 2", n)
	}
	wantStack(t, c, 1, 2, 3)
}

func TestBreakpoint_RetriggersOnReturn(t *testing.T) {
	// Loop passes (1,0) every lap.
	c, _ := newProgram(">v\n^<")
	at := befunge.Coord{X: 1, Y: 0}
	c.SetBreakpoint(at, false)

	for lap := 0; lap < 3; lap++ {
		res, _ := c.RunUntil(100)
		if res.Outcome != Break || res.At != at {
			t.Fatalf("lap %d: result = %+v", lap, res)
		}
	}
}

func TestBreakpoint_Remove(t *testing.T) {
	c, _ := newProgram("123@")
	at := befunge.Coord{X: 2, Y: 0}
	c.SetBreakpoint(at, false)
	if !c.HasBreakpoint(at) {
		t.Fatal("HasBreakpoint = false after set")
	}
	c.RemoveBreakpoint(at)
	if c.HasBreakpoint(at) {
		t.Fatal("HasBreakpoint = true after remove")
	}
	res, _ := c.RunUntil(0)
	if res.Outcome != Halted {
		t.Fatalf("outcome = %v, want Halted", res.Outcome)
	}
}

func TestBreakpoint_ValueChange(t *testing.T) {
	// Row 1 stores 72 over the '@' at (3,0), then the pointer walks left
	// along row 0 through (3,0). The watch fires on the changed value only.
	src := "v  @   <\n>98*30p^"
	c, _ := newProgram(src)
	at := befunge.Coord{X: 3, Y: 0}
	c.SetBreakpoint(at, true)

	res, _ := c.RunUntil(1000)
	if res.Outcome != Break || res.At != at {
		t.Fatalf("result = %+v, want value-change break at %v", res, at)
	}
	if got := c.Machine().Space().Get(at); got != 72 {
		t.Fatalf("cell = %d, want 72", got)
	}

	// Second lap stores the same value; unchanged cell must not re-fire.
	res, _ = c.RunUntil(60)
	if res.Outcome != LimitReached {
		t.Fatalf("second lap outcome = %v, want LimitReached", res.Outcome)
	}
}

func TestStep_AwaitingInput(t *testing.T) {
	c, ch := newProgram("&.@")

	res, n := c.RunUntil(0)
	if res.Outcome != AwaitingInput || n != 0 {
		t.Fatalf("result = %v after %d ticks, want AwaitingInput after 0", res.Outcome, n)
	}
	// Suspension happens before any state change.
	if c.Machine().Position() != (befunge.Coord{}) {
		t.Fatal("suspended batch moved the pointer")
	}

	ch.Provide(42)
	res, n = c.RunUntil(0)
	if res.Outcome != Halted || n != 3 {
		t.Fatalf("resume = %v after %d ticks, want Halted after 3", res.Outcome, n)
	}
	if ints := ch.Ints(); len(ints) != 1 || ints[0] != 42 {
		t.Fatalf("Ints() = %v, want [42]", ints)
	}
}

func TestParseTarget(t *testing.T) {
	good := []struct {
		spec string
		want befunge.Coord
	}{
		{"3,4", befunge.Coord{X: 3, Y: 4}},
		{" -7 , 12 ", befunge.Coord{X: -7, Y: 12}},
		{"9223372036854775807,-9223372036854775808", befunge.Coord{X: 1<<63 - 1, Y: -1 << 63}},
	}
	for _, tc := range good {
		got, err := ParseTarget(tc.spec)
		if err != nil || got != tc.want {
			t.Fatalf("ParseTarget(%q) = %v, %v", tc.spec, got, err)
		}
	}

	for _, spec := range []string{"", "5", "a,b", "1;2", "1,2,3"} {
		_, err := ParseTarget(spec)
		if err == nil {
			t.Fatalf("ParseTarget(%q) succeeded", spec)
		}
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidTarget}) {
			t.Fatalf("ParseTarget(%q) error = %v, wrong phase/kind", spec, err)
		}
	}
}
