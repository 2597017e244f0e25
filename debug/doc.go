// Package debug drives a Machine one tick or one bounded batch at a time and
// layers breakpoints and rewind history on top of it without touching the
// dispatcher's hot path.
//
// Breakpoints arm on arrival: the tick that moves the pointer onto a
// breakpoint coordinate reports Break before the instruction at that
// coordinate runs, and the hit is suppressed until the pointer has left the
// coordinate so resuming does not re-trigger the same arrival. Value-change
// breakpoints additionally require the cell's value to differ from its last
// observed value.
//
// The Controller is single-goroutine by contract, like the Machine it owns.
// Reconfigure breakpoints and history only between Step/RunUntil calls.
package debug
