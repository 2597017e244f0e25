// Package space implements the sparse two-dimensional program memory
// ("fungespace") of the interpreter.
//
// Storage is a hash map keyed by coordinate with a dense fast path covering
// the classic 80x25 Befunge-93 playfield, where almost all programs spend
// almost all of their cells. Reads of unwritten locations return the blank
// cell and never allocate, so a runaway g-loop cannot grow the map; writes of
// the blank cell outside the dense page delete the entry for the same reason.
package space
