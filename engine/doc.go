// Package engine implements the interpreter proper: the forgiving data
// stack, the Machine (instruction pointer, direction, string mode, draw
// colour) and the instruction dispatcher.
//
// A tick executes exactly one instruction and then advances the pointer one
// step, unless the instruction itself moved it (bridge) or redirected it.
// The dispatcher is a single switch over the cell value with no hidden
// state; every mutation lands on the Machine passed in, and anything that
// must leave the interpreter (I/O, graphics) is expressed as a call on the
// injected host.Channel. This keeps each opcode testable in isolation and
// keeps the hot loop free of history and breakpoint branching, which lives a
// layer up in package debug.
package engine
