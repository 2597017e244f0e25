// Package befunge is the execution core of a Befunge-93 editor/debugger,
// extended to 64-bit fungespace addressing and a graphics instruction set.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	befunge/         Root package with the shared Cell/Coord/Direction vocabulary
//	├── space/       Sparse 2D fungespace storage and program loading
//	├── engine/      Stack machine, interpreter state and instruction dispatch
//	├── host/        I/O and graphics channel implemented by the embedding host
//	├── debug/       Step controller: breakpoints, tick budgets, rewind history
//	├── errors/      Structured error types for load/config/history failures
//	└── cmd/befunge/ Reference host: batch runner and interactive TUI debugger
//
// # Quick Start
//
// Load and run a program headlessly:
//
//	m := engine.New()
//	m.Load("56+.@")
//
//	ch := host.NewBuffered()
//	ctl := debug.NewController(m, ch)
//
//	res, ticks := ctl.RunUntil(1_000_000)
//	fmt.Println(res.Outcome, ticks, ch.Ints()) // halted 5 [11]
//
// # Execution Model
//
// The engine is logically single-threaded: one Machine owns one fungespace and
// one stack, advanced one instruction tick at a time. Hosts drive execution in
// bounded batches via debug.Controller so an interactive loop stays
// responsive; input instructions suspend the batch with an AwaitingInput
// outcome instead of blocking a thread. A Machine and its Controller are NOT
// safe for concurrent use; reconfigure breakpoints and history only between
// batches.
package befunge
