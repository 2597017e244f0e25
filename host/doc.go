// Package host defines the I/O and graphics capability the embedding
// application hands to the interpreter.
//
// The engine never performs console or display I/O itself; every input,
// output and framebuffer instruction is translated into a call on a Channel.
// Input is non-blocking by contract: a read that has no value available
// reports ok=false and the engine suspends the current batch instead of
// stalling a thread, so a cooperative host loop can feed values in between
// batches.
//
// Two implementations ship with the package: Null for headless runs and
// Buffered for tests and batch hosts, the latter backed by an in-memory
// Framebuffer.
package host
