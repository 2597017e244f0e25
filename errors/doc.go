// Package errors provides the structured error type used across the engine.
//
// Nothing that happens inside a running program is an error here: stack
// underflow and division by zero resolve to zero by language policy, and
// controller outcomes like hitting a breakpoint or exhausting a tick budget
// are result values. Errors are reserved for the host-facing boundaries:
// program loading, breakpoint configuration and history operations.
package errors
