package engine

import (
	befunge "github.com/PartyWumpus/befunge-editor"
)

// Stack is the interpreter's data stack. Underflow is defined, not an error:
// popping an empty stack yields zero and leaves it empty, matching the
// language's forgiving semantics. All operations are amortized O(1).
type Stack struct {
	cells []befunge.Cell
}

// Push places v on top of the stack.
func (s *Stack) Push(v befunge.Cell) {
	s.cells = append(s.cells, v)
}

// Pop removes and returns the top value, or 0 when empty.
func (s *Stack) Pop() befunge.Cell {
	n := len(s.cells)
	if n == 0 {
		return 0
	}
	v := s.cells[n-1]
	s.cells = s.cells[:n-1]
	return v
}

// Peek returns the top value without removing it, or 0 when empty.
func (s *Stack) Peek() befunge.Cell {
	if n := len(s.cells); n > 0 {
		return s.cells[n-1]
	}
	return 0
}

// Dup duplicates the top value. An empty stack duplicates the implicit zero,
// ending up holding two zeros.
func (s *Stack) Dup() {
	v := s.Pop()
	s.Push(v)
	s.Push(v)
}

// Swap exchanges the top two values, treating missing ones as zero.
func (s *Stack) Swap() {
	a := s.Pop()
	b := s.Pop()
	s.Push(a)
	s.Push(b)
}

// Drop discards the top value, if any.
func (s *Stack) Drop() {
	s.Pop()
}

// Depth reports the number of values on the stack.
func (s *Stack) Depth() int {
	return len(s.cells)
}

// Snapshot returns a copy of the stack contents, bottom first.
func (s *Stack) Snapshot() []befunge.Cell {
	out := make([]befunge.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Restore replaces the stack contents with vs (bottom first), copying.
func (s *Stack) Restore(vs []befunge.Cell) {
	s.cells = s.cells[:0]
	s.cells = append(s.cells, vs...)
}

// Reset empties the stack, keeping its capacity.
func (s *Stack) Reset() {
	s.cells = s.cells[:0]
}
