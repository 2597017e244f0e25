package space

import (
	befunge "github.com/PartyWumpus/befunge-editor"
)

// Dimensions of the dense page. Matches the Befunge-93 playfield so that
// conforming programs never touch the sparse map.
const (
	pageWidth  = 80
	pageHeight = 25
)

// Space is a sparse mapping from Coord to Cell. The zero Space is not usable;
// call New.
type Space struct {
	page  [pageWidth * pageHeight]befunge.Cell
	cells map[befunge.Coord]befunge.Cell
}

// New returns an empty fungespace. Every location reads as befunge.Blank.
func New() *Space {
	s := &Space{cells: make(map[befunge.Coord]befunge.Cell)}
	for i := range s.page {
		s.page[i] = befunge.Blank
	}
	return s
}

func onPage(c befunge.Coord) bool {
	return c.X >= 0 && c.X < pageWidth && c.Y >= 0 && c.Y < pageHeight
}

// Get returns the cell at c. Unwritten locations read as befunge.Blank; the
// read never inserts an entry.
func (s *Space) Get(c befunge.Coord) befunge.Cell {
	if onPage(c) {
		return s.page[c.Y*pageWidth+c.X]
	}
	if v, ok := s.cells[c]; ok {
		return v
	}
	return befunge.Blank
}

// Set stores v at c, overwriting any prior value. Storing the blank cell
// outside the dense page removes the entry instead, keeping the map bounded
// by the number of live non-blank cells.
func (s *Space) Set(c befunge.Coord, v befunge.Cell) {
	if onPage(c) {
		s.page[c.Y*pageWidth+c.X] = v
		return
	}
	if v == befunge.Blank {
		delete(s.cells, c)
		return
	}
	s.cells[c] = v
}

// Clear resets every location to befunge.Blank.
func (s *Space) Clear() {
	for i := range s.page {
		s.page[i] = befunge.Blank
	}
	clear(s.cells)
}

// Len reports the number of non-blank cells currently stored.
func (s *Space) Len() int {
	n := len(s.cells)
	for _, v := range s.page {
		if v != befunge.Blank {
			n++
		}
	}
	return n
}

// SparseLen reports the number of entries in the sparse map, excluding the
// dense page. Reads must never change it.
func (s *Space) SparseLen() int {
	return len(s.cells)
}

// LoadText writes src into the space relative to origin, one code point per
// cell, starting a new row at each line break. Characters are stored raw;
// nothing is reinterpreted. Both "\n" and "\r\n" terminate a row.
func (s *Space) LoadText(origin befunge.Coord, src string) {
	x, y := origin.X, origin.Y
	for _, r := range src {
		switch r {
		case '\n':
			x = origin.X
			y++
		case '\r':
			// swallowed; the following \n advances the row
		default:
			s.Set(befunge.Coord{X: x, Y: y}, befunge.Cell(r))
			x++
		}
	}
}

// ForEach calls fn for every non-blank cell. Iteration order is unspecified.
// The space must not be mutated during iteration.
func (s *Space) ForEach(fn func(befunge.Coord, befunge.Cell)) {
	for i, v := range s.page {
		if v != befunge.Blank {
			fn(befunge.Coord{X: int64(i % pageWidth), Y: int64(i / pageWidth)}, v)
		}
	}
	for c, v := range s.cells {
		fn(c, v)
	}
}

// Bounds returns the bounding box of all non-blank cells. ok is false when
// the space is empty.
func (s *Space) Bounds() (min, max befunge.Coord, ok bool) {
	s.ForEach(func(c befunge.Coord, _ befunge.Cell) {
		if !ok {
			min, max, ok = c, c, true
			return
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	})
	return min, max, ok
}
