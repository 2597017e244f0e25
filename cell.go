package befunge

import "strconv"

// Cell is the value held by one fungespace location. Befunge draws no
// distinction between code and data; every cell is both an instruction and a
// signed 64-bit integer.
type Cell int64

// Blank is the value of every location that has never been written
// (ASCII space, the no-op instruction).
const Blank Cell = ' '

// Coord addresses one fungespace location. Both axes span the full signed
// 64-bit range; storage is proportional to cells written, not to the range.
type Coord struct {
	X, Y int64
}

func (c Coord) String() string {
	return "(" + strconv.FormatInt(c.X, 10) + "," + strconv.FormatInt(c.Y, 10) + ")"
}

// Direction is the instruction pointer's heading. The pointer moves exactly
// one step along its direction after every tick.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Delta returns the per-tick coordinate displacement for the direction.
func (d Direction) Delta() (dx, dy int64) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Step returns the coordinate one move away in direction d. Arithmetic wraps
// at the int64 boundary, which makes pointer movement total over the whole
// address space.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
