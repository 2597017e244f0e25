package host

import "math"

// Framebuffer is an in-memory pixel target for the graphics instructions.
// Coordinates outside the configured size are discarded rather than faulting;
// programs routinely draw past the edge while animating.
type Framebuffer struct {
	w, h     int
	pix      []Color
	presents int
}

// NewFramebuffer returns a framebuffer of the given size. Zero or negative
// dimensions yield an empty buffer that swallows all draws.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{w: w, h: h, pix: make([]Color, w*h)}
}

// Size returns the configured width and height.
func (f *Framebuffer) Size() (w, h int) { return f.w, f.h }

// Presents reports how many frames have been flushed.
func (f *Framebuffer) Presents() int { return f.presents }

// At returns the pixel at (x, y), or the zero Color out of bounds.
func (f *Framebuffer) At(x, y int64) Color {
	if x < 0 || y < 0 || x >= int64(f.w) || y >= int64(f.h) {
		return Color{}
	}
	return f.pix[int(y)*f.w+int(x)]
}

// Set writes one pixel, ignoring out-of-bounds coordinates.
func (f *Framebuffer) Set(x, y int64, c Color) {
	if x < 0 || y < 0 || x >= int64(f.w) || y >= int64(f.h) {
		return
	}
	f.pix[int(y)*f.w+int(x)] = c
}

// Fill floods the whole buffer with c.
func (f *Framebuffer) Fill(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Line draws the segment from (x1, y1) to (x2, y2) inclusive using an
// integer Bresenham walk, correct in all octants. The segment is clipped to
// the buffer first, so the walk is bounded by the buffer size no matter how
// far apart the endpoints are.
func (f *Framebuffer) Line(x1, y1, x2, y2 int64, c Color) {
	x1, y1, x2, y2, ok := f.clip(x1, y1, x2, y2)
	if !ok {
		return
	}
	// Clipped endpoints lie inside the buffer; the deltas cannot overflow.
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := int64(1)
	if x1 > x2 {
		sx = -1
	}
	sy := int64(1)
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	x, y := x1, y1
	for {
		f.Set(x, y, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// clip trims the segment to the buffer rectangle with a Liang-Barsky pass.
// Segments with both endpoints already inside are returned untouched, so
// on-screen drawing stays pixel-exact; far-off endpoints are clipped in
// float64, accurate to within a pixel for any endpoint the buffer can hold.
func (f *Framebuffer) clip(x1, y1, x2, y2 int64) (cx1, cy1, cx2, cy2 int64, ok bool) {
	if f.w == 0 || f.h == 0 {
		return 0, 0, 0, 0, false
	}
	if f.contains(x1, y1) && f.contains(x2, y2) {
		return x1, y1, x2, y2, true
	}
	fx, fy := float64(x1), float64(y1)
	dx, dy := float64(x2)-fx, float64(y2)-fy
	maxX, maxY := float64(f.w-1), float64(f.h-1)
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, fx},       // x >= 0
		{dx, maxX - fx}, // x <= w-1
		{-dy, fy},       // y >= 0
		{dy, maxY - fy}, // y <= h-1
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	cx1 = clampCoord(math.Round(fx+t0*dx), f.w)
	cy1 = clampCoord(math.Round(fy+t0*dy), f.h)
	cx2 = clampCoord(math.Round(fx+t1*dx), f.w)
	cy2 = clampCoord(math.Round(fy+t1*dy), f.h)
	return cx1, cy1, cx2, cy2, true
}

func (f *Framebuffer) contains(x, y int64) bool {
	return x >= 0 && y >= 0 && x < int64(f.w) && y < int64(f.h)
}

func clampCoord(v float64, limit int) int64 {
	if v < 0 {
		return 0
	}
	if v > float64(limit-1) {
		return int64(limit - 1)
	}
	return int64(v)
}
