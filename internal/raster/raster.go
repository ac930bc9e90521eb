// Package raster contains the integer rasterization algorithms shared by the drawing
// packages. Every algorithm reports each pixel exactly once, so callers drawing with an
// XOR style mode get a closed shape.
package raster

// Line reports the pixels of the segment between (x1, y1) and (x2, y2) using the
// Bresenham algorithm.
//
// The endpoints are ordered along the major axis before stepping, so Line(a, b) and
// Line(b, a) report the same pixels. A tie on the minor axis steps early: the line from
// (0,0) to (4,2) is (0,0) (1,1) (2,1) (3,2) (4,2).
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx, dy := abs(x2-x1), abs(y2-y1)

	if dx >= dy {
		// Wider than high, step along x.
		if x1 > x2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		sy := 1
		if y2 < y1 {
			sy = -1
		}
		d := 2*dy - dx
		for x, y := x1, y1; x <= x2; x++ {
			plot(x, y)
			if d >= 0 {
				y += sy
				d -= 2 * dx
			}
			d += 2 * dy
		}
		return
	}

	// Higher than wide, step along y.
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	sx := 1
	if x2 < x1 {
		sx = -1
	}
	d := 2*dx - dy
	for x, y := x1, y1; y <= y2; y++ {
		plot(x, y)
		if d >= 0 {
			x += sx
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// Circle reports the outline of a circle with radius r around the origin using the
// midpoint algorithm. A radius of 0 is a single pixel, negative radii report nothing.
func Circle(r int, plot func(dx, dy int)) {
	switch {
	case r < 0:
		return
	case r == 0:
		plot(0, 0)
		return
	}

	x, y, d := 0, r, 1-r
	for x <= y {
		octants(x, y, plot)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// octants reports the 8-way reflections of (x, y), skipping duplicates on the axes and
// on the diagonals.
func octants(x, y int, plot func(dx, dy int)) {
	switch {
	case x == 0:
		plot(0, y)
		plot(0, -y)
		plot(y, 0)
		plot(-y, 0)
	case x == y:
		plot(x, y)
		plot(-x, y)
		plot(x, -y)
		plot(-x, -y)
	default:
		plot(x, y)
		plot(-x, y)
		plot(x, -y)
		plot(-x, -y)
		plot(y, x)
		plot(-y, x)
		plot(y, -x)
		plot(-y, -x)
	}
}

// Spans returns the half widths of a filled circle with radius r: row dy (and -dy)
// covers -spans[dy] through spans[dy]. The filled circle covers the outline reported by
// Circle.
func Spans(r int) []int {
	if r < 0 {
		return nil
	}
	spans := make([]int, r+1)
	Circle(r, func(dx, dy int) {
		if dy >= 0 && dx > spans[dy] {
			spans[dy] = dx
		}
	})
	return spans
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
