package monobuf

import (
	"image"

	"github.com/BeatGlow/monobuf/internal/raster"
)

// SetPixel applies mode to the pixel at (x, y). Pixels outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int, mode DrawMode) {
	if !b.in(x, y) {
		return
	}
	i, m := pixOffset(x, y, b.columns)
	mode.apply(&b.pix[i], m)
}

// GetPixel returns true if the pixel at (x, y) is set. Pixels outside the buffer are
// clear.
func (b *Buffer) GetPixel(x, y int) bool {
	return b.in(x, y) && b.get(x, y)
}

// LineAcross draws a horizontal line of w pixels starting at (x, y) to the right. A
// negative w draws to the left.
func (b *Buffer) LineAcross(x, y, w int, mode DrawMode) {
	if y < 0 || y >= b.height {
		return
	}
	var (
		x0, x1 = span(x, w, b.width)
		row    = y * b.columns
	)
	for x0 < x1 {
		var (
			i     = x0 >> 3
			end   = min(x1, (i+1)<<3)
			first = uint(x0 & 7)
			last  = uint(end - i<<3)
		)
		mode.apply(&b.pix[row+i], byte(0xff)>>first&(byte(0xff)<<(8-last)))
		x0 = end
	}
}

// LineDown draws a vertical line of h pixels starting at (x, y) downwards. A negative h
// draws upwards.
func (b *Buffer) LineDown(x, y, h int, mode DrawMode) {
	if x < 0 || x >= b.width {
		return
	}
	y0, y1 := span(y, h, b.height)
	if y0 >= y1 {
		return
	}
	i, m := pixOffset(x, y0, b.columns)
	for ; y0 < y1; y0++ {
		mode.apply(&b.pix[i], m)
		i += b.columns
	}
}

// span clips the run of n pixels starting at p to [0, limit) and returns it as the
// half-open range [lo, hi). A negative n runs backwards from p. The run is clipped
// before p and n are added, so huge lengths do not overflow.
func span(p, n, limit int) (lo, hi int) {
	if n < 0 {
		if p < 0 {
			return 0, 0
		}
		return max(p+n+1, 0), min(p, limit-1) + 1
	}
	if p < 0 {
		hi = p + n
	} else {
		hi = p + min(n, limit-p)
	}
	return max(p, 0), min(hi, limit)
}

// Line draws a line between (x1, y1) and (x2, y2) using the Bresenham algorithm. The
// pixels drawn do not depend on the order of the endpoints; on a tie the minor axis
// steps early, so (0,0)-(4,2) draws (0,0) (1,1) (2,1) (3,2) (4,2).
func (b *Buffer) Line(x1, y1, x2, y2 int, mode DrawMode) {
	switch {
	case y1 == y2:
		b.LineAcross(min(x1, x2), y1, abs(x2-x1)+1, mode)
	case x1 == x2:
		b.LineDown(x1, min(y1, y2), abs(y2-y1)+1, mode)
	default:
		raster.Line(x1, y1, x2, y2, func(x, y int) {
			b.SetPixel(x, y, mode)
		})
	}
}

// Rect draws the outline of the w by h rectangle at (x, y).
func (b *Buffer) Rect(x, y, w, h int, mode DrawMode) {
	if w <= 0 || h <= 0 {
		return
	}
	b.LineAcross(x, y, w, mode)
	if h > 1 {
		b.LineAcross(x, y+h-1, w, mode)
	}
	if h > 2 {
		b.LineDown(x, y+1, h-2, mode)
		if w > 1 {
			b.LineDown(x+w-1, y+1, h-2, mode)
		}
	}
}

// FillRect draws the filled w by h rectangle at (x, y).
func (b *Buffer) FillRect(x, y, w, h int, mode DrawMode) {
	if w <= 0 || h <= 0 {
		return
	}
	y0, y1 := span(y, h, b.height)
	for ; y0 < y1; y0++ {
		b.LineAcross(x, y0, w, mode)
	}
}

// Circle draws the outline of a circle around (cx, cy).
func (b *Buffer) Circle(cx, cy, r int, mode DrawMode) {
	raster.Circle(r, func(dx, dy int) {
		b.SetPixel(cx+dx, cy+dy, mode)
	})
}

// FillCircle draws a filled circle around (cx, cy).
func (b *Buffer) FillCircle(cx, cy, r int, mode DrawMode) {
	for dy, hw := range raster.Spans(r) {
		b.LineAcross(cx-hw, cy+dy, 2*hw+1, mode)
		if dy > 0 {
			b.LineAcross(cx-hw, cy-dy, 2*hw+1, mode)
		}
	}
}

// Tri draws the outline of a triangle.
func (b *Buffer) Tri(x0, y0, x1, y1, x2, y2 int, mode DrawMode) {
	b.Polygon([]image.Point{{x0, y0}, {x1, y1}, {x2, y2}}, mode)
}

// Quad draws the outline of a quadrilateral with its vertices in the given order.
func (b *Buffer) Quad(x0, y0, x1, y1, x2, y2, x3, y3 int, mode DrawMode) {
	b.Polygon([]image.Point{{x0, y0}, {x1, y1}, {x2, y2}, {x3, y3}}, mode)
}

// Polygon draws the closed outline through points. Every outline pixel is drawn once,
// even where edges meet or retrace each other, so a Toggle outline stays closed.
func (b *Buffer) Polygon(points []image.Point, mode DrawMode) {
	if len(points) == 0 {
		return
	}
	if mode != Toggle {
		for i, p := range points {
			q := points[(i+1)%len(points)]
			raster.Line(p.X, p.Y, q.X, q.Y, func(x, y int) {
				b.SetPixel(x, y, mode)
			})
		}
		return
	}

	// Edges of a thin polygon share more than their vertices.
	drawn := make(map[image.Point]struct{})
	for i, p := range points {
		q := points[(i+1)%len(points)]
		raster.Line(p.X, p.Y, q.X, q.Y, func(x, y int) {
			pt := image.Pt(x, y)
			if _, ok := drawn[pt]; ok {
				return
			}
			drawn[pt] = struct{}{}
			b.SetPixel(x, y, mode)
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
