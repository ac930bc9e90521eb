package draw

import (
	"image"
	"image/color"

	"github.com/BeatGlow/monobuf"
	"github.com/BeatGlow/monobuf/internal/raster"
	"github.com/BeatGlow/monobuf/pixel"
)

// Line draws a line between two points, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.Line(a.X, a.Y, b.X, b.Y, modeOf(c))
		return
	}
	raster.Line(a.X, a.Y, b.X, b.Y, func(x, y int) {
		dst.Set(x, y, c)
	})
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.LineAcross(x, y, w, modeOf(c))
		return
	}
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.LineDown(x, y, h, modeOf(c))
		return
	}
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect. Max is exclusive, like in [image.Rectangle].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.Rect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), modeOf(c))
		return
	}
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, rect.Dx(), c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, rect.Dx(), c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y+1, rect.Dy()-2, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y+1, rect.Dy()-2, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.FillRect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), modeOf(c))
		return
	}
	Draw(dst, rect, image.NewUniform(c), image.Point{}, Src)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	r := cornerRadius(rect, radius)
	if r == 0 {
		Rectangle(dst, rect, c)
		return
	}

	var (
		x0, y0 = rect.Min.X, rect.Min.Y
		x1, y1 = rect.Max.X - 1, rect.Max.Y - 1
	)
	HorizontalLine(dst, x0+r, y0, rect.Dx()-2*r, c)
	HorizontalLine(dst, x0+r, y1, rect.Dx()-2*r, c)
	VerticalLine(dst, x0, y0+r, rect.Dy()-2*r, c)
	VerticalLine(dst, x1, y0+r, rect.Dy()-2*r, c)

	// Points on the axes are covered by the straight edges.
	raster.Circle(r, func(dx, dy int) {
		if dx == 0 || dy == 0 {
			return
		}
		cx, cy := x0+r, y0+r
		if dx > 0 {
			cx = x1 - r
		}
		if dy > 0 {
			cy = y1 - r
		}
		dst.Set(cx+dx, cy+dy, c)
	})
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	r := cornerRadius(rect, radius)
	if r == 0 {
		Box(dst, rect, c)
		return
	}

	var (
		spans  = raster.Spans(r)
		y0, y1 = rect.Min.Y, rect.Max.Y - 1
	)
	for y := y0; y <= y1; y++ {
		var inset int
		switch {
		case y < y0+r:
			inset = r - spans[y0+r-y]
		case y > y1-r:
			inset = r - spans[y-(y1-r)]
		}
		HorizontalLine(dst, rect.Min.X+inset, y, rect.Dx()-2*inset, c)
	}
}

// Circle draws the outline of a circle around center.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.Circle(center.X, center.Y, radius, modeOf(c))
		return
	}
	raster.Circle(radius, func(dx, dy int) {
		dst.Set(center.X+dx, center.Y+dy, c)
	})
}

// Disc draws a filled circle around center.
func Disc(dst Image, center image.Point, radius int, c color.Color) {
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.FillCircle(center.X, center.Y, radius, modeOf(c))
		return
	}
	for dy, w := range raster.Spans(radius) {
		HorizontalLine(dst, center.X-w, center.Y-dy, 2*w+1, c)
		if dy != 0 {
			HorizontalLine(dst, center.X-w, center.Y+dy, 2*w+1, c)
		}
	}
}

// Polygon draws a closed outline through points.
func Polygon(dst Image, points []image.Point, c color.Color) {
	if buf, ok := dst.(*monobuf.Buffer); ok {
		buf.Polygon(points, modeOf(c))
		return
	}
	for i, a := range points {
		b := points[(i+1)%len(points)]
		raster.Line(a.X, a.Y, b.X, b.Y, func(x, y int) {
			dst.Set(x, y, c)
		})
	}
}

// cornerRadius limits radius so opposite corners never overlap.
func cornerRadius(rect image.Rectangle, radius int) int {
	limit := (min(rect.Dx(), rect.Dy()) - 1) / 2
	return max(0, min(radius, limit))
}

func modeOf(c color.Color) monobuf.DrawMode {
	if pixel.IsOn(c) {
		return monobuf.Set
	}
	return monobuf.Clear
}
