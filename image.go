package monobuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/monobuf/pixel"
)

// Bounds is the buffer bounding box.
func (b *Buffer) Bounds() image.Rectangle {
	return b.rect()
}

// ColorModel is [pixel.MonoModel].
func (b *Buffer) ColorModel() color.Model {
	return pixel.MonoModel
}

// At returns [pixel.On] or [pixel.Off] for pixels inside the buffer and transparent
// outside.
func (b *Buffer) At(x, y int) color.Color {
	if !b.in(x, y) {
		return color.Transparent
	}
	if b.get(x, y) {
		return pixel.On
	}
	return pixel.Off
}

// Set the pixel at (x, y) to c converted by [pixel.MonoModel].
func (b *Buffer) Set(x, y int, c color.Color) {
	if pixel.IsOn(c) {
		b.SetPixel(x, y, Set)
	} else {
		b.SetPixel(x, y, Clear)
	}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%d,%d)", b.width, b.height)
}

var _ draw.Image = (*Buffer)(nil)
