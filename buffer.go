package monobuf

import (
	"fmt"
	"image"
)

// Source is a readable packed pixel source.
//
// Rows are Width() pixels wide, packed MSB first into (Width()+7)/8 bytes; ByteAt
// returns byte i of that layout.
type Source interface {
	// Width in pixels.
	Width() int

	// Height in pixels.
	Height() int

	// ByteAt returns the i-th byte of the packed pixels.
	ByteAt(i int) byte
}

// Buffer is a 1-bit per pixel framebuffer over caller owned memory.
//
// The Buffer does not own its backing storage; copying a Buffer value copies the view,
// both copies draw into the same bytes.
type Buffer struct {
	pix     []byte
	width   int
	height  int
	columns int
	size    int
}

// New binds a Buffer of width by height pixels to pix. The width must be a multiple of 8
// and pix must hold at least width/8*height bytes; only that many bytes are used.
func New(pix []byte, width, height int) (*Buffer, error) {
	if width <= 0 || width%8 != 0 {
		return nil, fmt.Errorf("%w: width %d is not a positive multiple of 8", ErrInvalidDimension, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}

	b := &Buffer{
		width:   width,
		height:  height,
		columns: width / 8,
	}
	b.size = b.columns * height
	if err := b.Rebind(pix); err != nil {
		return nil, err
	}
	logger.Debug("monobuf: new buffer", "width", width, "height", height, "size", b.size)
	return b, nil
}

// Width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Columns is the number of bytes per row.
func (b *Buffer) Columns() int { return b.columns }

// Size is the number of bytes the buffer spans.
func (b *Buffer) Size() int { return b.size }

// Pix returns the backing bytes. Writes through the returned slice are visible to the
// Buffer.
func (b *Buffer) Pix() []byte { return b.pix }

// ByteAt returns the i-th byte of the buffer.
func (b *Buffer) ByteAt(i int) byte { return b.pix[i] }

// Rebind points the buffer at another memory region without copying. The region must
// hold at least Size() bytes and must stay valid while the buffer uses it.
func (b *Buffer) Rebind(pix []byte) error {
	if len(pix) < b.size {
		return fmt.Errorf("%w: region holds %d bytes, need %d", ErrSizeMismatch, len(pix), b.size)
	}
	b.pix = pix[:b.size:b.size]
	logger.Debug("monobuf: rebind", "size", b.size)
	return nil
}

// Bitmap returns a Bitmap view sharing the buffer's memory.
func (b *Buffer) Bitmap() *Bitmap {
	return &Bitmap{
		Pix:    b.pix,
		width:  b.width,
		height: b.height,
	}
}

// Address maps the pixel (x, y) to the index of the byte holding it and the bit mask
// selecting it within that byte.
func (b *Buffer) Address(x, y int) (index int, mask byte, err error) {
	if !b.in(x, y) {
		return 0, 0, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	index, mask = pixOffset(x, y, b.columns)
	return
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// get reads an in-bounds pixel.
func (b *Buffer) get(x, y int) bool {
	i, m := pixOffset(x, y, b.columns)
	return b.pix[i]&m != 0
}

// put writes an in-bounds pixel.
func (b *Buffer) put(x, y int, on bool) {
	i, m := pixOffset(x, y, b.columns)
	if on {
		b.pix[i] |= m
	} else {
		b.pix[i] &^= m
	}
}

// pixOffset is the packing of every pixel source: rows of stride bytes, MSB leftmost.
func pixOffset(x, y, stride int) (int, byte) {
	return y*stride + x>>3, 0x80 >> uint(x&7)
}

// strideOf returns the bytes per row of a tightly packed row of w pixels.
func strideOf(w int) int {
	return (w + 7) >> 3
}

func sourceSize(s Source) int {
	return strideOf(s.Width()) * s.Height()
}

// PixelAt reports whether the pixel at (x, y) of s is set. Pixels outside s are clear.
func PixelAt(s Source, x, y int) bool {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return false
	}
	return sourceBit(s, x, y)
}

func sourceBit(s Source, x, y int) bool {
	i, m := pixOffset(x, y, strideOf(s.Width()))
	return s.ByteAt(i)&m != 0
}

// Interface checks.
var (
	_ Source = (*Buffer)(nil)
	_ Source = (*Bitmap)(nil)
)
