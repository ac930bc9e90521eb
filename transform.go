package monobuf

import (
	"fmt"
	"math/bits"
)

// ScrollUp moves the content n pixels up; rows scrolled in at the bottom are cleared.
// A negative n scrolls down. |n| may not exceed the height.
func (b *Buffer) ScrollUp(n int) error {
	return b.ScrollRegionUp(0, 0, b.width, b.height, n)
}

// ScrollDown moves the content n pixels down, see [Buffer.ScrollUp].
func (b *Buffer) ScrollDown(n int) error {
	return b.ScrollRegionUp(0, 0, b.width, b.height, -n)
}

// ScrollLeft moves the content n pixels left; columns scrolled in at the right are
// cleared. A negative n scrolls right. |n| may not exceed the width.
func (b *Buffer) ScrollLeft(n int) error {
	return b.ScrollRegionLeft(0, 0, b.width, b.height, n)
}

// ScrollRight moves the content n pixels right, see [Buffer.ScrollLeft].
func (b *Buffer) ScrollRight(n int) error {
	return b.ScrollRegionLeft(0, 0, b.width, b.height, -n)
}

// ScrollRegionUp scrolls the w by h region at (x, y) n pixels up. Only pixels inside the
// region are affected.
func (b *Buffer) ScrollRegionUp(x, y, w, h, n int) error {
	if err := b.region(x, y, w, h); err != nil {
		return err
	}
	if n < -h || n > h {
		return b.reject(fmt.Errorf("%w: scroll by %d in a region %d pixels high", ErrOutOfBounds, n, h))
	}
	switch {
	case n == 0 || w == 0:
	case x%8 == 0 && w%8 == 0:
		b.scrollRows(x/8, y, w/8, h, n)
	default:
		ordered(n, h, func(r int) {
			for c := 0; c < w; c++ {
				sr := r + n
				b.put(x+c, y+r, sr >= 0 && sr < h && b.get(x+c, y+sr))
			}
		})
	}
	return nil
}

// ScrollRegionDown scrolls the w by h region at (x, y) n pixels down.
func (b *Buffer) ScrollRegionDown(x, y, w, h, n int) error {
	return b.ScrollRegionUp(x, y, w, h, -n)
}

// ScrollRegionLeft scrolls the w by h region at (x, y) n pixels left. Only pixels inside
// the region are affected.
func (b *Buffer) ScrollRegionLeft(x, y, w, h, n int) error {
	if err := b.region(x, y, w, h); err != nil {
		return err
	}
	if n < -w || n > w {
		return b.reject(fmt.Errorf("%w: scroll by %d in a region %d pixels wide", ErrOutOfBounds, n, w))
	}
	switch {
	case n == 0 || h == 0:
	case x == 0 && w == b.width:
		for r := y; r < y+h; r++ {
			row := b.pix[r*b.columns : (r+1)*b.columns]
			if n > 0 {
				shiftRowLeft(row, n)
			} else {
				shiftRowRight(row, -n)
			}
		}
	default:
		for r := y; r < y+h; r++ {
			ordered(n, w, func(c int) {
				sc := c + n
				b.put(x+c, r, sc >= 0 && sc < w && b.get(x+sc, r))
			})
		}
	}
	return nil
}

// ScrollRegionRight scrolls the w by h region at (x, y) n pixels right.
func (b *Buffer) ScrollRegionRight(x, y, w, h, n int) error {
	return b.ScrollRegionLeft(x, y, w, h, -n)
}

// scrollRows moves whole byte columns [col, col+cols) of rows [y, y+h) up by n rows.
func (b *Buffer) scrollRows(col, y, cols, h, n int) {
	ordered(n, h, func(r int) {
		dst := b.pix[(y+r)*b.columns+col:][:cols]
		if sr := r + n; sr >= 0 && sr < h {
			copy(dst, b.pix[(y+sr)*b.columns+col:][:cols])
		} else {
			for i := range dst {
				dst[i] = 0x00
			}
		}
	})
}

// shiftRowLeft moves the bits of row n positions towards the MSB of row[0].
func shiftRowLeft(row []byte, n int) {
	var (
		skip  = n >> 3
		shift = uint(n & 7)
	)
	for i := range row {
		var hi, lo byte
		if j := i + skip; j < len(row) {
			hi = row[j]
			if j+1 < len(row) {
				lo = row[j+1]
			}
		}
		if shift == 0 {
			row[i] = hi
		} else {
			row[i] = hi<<shift | lo>>(8-shift)
		}
	}
}

// shiftRowRight moves the bits of row n positions towards the LSB of the last byte.
func shiftRowRight(row []byte, n int) {
	var (
		skip  = n >> 3
		shift = uint(n & 7)
	)
	for i := len(row) - 1; i >= 0; i-- {
		var cur, prev byte
		if j := i - skip; j >= 0 {
			cur = row[j]
			if j > 0 {
				prev = row[j-1]
			}
		}
		if shift == 0 {
			row[i] = cur
		} else {
			row[i] = cur>>shift | prev<<(8-shift)
		}
	}
}

// FlipV mirrors the buffer vertically.
func (b *Buffer) FlipV() {
	_ = b.FlipRegionV(0, 0, b.width, b.height)
}

// FlipH mirrors the buffer horizontally.
func (b *Buffer) FlipH() {
	_ = b.FlipRegionH(0, 0, b.width, b.height)
}

// FlipRegionV mirrors the w by h region at (x, y) vertically.
func (b *Buffer) FlipRegionV(x, y, w, h int) error {
	if err := b.region(x, y, w, h); err != nil {
		return err
	}
	for top, bottom := y, y+h-1; top < bottom; top, bottom = top+1, bottom-1 {
		if x%8 == 0 && w%8 == 0 {
			var (
				a = b.pix[top*b.columns+x/8:][:w/8]
				c = b.pix[bottom*b.columns+x/8:][:w/8]
			)
			for i := range a {
				a[i], c[i] = c[i], a[i]
			}
			continue
		}
		for c := x; c < x+w; c++ {
			v := b.get(c, top)
			b.put(c, top, b.get(c, bottom))
			b.put(c, bottom, v)
		}
	}
	return nil
}

// FlipRegionH mirrors the w by h region at (x, y) horizontally.
func (b *Buffer) FlipRegionH(x, y, w, h int) error {
	if err := b.region(x, y, w, h); err != nil {
		return err
	}
	for r := y; r < y+h; r++ {
		if x == 0 && w == b.width {
			row := b.pix[r*b.columns : (r+1)*b.columns]
			for i, j := 0, len(row)-1; i <= j; i, j = i+1, j-1 {
				row[i], row[j] = bits.Reverse8(row[j]), bits.Reverse8(row[i])
			}
			continue
		}
		for left, right := x, x+w-1; left < right; left, right = left+1, right-1 {
			v := b.get(left, r)
			b.put(left, r, b.get(right, r))
			b.put(right, r, v)
		}
	}
	return nil
}

// RotateRight rotates a square buffer 90° clockwise.
func (b *Buffer) RotateRight() error {
	return b.RotateRegionRight(0, 0, b.width, b.height)
}

// RotateLeft rotates a square buffer 90° counter clockwise.
func (b *Buffer) RotateLeft() error {
	return b.RotateRegionLeft(0, 0, b.width, b.height)
}

// RotateRegionRight rotates the w by h region at (x, y) 90° clockwise. The region must
// be square.
func (b *Buffer) RotateRegionRight(x, y, w, h int) error {
	return b.rotate(x, y, w, h, true)
}

// RotateRegionLeft rotates the w by h region at (x, y) 90° counter clockwise. The region
// must be square.
func (b *Buffer) RotateRegionLeft(x, y, w, h int) error {
	return b.rotate(x, y, w, h, false)
}

func (b *Buffer) rotate(x, y, w, h int, clockwise bool) error {
	if err := b.region(x, y, w, h); err != nil {
		return err
	}
	if w != h {
		return b.reject(fmt.Errorf("%w: rotating a %dx%d region, need a square", ErrInvalidDimension, w, h))
	}

	// Source and destination overlap, work from a copy.
	tmp, err := NewBitmap(w, h)
	if err != nil {
		return err
	}
	if err = b.GetBitmap(x, y, w, h, tmp); err != nil {
		return err
	}
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			dx, dy := w-1-sy, sx
			if !clockwise {
				dx, dy = sy, w-1-sx
			}
			b.put(x+dx, y+dy, tmp.Get(sx, sy))
		}
	}
	return nil
}

// region validates that the w by h region at (x, y) lies within the buffer.
func (b *Buffer) region(x, y, w, h int) error {
	if w < 0 || h < 0 {
		return b.reject(fmt.Errorf("%w: region %dx%d", ErrInvalidDimension, w, h))
	}
	if x < 0 || y < 0 || w > b.width-x || h > b.height-y {
		return b.reject(fmt.Errorf("%w: region %dx%d at (%d,%d) outside %dx%d", ErrOutOfBounds, w, h, x, y, b.width, b.height))
	}
	return nil
}

func (b *Buffer) reject(err error) error {
	logger.Debug("monobuf: transform rejected", "error", err)
	return err
}

// ordered calls f for 0..count-1 such that index i+n is read before it is written:
// ascending for n >= 0, descending otherwise.
func ordered(n, count int, f func(i int)) {
	if n >= 0 {
		for i := 0; i < count; i++ {
			f(i)
		}
		return
	}
	for i := count - 1; i >= 0; i-- {
		f(i)
	}
}
