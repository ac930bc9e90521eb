package monobuf

import "fmt"

// Bitmap is a tightly packed 1-bit image: rows of (width+7)/8 bytes, MSB leftmost. The
// unused low bits of the last byte in a row are ignored.
type Bitmap struct {
	// Pix are the packed pixels.
	Pix []byte

	width  int
	height int
}

// NewBitmap allocates a cleared w by h bitmap.
func NewBitmap(w, h int) (*Bitmap, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrInvalidDimension, w, h)
	}
	return &Bitmap{
		Pix:    make([]byte, strideOf(w)*h),
		width:  w,
		height: h,
	}, nil
}

// NewBitmapFrom wraps caller owned packed pixels as a w by h bitmap.
func NewBitmapFrom(pix []byte, w, h int) (*Bitmap, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrInvalidDimension, w, h)
	}
	n := strideOf(w) * h
	if len(pix) < n {
		return nil, fmt.Errorf("%w: %dx%d bitmap needs %d bytes, got %d", ErrSizeMismatch, w, h, n, len(pix))
	}
	return &Bitmap{
		Pix:    pix[:n:n],
		width:  w,
		height: h,
	}, nil
}

// Width in pixels.
func (bm *Bitmap) Width() int { return bm.width }

// Height in pixels.
func (bm *Bitmap) Height() int { return bm.height }

// Stride is the number of bytes per row.
func (bm *Bitmap) Stride() int { return strideOf(bm.width) }

// ByteAt returns the i-th byte of the bitmap.
func (bm *Bitmap) ByteAt(i int) byte { return bm.Pix[i] }

// Get returns true if the pixel at (x, y) is set. Pixels outside the bitmap are clear.
func (bm *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= bm.width || y < 0 || y >= bm.height {
		return false
	}
	i, m := pixOffset(x, y, bm.Stride())
	return bm.Pix[i]&m != 0
}

// Set the pixel at (x, y). Pixels outside the bitmap are ignored.
func (bm *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= bm.width || y < 0 || y >= bm.height {
		return
	}
	i, m := pixOffset(x, y, bm.Stride())
	if on {
		bm.Pix[i] |= m
	} else {
		bm.Pix[i] &^= m
	}
}

func (bm *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", bm.width, bm.height)
}

// DrawBitmap copies src into the buffer with its top left corner at (x, y):
//
//   - Set replaces the covered pixels with the bitmap
//   - Clear clears the pixels where the bitmap is set
//   - Toggle flips the pixels where the bitmap is set
//
// Pixels falling outside the buffer are clipped.
func (b *Buffer) DrawBitmap(x, y int, src Source, mode DrawMode) {
	if !mode.valid() {
		return
	}
	b.blit(x, y, src, func(dx, dy int, on bool) {
		switch {
		case mode == Set:
			b.put(dx, dy, on)
		case on:
			i, m := pixOffset(dx, dy, b.columns)
			mode.apply(&b.pix[i], m)
		}
	})
}

// BlendBitmap merges src into the buffer with its top left corner at (x, y), combining
// every covered pixel with the bitmap using mode. Pixels falling outside the buffer are
// clipped.
func (b *Buffer) BlendBitmap(x, y int, src Source, mode CombineMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: combine mode %d", ErrInvalidMode, mode)
	}
	b.blit(x, y, src, func(dx, dy int, on bool) {
		i, m := pixOffset(dx, dy, b.columns)
		var v byte
		if on {
			v = m
		}
		b.pix[i] = b.pix[i]&^m | mode.combine(b.pix[i], v)&m
	})
	return nil
}

func (b *Buffer) blit(x, y int, src Source, f func(dx, dy int, on bool)) {
	w, h := src.Width(), src.Height()
	for sy := max(0, -y); sy < h && y+sy < b.height; sy++ {
		for sx := max(0, -x); sx < w && x+sx < b.width; sx++ {
			f(x+sx, y+sy, sourceBit(src, sx, sy))
		}
	}
}

// GetBitmap copies the w by h region at (x, y) into the top left of dst. Pixels of the
// region outside the buffer read as clear. The destination must be at least w by h
// pixels.
func (b *Buffer) GetBitmap(x, y, w, h int, dst *Bitmap) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: region %dx%d", ErrInvalidDimension, w, h)
	}
	if dst == nil || dst.width < w || dst.height < h {
		return fmt.Errorf("%w: destination cannot hold %dx%d pixels", ErrSizeMismatch, w, h)
	}
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			dst.Set(sx, sy, b.in(x+sx, y+sy) && b.get(x+sx, y+sy))
		}
	}
	return nil
}

// Capture copies the region at (x, y) the size of dst into dst.
func (b *Buffer) Capture(x, y int, dst *Bitmap) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrSizeMismatch)
	}
	return b.GetBitmap(x, y, dst.width, dst.height, dst)
}
