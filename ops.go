package monobuf

import "fmt"

// Clear all pixels.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = 0x00
	}
}

// Fill sets every byte of the buffer to value. A value other than 0x00 or 0xff gives a
// vertically striped pattern.
func (b *Buffer) Fill(value byte) {
	for i := range b.pix {
		b.pix[i] = value
	}
}

// Invert all pixels.
func (b *Buffer) Invert() {
	for i := range b.pix {
		b.pix[i] = ^b.pix[i]
	}
}

// Overwrite copies src into the buffer byte for byte. The source must span exactly
// Size() bytes.
func (b *Buffer) Overwrite(src Source) error {
	if err := b.sameSize(src); err != nil {
		return err
	}
	for i := range b.pix {
		b.pix[i] = src.ByteAt(i)
	}
	return nil
}

// Overlay merges src into the buffer byte for byte using mode. The source must span
// exactly Size() bytes.
func (b *Buffer) Overlay(src Source, mode CombineMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: combine mode %d", ErrInvalidMode, mode)
	}
	if err := b.sameSize(src); err != nil {
		return err
	}
	for i := range b.pix {
		b.pix[i] = mode.combine(b.pix[i], src.ByteAt(i))
	}
	return nil
}

func (b *Buffer) sameSize(src Source) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrSizeMismatch)
	}
	if n := sourceSize(src); n != b.size {
		return fmt.Errorf("%w: source spans %d bytes, buffer %d", ErrSizeMismatch, n, b.size)
	}
	return nil
}
