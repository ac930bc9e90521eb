package monobuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestClear(t *testing.T) {
	b := newTestBuffer(t, 32, 8)
	randomize(b, 3)
	b.Clear()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetPixel(x, y) {
				t.Fatalf("pixel (%d,%d) is set after clear", x, y)
			}
		}
	}
}

func TestFill(t *testing.T) {
	b := newTestBuffer(t, 16, 4)
	b.Fill(0xaa)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if v, want := b.GetPixel(x, y), x%2 == 0; v != want {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, v, want)
			}
		}
	}
}

func TestInvert(t *testing.T) {
	b := newTestBuffer(t, 32, 8)
	randomize(b, 4)
	before := append([]byte(nil), b.Pix()...)

	b.Invert()
	for i, v := range b.Pix() {
		if v != ^before[i] {
			t.Fatalf("byte %d is %#02x, expected %#02x", i, v, ^before[i])
		}
	}
	b.Invert()
	if !bytes.Equal(b.Pix(), before) {
		t.Error("expected double invert to restore the buffer")
	}
}

func TestOverwrite(t *testing.T) {
	var (
		dst = newTestBuffer(t, 16, 4)
		src = newTestBuffer(t, 16, 4)
	)
	randomize(src, 5)
	if err := dst.Overwrite(src); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Pix(), src.Pix()) {
		t.Error("expected destination to equal the source")
	}

	// Raw region of the same size.
	raw, err := NewBitmapFrom([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 16, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err = dst.Overwrite(raw); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Pix(), raw.Pix) {
		t.Errorf("expected % x, got % x", raw.Pix, dst.Pix())
	}
}

func TestOverwriteSizeMismatch(t *testing.T) {
	var (
		dst = newTestBuffer(t, 16, 4)
		src = newTestBuffer(t, 16, 5)
	)
	randomize(dst, 6)
	randomize(src, 7)
	var (
		dstBefore = append([]byte(nil), dst.Pix()...)
		srcBefore = append([]byte(nil), src.Pix()...)
	)
	if err := dst.Overwrite(src); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected %v, got %v", ErrSizeMismatch, err)
	}
	if err := src.Overwrite(dst); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected %v, got %v", ErrSizeMismatch, err)
	}
	if !bytes.Equal(dst.Pix(), dstBefore) || !bytes.Equal(src.Pix(), srcBefore) {
		t.Error("expected a failed overwrite to leave both buffers untouched")
	}
	if err := dst.Overwrite(nil); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected %v for a nil source, got %v", ErrSizeMismatch, err)
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		Mode CombineMode
		Want byte
	}{
		{Or, 0xee},
		{And, 0x88},
		{Xor, 0x66},
	}
	for _, test := range tests {
		t.Run(test.Mode.String(), func(it *testing.T) {
			var (
				dst = newTestBuffer(it, 8, 1)
				src = newTestBuffer(it, 8, 1)
			)
			dst.Fill(0xcc)
			src.Fill(0xaa)
			if err := dst.Overlay(src, test.Mode); err != nil {
				it.Fatal(err)
			}
			if v := dst.Pix()[0]; v != test.Want {
				it.Errorf("expected %#02x, got %#02x", test.Want, v)
			}
		})
	}
}

func TestOverlayXorSelfInverse(t *testing.T) {
	var (
		dst = newTestBuffer(t, 32, 8)
		src = newTestBuffer(t, 32, 8)
	)
	randomize(dst, 8)
	randomize(src, 9)
	before := append([]byte(nil), dst.Pix()...)
	for i := 0; i < 2; i++ {
		if err := dst.Overlay(src, Xor); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(dst.Pix(), before) {
		t.Error("expected xor overlay applied twice to be the identity")
	}
}

func TestOverlayErrors(t *testing.T) {
	var (
		dst = newTestBuffer(t, 16, 4)
		src = newTestBuffer(t, 8, 4)
	)
	if err := dst.Overlay(src, Or); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected %v, got %v", ErrSizeMismatch, err)
	}
	if err := dst.Overlay(dst, CombineMode(9)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected %v, got %v", ErrInvalidMode, err)
	}
}
