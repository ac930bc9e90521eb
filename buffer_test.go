package monobuf

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

func newTestBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := New(make([]byte, w/8*h), w, h)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func randomize(b *Buffer, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for i := range b.Pix() {
		b.Pix()[i] = byte(r.Intn(256))
	}
}

// snapshot returns the pixels of b indexed [y][x].
func snapshot(b *Buffer) [][]bool {
	pixels := make([][]bool, b.Height())
	for y := range pixels {
		pixels[y] = make([]bool, b.Width())
		for x := range pixels[y] {
			pixels[y][x] = b.GetPixel(x, y)
		}
	}
	return pixels
}

func assertPixels(t *testing.T, b *Buffer, want [][]bool) {
	t.Helper()
	for y := range want {
		for x := range want[y] {
			if v := b.GetPixel(x, y); v != want[y][x] {
				t.Fatalf("pixel (%d,%d) is %t, expected %t", x, y, v, want[y][x])
			}
		}
	}
}

func setPixels(b *Buffer) []image.Point {
	var points []image.Point
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetPixel(x, y) {
				points = append(points, image.Pt(x, y))
			}
		}
	}
	return points
}

func TestNew(t *testing.T) {
	tests := []struct {
		Name   string
		Size   int
		Width  int
		Height int
		Err    error
	}{
		{"128x64", 1024, 128, 64, nil},
		{"8x1", 1, 8, 1, nil},
		{"larger region", 2048, 128, 64, nil},
		{"width not a multiple of 8", 1024, 127, 64, ErrInvalidDimension},
		{"zero width", 0, 0, 64, ErrInvalidDimension},
		{"negative height", 16, 128, -1, ErrInvalidDimension},
		{"short region", 1023, 128, 64, ErrSizeMismatch},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			b, err := New(make([]byte, test.Size), test.Width, test.Height)
			if test.Err != nil {
				if !errors.Is(err, test.Err) {
					it.Fatalf("expected error %v, got %v", test.Err, err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if v := b.Width(); v != test.Width {
				it.Errorf("expected width %d, got %d", test.Width, v)
			}
			if v := b.Height(); v != test.Height {
				it.Errorf("expected height %d, got %d", test.Height, v)
			}
			if v := b.Columns(); v != test.Width/8 {
				it.Errorf("expected %d columns, got %d", test.Width/8, v)
			}
			if v, want := b.Size(), test.Width/8*test.Height; v != want || len(b.Pix()) != want {
				it.Errorf("expected size %d, got %d (%d bytes)", want, v, len(b.Pix()))
			}
		})
	}
}

func TestAddress(t *testing.T) {
	b := newTestBuffer(t, 16, 4)
	tests := []struct {
		X, Y  int
		Index int
		Mask  byte
	}{
		{0, 0, 0, 0x80},
		{7, 0, 0, 0x01},
		{8, 0, 1, 0x80},
		{3, 2, 4, 0x10},
		{15, 3, 7, 0x01},
	}
	for _, test := range tests {
		i, m, err := b.Address(test.X, test.Y)
		if err != nil {
			t.Fatal(err)
		}
		if i != test.Index || m != test.Mask {
			t.Errorf("pixel (%d,%d) expected at %d/%#02x, got %d/%#02x", test.X, test.Y, test.Index, test.Mask, i, m)
		}
	}

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {16, 0}, {0, 4}} {
		if _, _, err := b.Address(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("pixel %s: expected %v, got %v", p, ErrOutOfBounds, err)
		}
	}
}

func TestRebind(t *testing.T) {
	var (
		first  = make([]byte, 8)
		second = make([]byte, 8)
	)
	b, err := New(first, 16, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err = b.Rebind(second); err != nil {
		t.Fatal(err)
	}
	b.SetPixel(0, 0, Set)
	if first[0] != 0 {
		t.Errorf("expected old region to be untouched, got %#02x", first[0])
	}
	if second[0] != 0x80 {
		t.Errorf("expected new region to hold the pixel, got %#02x", second[0])
	}

	if err = b.Rebind(make([]byte, 7)); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected %v, got %v", ErrSizeMismatch, err)
	}
	if !b.GetPixel(0, 0) {
		t.Error("expected failed rebind to keep the previous region")
	}
}

func TestBufferBitmapView(t *testing.T) {
	b := newTestBuffer(t, 16, 4)
	view := b.Bitmap()
	if view.Width() != 16 || view.Height() != 4 || view.Stride() != 2 {
		t.Fatalf("unexpected view %s stride %d", view, view.Stride())
	}
	view.Set(9, 3, true)
	if !b.GetPixel(9, 3) {
		t.Error("expected write through view to be visible in the buffer")
	}
	b.SetPixel(1, 1, Set)
	if !view.Get(1, 1) {
		t.Error("expected buffer write to be visible in the view")
	}
}
