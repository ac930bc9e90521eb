package preview

import (
	"testing"

	"github.com/BeatGlow/monobuf"
)

func testBitmap(t *testing.T) *monobuf.Bitmap {
	t.Helper()
	// 3x3:
	//   # . #
	//   . # .
	//   # . .
	bm, err := monobuf.NewBitmapFrom([]byte{0xa0, 0x40, 0x80}, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	return bm
}

func TestString(t *testing.T) {
	tests := []struct {
		Style Style
		Want  string
	}{
		{ASCII, "#.#\n.#.\n#..\n"},
		{HalfBlock, "▀▄▀\n▀  \n"},
		{Braille, "⠕⠁\n"},
	}
	for _, test := range tests {
		t.Run(test.Style.String(), func(it *testing.T) {
			if v := String(testBitmap(it), test.Style); v != test.Want {
				it.Errorf("expected %q, got %q", test.Want, v)
			}
		})
	}
}

func TestStringBuffer(t *testing.T) {
	b, err := monobuf.New(make([]byte, 2), 8, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Line(0, 0, 7, 1, monobuf.Set)
	if v, want := String(b, ASCII), "####....\n....####\n"; v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}

func TestParseStyle(t *testing.T) {
	for _, style := range []Style{HalfBlock, Braille, ASCII} {
		v, err := ParseStyle(style.String())
		if err != nil {
			t.Fatal(err)
		}
		if v != style {
			t.Errorf("expected %s, got %s", style, v)
		}
	}
	if _, err := ParseStyle("sixel"); err == nil {
		t.Error("expected an error for an unknown style")
	}
	if v := String(testBitmap(t), Style(9)); v == "" {
		t.Error("expected an error message for an unknown style")
	}
}
