// Package preview renders packed pixel sources as text for terminals and tests.
package preview

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BeatGlow/monobuf"
)

// Style selects the characters used to draw pixels.
type Style int

// Styles.
const (
	// HalfBlock packs two rows of pixels into each line using block elements.
	HalfBlock Style = iota

	// Braille packs a 2x4 cell of pixels into each braille character.
	Braille

	// ASCII draws one character per pixel: '#' for set pixels and '.' for clear ones.
	ASCII
)

func (s Style) String() string {
	switch s {
	case HalfBlock:
		return "block"
	case Braille:
		return "braille"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle returns the style named s.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "block", "halfblock":
		return HalfBlock, nil
	case "braille":
		return Braille, nil
	case "ascii", "text":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("preview: unknown style %q", s)
	}
}

var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// Write renders src to w, one line of text per line of characters.
func Write(w io.Writer, src monobuf.Source, style Style) error {
	var (
		out    = bufio.NewWriter(w)
		width  = src.Width()
		height = src.Height()
		at     = func(x, y int) bool { return monobuf.PixelAt(src, x, y) }
	)
	switch style {
	case HalfBlock:
		for y := 0; y < height; y += 2 {
			for x := 0; x < width; x++ {
				var i int
				if at(x, y) {
					i |= 1
				}
				if at(x, y+1) {
					i |= 2
				}
				out.WriteRune(halfBlocks[i])
			}
			out.WriteByte('\n')
		}
	case Braille:
		for y := 0; y < height; y += 4 {
			for x := 0; x < width; x += 2 {
				out.WriteRune(brailleAt(at, x, y))
			}
			out.WriteByte('\n')
		}
	case ASCII:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if at(x, y) {
					out.WriteByte('#')
				} else {
					out.WriteByte('.')
				}
			}
			out.WriteByte('\n')
		}
	default:
		return fmt.Errorf("preview: unknown style %d", int(style))
	}
	return out.Flush()
}

// String renders src as a string.
func String(src monobuf.Source, style Style) string {
	var s strings.Builder
	if err := Write(&s, src, style); err != nil {
		return err.Error()
	}
	return s.String()
}

// brailleDots are the dot bits of a braille cell indexed [y][x].
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func brailleAt(at func(x, y int) bool, x, y int) rune {
	var r rune
	for dy, row := range brailleDots {
		for dx, bit := range row {
			if at(x+dx, y+dy) {
				r |= bit
			}
		}
	}
	return 0x2800 + r
}
