// Package monobuf implements a software framebuffer for 1-bit monochrome displays.
//
// A [Buffer] is a view over caller owned memory holding width*height pixels packed
// 8 per byte, row-major, with the most significant bit being the leftmost pixel. The
// backing bytes are the wire format consumed by display drivers: they can be sent to the
// hardware as-is.
//
// Drawing operations clip to the buffer. Transforms reject regions which do not fit
// inside the buffer with [ErrOutOfBounds].
package monobuf

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// Errors
var (
	ErrInvalidDimension = errors.New("monobuf: invalid dimension")
	ErrOutOfBounds      = errors.New("monobuf: out of buffer bounds")
	ErrSizeMismatch     = errors.New("monobuf: size mismatch")
	ErrInvalidMode      = errors.New("monobuf: invalid mode")
)

var logger = defaultLogger()

func defaultLogger() *slog.Logger {
	if os.Getenv("MONOBUF_DEBUG") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger replaces the package logger. A nil logger discards all output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// DrawMode defines how a drawing operation affects the pixels it touches.
type DrawMode uint8

// Drawing modes.
const (
	Clear  DrawMode = iota // Clear the pixel
	Set                    // Set the pixel
	Toggle                 // Flip the pixel
)

func (m DrawMode) String() string {
	switch m {
	case Clear:
		return "clear"
	case Set:
		return "set"
	case Toggle:
		return "toggle"
	default:
		return "invalid"
	}
}

func (m DrawMode) valid() bool {
	return m <= Toggle
}

// apply m to the bits selected by mask.
func (m DrawMode) apply(p *byte, mask byte) {
	switch m {
	case Clear:
		*p &^= mask
	case Set:
		*p |= mask
	case Toggle:
		*p ^= mask
	}
}

// CombineMode defines how the bytes of two pixel sources are merged.
//
// CombineMode is unrelated to [DrawMode]: Xor merges two sources bit by bit, Toggle
// flips the pixels touched by a shape.
type CombineMode uint8

// Combine modes.
const (
	Or CombineMode = iota
	And
	Xor
)

func (m CombineMode) String() string {
	switch m {
	case Or:
		return "or"
	case And:
		return "and"
	case Xor:
		return "xor"
	default:
		return "invalid"
	}
}

func (m CombineMode) valid() bool {
	return m <= Xor
}

func (m CombineMode) combine(dst, src byte) byte {
	switch m {
	case And:
		return dst & src
	case Xor:
		return dst ^ src
	default:
		return dst | src
	}
}
