package draw

import (
	"fmt"
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/BeatGlow/monobuf"
	"github.com/BeatGlow/monobuf/pixel"
)

// Options control the conversion of images to 1-bit pixels.
type Options struct {
	// Scaler resizes the source when its size differs from the target, defaults to
	// [CatmullRom].
	Scaler Scaler

	// Matrix is the error diffusion matrix, defaults to [dither.FloydSteinberg].
	Matrix dither.ErrorDiffusionMatrix

	// Ordered uses an 8x8 Bayer matrix instead of error diffusion.
	Ordered bool

	// Serpentine alternates the scan direction of error diffusion on every row.
	Serpentine bool

	// Threshold skips dithering, pixels are converted by [pixel.MonoModel].
	Threshold bool

	// Invert lights the dark pixels instead of the bright ones.
	Invert bool
}

// DefaultOptions are used when no options are passed.
var DefaultOptions = Options{
	Scaler:     CatmullRom,
	Matrix:     dither.FloydSteinberg,
	Serpentine: true,
}

var palette = []color.Color{color.Black, color.White}

// Dither converts src to a w by h bitmap. The source is scaled to fit first; bright
// pixels end up set.
func Dither(src image.Image, w, h int, opts *Options) (*monobuf.Bitmap, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", monobuf.ErrSizeMismatch)
	}
	if opts == nil {
		opts = &DefaultOptions
	}

	bm, err := monobuf.NewBitmap(w, h)
	if err != nil {
		return nil, err
	}
	if w == 0 || h == 0 {
		return bm, nil
	}

	scaled := scale(src, w, h, opts.Scaler)
	if opts.Threshold {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				bm.Set(x, y, pixel.IsOn(scaled.At(x, y)) != opts.Invert)
			}
		}
		return bm, nil
	}

	d := dither.NewDitherer(palette)
	if opts.Ordered {
		d.Mapper = dither.Bayer(8, 8, 1.0)
	} else {
		d.Matrix = opts.Matrix
		if d.Matrix == nil {
			d.Matrix = dither.FloydSteinberg
		}
		d.Serpentine = opts.Serpentine
	}

	out := d.DitherPaletted(scaled)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			on := pixel.IsOn(out.Palette[out.ColorIndexAt(x, y)])
			bm.Set(x, y, on != opts.Invert)
		}
	}
	return bm, nil
}

// scale returns src resized to w by h with its origin at (0,0).
func scale(src image.Image, w, h int, scaler Scaler) *image.RGBA {
	var (
		bounds = src.Bounds()
		dst    = image.NewRGBA(image.Rect(0, 0, w, h))
	)
	if bounds.Dx() == w && bounds.Dy() == h {
		Draw(dst, dst.Bounds(), src, bounds.Min, Src)
		return dst
	}
	if scaler == nil {
		scaler = CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), src, bounds, Src, nil)
	return dst
}
