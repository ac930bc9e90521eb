package draw

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/monobuf"
	"github.com/BeatGlow/monobuf/pixel"
)

// Drawer exposes a [monobuf.Buffer] as a periph.io [display.Drawer], so code written
// against periph displays can render into the buffer. Images drawn are dithered with the
// Drawer options.
type Drawer struct {
	buf  *monobuf.Buffer
	opts *Options
}

// NewDrawer returns a Drawer over buf. A nil opts selects [DefaultOptions].
func NewDrawer(buf *monobuf.Buffer, opts *Options) *Drawer {
	if opts == nil {
		opts = &DefaultOptions
	}
	return &Drawer{
		buf:  buf,
		opts: opts,
	}
}

// Buffer returns the underlying buffer.
func (d *Drawer) Buffer() *monobuf.Buffer {
	return d.buf
}

func (d *Drawer) String() string {
	return fmt.Sprintf("monobuf.Drawer{%dx%d}", d.buf.Width(), d.buf.Height())
}

// Halt clears the buffer.
func (d *Drawer) Halt() error {
	d.buf.Clear()
	return nil
}

// ColorModel is [pixel.MonoModel].
func (d *Drawer) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds of the buffer.
func (d *Drawer) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

// Draw renders the part of src starting at sp into r, replacing the pixels of r. The
// rectangle is clipped to the buffer.
func (d *Drawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clipped := r.Intersect(d.buf.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))

	region := image.NewRGBA(image.Rect(0, 0, clipped.Dx(), clipped.Dy()))
	Draw(region, region.Bounds(), src, sp, Src)

	bm, err := Dither(region, clipped.Dx(), clipped.Dy(), d.opts)
	if err != nil {
		return err
	}
	d.buf.DrawBitmap(clipped.Min.X, clipped.Min.Y, bm, monobuf.Set)
	return nil
}

var _ display.Drawer = (*Drawer)(nil)
