package commands

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/BeatGlow/monobuf/draw"
)

func (a *app) convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <image>",
		Short: "Convert an image to 1-bit pixels",
		Long: `Convert a PNG, JPEG, GIF or BMP image to the buffer size and write it out.

The image is scaled to the buffer size and dithered to black and white; lit
pixels are the bright ones unless --invert is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := decode(args[0])
			if err != nil {
				return err
			}
			opts, err := a.cfg.Dither.Options()
			if err != nil {
				return err
			}

			bm, err := draw.Dither(src, a.cfg.Width, a.cfg.Height, opts)
			if err != nil {
				return err
			}
			buf, err := a.newBuffer()
			if err != nil {
				return err
			}
			if err = buf.Overwrite(bm); err != nil {
				return err
			}
			a.logger.Debug("converted image", "image", args[0], "size", src.Bounds().Size(), "buffer", buf.String())
			return a.write(cmd, buf)
		},
	}

	defaults := DefaultConfig().Dither
	flags := cmd.Flags()
	flags.String("scaler", defaults.Scaler, "scaler: nearest, approx, bilinear or catmullrom")
	flags.Bool("ordered", defaults.Ordered, "use ordered (Bayer) dithering instead of error diffusion")
	flags.Bool("threshold", defaults.Threshold, "threshold pixels without dithering")
	flags.Bool("invert", defaults.Invert, "light the dark pixels")
	for _, name := range []string{"scaler", "ordered", "threshold", "invert"} {
		a.bindKey("dither."+name, flags, name)
	}
	return cmd
}

func decode(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	i, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if i.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", name, format)
	}
	return i, nil
}
