package commands

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/monobuf"
	"github.com/BeatGlow/monobuf/internal/preview"
)

// newBuffer allocates a cleared buffer of the configured size.
func (a *app) newBuffer() (*monobuf.Buffer, error) {
	return monobuf.New(make([]byte, a.cfg.Width/8*a.cfg.Height), a.cfg.Width, a.cfg.Height)
}

// write encodes buf in the configured format to the configured output.
func (a *app) write(cmd *cobra.Command, buf *monobuf.Buffer) (err error) {
	var style preview.Style
	if a.cfg.Format == "text" {
		if style, err = preview.ParseStyle(a.cfg.Style); err != nil {
			return err
		}
	}

	var w io.Writer = cmd.OutOrStdout()
	if a.cfg.Output != "" && a.cfg.Output != "-" {
		var f *os.File
		if f, err = os.Create(a.cfg.Output); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	a.logger.Debug("writing buffer", "format", a.cfg.Format, "output", a.cfg.Output, "size", buf.Size())
	switch a.cfg.Format {
	case "raw":
		_, err = w.Write(buf.Pix())
	case "png":
		err = png.Encode(w, buf)
	case "text":
		err = preview.Write(w, buf, style)
	default:
		err = fmt.Errorf("unknown format %q", a.cfg.Format)
	}
	return
}
