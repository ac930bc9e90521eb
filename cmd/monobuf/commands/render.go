package commands

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/monobuf"
	"github.com/BeatGlow/monobuf/draw"
	"github.com/BeatGlow/monobuf/pixel"
)

// scenes are the demo scenes known to the render command.
var scenes = map[string]func(*monobuf.Buffer) error{
	"shapes":     renderShapes,
	"transforms": renderTransforms,
	"blit":       renderBlit,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *app) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a demo scene",
		Long: `Render a demo scene into a fresh buffer and write it out.

Scenes: ` + strings.Join(sceneNames(), ", ") + `. The default scene is shapes.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sceneNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "shapes"
			if len(args) > 0 {
				name = args[0]
			}
			scene, ok := scenes[name]
			if !ok {
				return fmt.Errorf("unknown scene %q, expected one of %s", name, strings.Join(sceneNames(), ", "))
			}

			buf, err := a.newBuffer()
			if err != nil {
				return err
			}
			if err = scene(buf); err != nil {
				return fmt.Errorf("scene %s: %w", name, err)
			}
			a.logger.Debug("rendered scene", "scene", name, "buffer", buf.String())
			return a.write(cmd, buf)
		},
	}
}

// renderShapes draws a border, both diagonals and a few filled shapes.
func renderShapes(b *monobuf.Buffer) error {
	var (
		w, h = b.Width(), b.Height()
		r    = min(w, h) / 4
	)
	b.Rect(0, 0, w, h, monobuf.Set)
	b.Line(0, 0, w-1, h-1, monobuf.Set)
	b.Line(0, h-1, w-1, 0, monobuf.Set)
	b.FillCircle(w/2, h/2, r, monobuf.Toggle)
	b.Circle(w/2, h/2, r+2, monobuf.Set)
	b.Tri(2, h-3, w/4, h/2, w/2-2, h-3, monobuf.Toggle)
	draw.RoundedBox(b, image.Rect(w*5/8, 2, w-3, h/3), 3, pixel.On)
	return nil
}

// renderTransforms draws the shapes scene and moves parts of it around.
func renderTransforms(b *monobuf.Buffer) error {
	if err := renderShapes(b); err != nil {
		return err
	}
	var (
		w, h = b.Width(), b.Height()
		s    = min(w, h) / 2
	)
	if err := b.RotateRegionRight(0, 0, s, s); err != nil {
		return err
	}
	if err := b.FlipRegionH(w-s, h-s, s, s); err != nil {
		return err
	}
	if err := b.ScrollRegionLeft(0, h/2, w, h-h/2, w/8); err != nil {
		return err
	}
	return b.ScrollUp(h / 8)
}

// renderBlit copies a captured region around the buffer in every mode.
func renderBlit(b *monobuf.Buffer) error {
	var (
		w, h = b.Width(), b.Height()
		s    = max(1, min(w, h)/3)
	)
	b.FillCircle(s/2, s/2, s/2, monobuf.Set)
	b.Line(0, s-1, s-1, 0, monobuf.Toggle)

	sprite, err := monobuf.NewBitmap(s, s)
	if err != nil {
		return err
	}
	if err = b.Capture(0, 0, sprite); err != nil {
		return err
	}
	b.DrawBitmap(s, 0, sprite, monobuf.Set)
	b.DrawBitmap(2*s, 0, sprite, monobuf.Toggle)
	b.FillRect(0, s, w, s, monobuf.Set)
	b.DrawBitmap(0, s, sprite, monobuf.Clear)
	if err = b.BlendBitmap(s, s, sprite, monobuf.Xor); err != nil {
		return err
	}
	return b.BlendBitmap(2*s, 2*s, sprite, monobuf.Or)
}
