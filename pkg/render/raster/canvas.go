// Package raster draws trees into images with the gg software renderer.
package raster

import (
	"fmt"
	"github.com/gogpu/gg"
	"github.com/willbeason/boom/pkg/render"
	"github.com/willbeason/boom/pkg/tree"
	"image"
	"io"
)

// ReferenceHeight is the image height at which segment widths are drawn
// unscaled. Other heights scale widths proportionally, down to one pixel.
const ReferenceHeight = 800

// Canvas is an image-backed drawing surface. Each Present replaces the
// previous contents.
type Canvas struct {
	dc         *gg.Context
	projection render.Projection
	background gg.RGBA
	widthScale float64
}

var _ render.Renderer = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc:         gg.NewContext(width, height),
		projection: render.NewProjection(width, height),
		background: gg.Black,
		widthScale: float64(height) / ReferenceHeight,
	}
}

// Present clears the canvas and draws segments as seen by camera.
func (c *Canvas) Present(segments []tree.Segment, camera render.Camera) error {
	c.dc.ClearWithColor(c.background)
	c.dc.SetLineCap(gg.LineCapRound)

	for _, l := range c.projection.Lines(camera, segments) {
		c.dc.SetRGB(l.Color.R, l.Color.G, l.Color.B)
		c.dc.SetLineWidth(max(l.Width*c.widthScale, 1))
		c.dc.DrawLine(l.A.X, l.A.Y, l.B.X, l.B.Y)
		if err := c.dc.Stroke(); err != nil {
			return fmt.Errorf("stroking segment: %w", err)
		}
	}
	return nil
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
