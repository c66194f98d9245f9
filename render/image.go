// Package render draws winding circles as PNG and SVG previews
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"windingcircle/curve"
)

// Style controls how previews are framed and colored
type Style struct {
	Width, Height int
	Yaw, Pitch    float64
	LineWidth     float64
	Background    color.RGBA
	Stroke        color.RGBA
	Caption       bool
}

// DefaultStyle looks at the curve from slightly above, like the viewer does
func DefaultStyle() Style {
	return Style{
		Width:      800,
		Height:     600,
		Yaw:        0.3,
		Pitch:      0.45,
		LineWidth:  1.5,
		Background: color.RGBA{25, 25, 25, 255},
		Stroke:     color.RGBA{255, 255, 0, 255},
		Caption:    true,
	}
}

// caption names the curve and gives its point count and its x, y, z spans
func caption(name string, seq curve.Sequence) string {
	lo, hi := seq.Bounds()
	size := hi.Sub(lo)
	return fmt.Sprintf("%s  %d points  %.0f x %.0f x %.0f", name, max(len(seq)-1, 0), size.X(), size.Y(), size.Z())
}

// PNG renders an antialiased preview with gg
type PNG struct {
	Style Style
}

func (PNG) Ext() string { return "png" }

func (r PNG) Encode(w io.Writer, name string, seq curve.Sequence) error {
	st := r.Style
	cam := FitCamera(seq, st.Width, st.Height, st.Yaw, st.Pitch)
	xs, ys := cam.ProjectAll(seq)

	dc := gg.NewContext(st.Width, st.Height)
	dc.SetColor(st.Background)
	dc.Clear()

	dc.SetColor(st.Stroke)
	dc.SetLineWidth(st.LineWidth)
	for i := range xs {
		if i == 0 {
			dc.MoveTo(xs[i], ys[i])
			continue
		}
		dc.LineTo(xs[i], ys[i])
	}
	dc.Stroke()

	if st.Caption {
		dc.DrawString(caption(name, seq), 8, 16)
	}
	return dc.EncodePNG(w)
}

// RasterPNG renders a pixel-exact, unantialiased preview
type RasterPNG struct {
	Style Style
}

func (RasterPNG) Ext() string { return "png" }

func (r RasterPNG) Encode(w io.Writer, name string, seq curve.Sequence) error {
	return png.Encode(w, r.Image(name, seq))
}

// Image draws the preview into a fresh RGBA image
func (r RasterPNG) Image(name string, seq curve.Sequence) *image.RGBA {
	st := r.Style
	img := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	cam := FitCamera(seq, st.Width, st.Height, st.Yaw, st.Pitch)
	xs, ys := cam.ProjectAll(seq)
	DrawPolyline(img, xs, ys, st.Stroke)

	if st.Caption {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(st.Stroke),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 16),
		}
		d.DrawString(caption(name, seq))
	}
	return img
}
