package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"windingcircle/curve"
)

func sample(t *testing.T) curve.Sequence {
	t.Helper()
	seq, err := curve.Generate(curve.DefaultParams())
	require.NoError(t, err)
	return seq
}

func TestRotate(t *testing.T) {
	v := RotateY(mgl64.Vec3{1, 0, 0}, math.Pi/2)
	assert.InDelta(t, 0, v[0], 1e-12)
	assert.InDelta(t, -1, v[2], 1e-12)

	v = RotateX(mgl64.Vec3{0, 1, 0}, math.Pi/2)
	assert.InDelta(t, 0, v[1], 1e-12)
	assert.InDelta(t, 1, v[2], 1e-12)
}

func TestCameraProject(t *testing.T) {
	seq := curve.Sequence{{10, 0, 0}, {-10, 0, 0}}
	cam := FitCamera(seq, 200, 100, 0, 0)

	x, y := cam.Project(curve.Point{})
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)

	// outermost point sits at 40% of the short side
	x, _ = cam.Project(curve.Point{10, 0, 0})
	assert.InDelta(t, 140, x, 1e-9)

	// y up on screen is y down in the canvas
	_, y = cam.Project(curve.Point{0, 10, 0})
	assert.Less(t, y, 50.0)
}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	col := color.RGBA{255, 0, 0, 255}
	DrawLine(img, 1, 1, 8, 1, col)
	for x := 1; x <= 8; x++ {
		assert.Equal(t, col, img.RGBAAt(x, 1))
	}
	assert.Equal(t, color.RGBA{}, img.RGBAAt(9, 1))

	// clipped, does not panic
	DrawLine(img, -5, -5, 20, 20, col)
	assert.Equal(t, col, img.RGBAAt(5, 5))

	DrawLine(img, 3, 7, 3, 7, col)
	assert.Equal(t, col, img.RGBAAt(3, 7))
}

func TestRasterPNG(t *testing.T) {
	st := DefaultStyle()
	st.Width, st.Height = 160, 120
	r := RasterPNG{Style: st}

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, "winding_circle", sample(t)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 160, 120), img.Bounds())

	rgba := r.Image("winding_circle", sample(t))
	var lit int
	for i := 0; i < len(rgba.Pix); i += 4 {
		if rgba.Pix[i] == st.Stroke.R && rgba.Pix[i+2] == st.Stroke.B {
			lit++
		}
	}
	assert.Greater(t, lit, 100)
}

func TestPNG(t *testing.T) {
	st := DefaultStyle()
	st.Width, st.Height = 64, 48
	var buf bytes.Buffer
	require.NoError(t, PNG{Style: st}.Encode(&buf, "winding_circle", sample(t)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestCaption(t *testing.T) {
	seq := curve.Sequence{{-10, 0, -5}, {10, 4, 5}, {-10, 0, -5}}
	assert.Equal(t, "loop  2 points  20 x 4 x 10", caption("loop", seq))
	assert.Equal(t, "empty  0 points  0 x 0 x 0", caption("empty", nil))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	seq := sample(t)
	require.NoError(t, SVG{Style: DefaultStyle()}.Encode(&buf, "winding_circle", seq))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<title>winding_circle</title>")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "stroke:rgb(255,255,0)")
	assert.Contains(t, out, "100 points")
	assert.Equal(t, "svg", SVG{}.Ext())
}
