package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"windingcircle/curve"
)

// SVG writes the projected curve as a single polyline
type SVG struct {
	Style Style
}

func (SVG) Ext() string { return "svg" }

func (r SVG) Encode(w io.Writer, name string, seq curve.Sequence) error {
	st := r.Style
	cam := FitCamera(seq, st.Width, st.Height, st.Yaw, st.Pitch)
	fx, fy := cam.ProjectAll(seq)
	xs := make([]int, len(fx))
	ys := make([]int, len(fy))
	for i := range fx {
		xs[i] = int(math.Round(fx[i]))
		ys[i] = int(math.Round(fy[i]))
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(st.Width, st.Height)
	canvas.Title(name)
	canvas.Rect(0, 0, st.Width, st.Height, "fill:"+rgb(st.Background))
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", rgb(st.Stroke), st.LineWidth))
	if st.Caption {
		canvas.Text(8, 16, caption(name, seq), "font-family:monospace;font-size:12px;fill:"+rgb(st.Stroke))
	}
	canvas.End()
	return ew.err
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

// errWriter keeps the first write error; svgo ignores them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
