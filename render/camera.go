package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"windingcircle/curve"
)

// Camera orbits the origin and projects points onto a width x height canvas
type Camera struct {
	Width, Height int
	Yaw, Pitch    float64 // radians
	FOV           float64 // pixels per unit at distance 1
	Distance      float64 // from camera to origin
}

// RotateX rotates the vector around the X axis
func RotateX(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return mgl64.Vec3{
		v[0],
		v[1]*cos - v[2]*sin,
		v[1]*sin + v[2]*cos,
	}
}

// RotateY rotates the vector around the Y axis
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return mgl64.Vec3{
		v[0]*cos + v[2]*sin,
		v[1],
		-v[0]*sin + v[2]*cos,
	}
}

// FitCamera frames seq so its outermost point lands at about 40% of the
// shorter canvas side from the center
func FitCamera(seq curve.Sequence, width, height int, yaw, pitch float64) Camera {
	extent := seq.Extent()
	if extent == 0 {
		extent = 1
	}
	dist := 3 * extent
	side := float64(min(width, height))
	return Camera{
		Width:    width,
		Height:   height,
		Yaw:      yaw,
		Pitch:    pitch,
		FOV:      0.4 * side * dist / extent,
		Distance: dist,
	}
}

// Project maps a point to canvas coordinates; canvas y grows downward
func (c Camera) Project(p curve.Point) (x, y float64) {
	v := RotateX(RotateY(p, c.Yaw), c.Pitch)
	depth := c.Distance + v[2]
	if depth <= 0 {
		depth = math.SmallestNonzeroFloat64
	}
	factor := c.FOV / depth
	x = v[0]*factor + float64(c.Width)/2
	y = float64(c.Height)/2 - v[1]*factor
	return x, y
}

// ProjectAll projects every point of seq
func (c Camera) ProjectAll(seq curve.Sequence) (xs, ys []float64) {
	xs = make([]float64, len(seq))
	ys = make([]float64, len(seq))
	for i, p := range seq {
		xs[i], ys[i] = c.Project(p)
	}
	return xs, ys
}
