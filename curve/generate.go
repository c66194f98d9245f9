// Package curve generates winding circles: closed 3D polylines that loop
// around the Y axis with seeded radial and vertical noise.
package curve

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a curve vertex. Y is up; the circle lies in the XZ plane.
type Point = mgl64.Vec3

// Sequence is a closed run of points: the last point repeats the first
type Sequence []Point

// Generator binds a stream engine to the point generation
type Generator struct {
	NewStream StreamFunc
}

// Generate builds a winding circle with the uniform stream engine
func Generate(p Params) (Sequence, error) {
	return Generator{}.Generate(p)
}

// Generate builds a winding circle, seeding a fresh stream from p.Seed
func (g Generator) Generate(p Params) (Sequence, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	newStream := g.NewStream
	if newStream == nil {
		newStream = NewUniformStream
	}
	return build(p, newStream(p.Seed)), nil
}

// GenerateStream builds a winding circle drawing from s instead of a seeded stream.
// p.Seed is ignored.
func GenerateStream(p Params, s Stream) (Sequence, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return build(p, s), nil
}

func build(p Params, s Stream) Sequence {
	seq := make(Sequence, 0, p.Points+1)
	last := p.Points - 1
	for i := 0; i < p.Points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(p.Points) * float64(p.Winding)

		// both draws happen for every index so the stream stays aligned
		offset := uniform(s) * p.Irregularity
		distorted := p.Radius * (1 + offset)
		y := uniform(s) * p.VerticalIrregularity * p.Radius

		if p.FlattenEnds && (i == 0 || i == last) {
			y = 0
		}
		seq = append(seq, Point{
			distorted * math.Cos(angle),
			y,
			distorted * math.Sin(angle),
		})
	}
	return append(seq, seq[0])
}

// uniform maps the stream onto [-1, 1)
func uniform(s Stream) float64 {
	return -1 + 2*s.Float64()
}

// Bounds returns the axis-aligned box enclosing the sequence
func (s Sequence) Bounds() (lo, hi Point) {
	if len(s) == 0 {
		return lo, hi
	}
	lo, hi = s[0], s[0]
	for _, pt := range s[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], pt[k])
			hi[k] = math.Max(hi[k], pt[k])
		}
	}
	return lo, hi
}

// Extent returns the largest distance of any point from the origin
func (s Sequence) Extent() float64 {
	var r float64
	for _, pt := range s {
		r = math.Max(r, pt.Len())
	}
	return r
}

// Flat returns the coordinates as x0, y0, z0, x1, ... for vertex buffers
func (s Sequence) Flat() []float32 {
	out := make([]float32, 0, len(s)*3)
	for _, pt := range s {
		out = append(out, float32(pt[0]), float32(pt[1]), float32(pt[2]))
	}
	return out
}
