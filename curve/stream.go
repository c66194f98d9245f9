package curve

import (
	"fmt"
	"math"
	"sort"

	"cogentcore.org/core/base/randx"
	"github.com/aquilax/go-perlin"
)

// Stream is a source of uniformly distributed values in [0, 1).
// randx.Rand and *rand.Rand both satisfy it.
type Stream interface {
	Float64() float64
}

// StreamFunc creates a fresh stream for one generation call
type StreamFunc func(seed int64) Stream

// NewUniformStream returns a math/rand stream seeded once with seed
func NewUniformStream(seed int64) Stream {
	return randx.NewSysRand(seed)
}

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3

	// distance travelled along the noise line per draw
	perlinStep = 0.173
	// the vertical draws sample a second, parallel line
	perlinLane = 31.7
)

type perlinStream struct {
	noise *perlin.Perlin
	draws int
}

// NewPerlinStream returns a coherent noise stream. Consecutive radial draws,
// and consecutive vertical draws, vary smoothly instead of independently.
func NewPerlinStream(seed int64) Stream {
	return &perlinStream{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

func (s *perlinStream) Float64() float64 {
	lane := float64(s.draws%2) * perlinLane
	// start half a step in: noise is zero on lattice points
	x := (float64(s.draws/2) + 0.5) * perlinStep
	s.draws++

	v := (s.noise.Noise2D(x, lane) + 1) / 2
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

var streams = map[string]StreamFunc{
	"uniform": NewUniformStream,
	"perlin":  NewPerlinStream,
}

// StreamByName looks up a stream engine: "uniform" or "perlin"
func StreamByName(name string) (StreamFunc, error) {
	fn, ok := streams[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown noise %q (want one of %v)", ErrInvalidParameter, name, StreamNames())
	}
	return fn, nil
}

// StreamNames lists the registered stream engines
func StreamNames() []string {
	names := make([]string, 0, len(streams))
	for name := range streams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
