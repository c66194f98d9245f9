package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a parameter set cannot describe a curve
var ErrInvalidParameter = errors.New("invalid parameter")

// Params describes one winding circle.
// Irregularity and VerticalIrregularity are fractions of Radius in [0, 1].
type Params struct {
	Radius               float64
	Winding              int
	Irregularity         float64
	VerticalIrregularity float64
	Points               int
	Seed                 int64
	FlattenEnds          bool
}

// DefaultParams returns the parameters the generator starts with
func DefaultParams() Params {
	return Params{
		Radius:               100,
		Winding:              5,
		Irregularity:         0.3,
		VerticalIrregularity: 0.2,
		Points:               100,
		Seed:                 42,
	}
}

// Validate reports the first parameter that makes the curve degenerate.
// A non-positive radius is allowed: it inverts or collapses the curve but the
// formulas stay well defined.
func (p Params) Validate() error {
	if p.Points < 2 {
		return fmt.Errorf("%w: points must be >= 2, got %d", ErrInvalidParameter, p.Points)
	}
	if p.Winding < 0 {
		return fmt.Errorf("%w: winding must be >= 0, got %d", ErrInvalidParameter, p.Winding)
	}
	if !finite(p.Radius) {
		return fmt.Errorf("%w: radius must be finite, got %v", ErrInvalidParameter, p.Radius)
	}
	if err := checkFraction("irregularity", p.Irregularity); err != nil {
		return err
	}
	return checkFraction("vertical irregularity", p.VerticalIrregularity)
}

func checkFraction(name string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
