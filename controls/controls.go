// Package controls is the parameter panel of the generator: slider and
// checkbox state, a Reset to defaults, and the regenerate action that turns
// the current state into a stored curve object.
package controls

import (
	"fmt"
	"log/slog"

	"windingcircle/curve"
	"windingcircle/scene"
)

// DefaultName is the object name generated curves are stored under
const DefaultName = "winding_circle"

// Controls holds the current parameter values
type Controls struct {
	Params         curve.Params
	Name           string
	DeletePrevious bool
	LiveUpdate     bool

	Generator curve.Generator
	Store     scene.Store
	Log       *slog.Logger

	// OnCommit, if set, is called after every stored regeneration
	OnCommit func(name string, seq curve.Sequence)
}

// New returns controls at their defaults, committing into store
func New(store scene.Store) *Controls {
	c := &Controls{Store: store, Log: slog.Default()}
	c.Reset()
	return c
}

// Reset restores every control to its default. It does not regenerate.
func (c *Controls) Reset() {
	c.Params = curve.DefaultParams()
	c.Name = DefaultName
	c.DeletePrevious = true
	c.LiveUpdate = false
}

// Value reads a control; toggles read as 0 or 1
func (c *Controls) Value(f Field) float64 {
	switch f {
	case Radius:
		return c.Params.Radius
	case Winding:
		return float64(c.Params.Winding)
	case Irregularity:
		return c.Params.Irregularity
	case VerticalIrregularity:
		return c.Params.VerticalIrregularity
	case Points:
		return float64(c.Params.Points)
	case Seed:
		return float64(c.Params.Seed)
	case FlattenEnds:
		return b2f(c.Params.FlattenEnds)
	case DeletePrevious:
		return b2f(c.DeletePrevious)
	case LiveUpdate:
		return b2f(c.LiveUpdate)
	}
	return 0
}

// Set moves a control to v, clamped to its range. Toggles treat any non-zero
// v as on. Parameter changes regenerate when live update is on.
func (c *Controls) Set(f Field, v float64) error {
	if r, ok := RangeOf(f); ok {
		v = r.Clamp(v)
	}
	switch f {
	case Radius:
		c.Params.Radius = v
	case Winding:
		c.Params.Winding = int(v)
	case Irregularity:
		c.Params.Irregularity = v
	case VerticalIrregularity:
		c.Params.VerticalIrregularity = v
	case Points:
		c.Params.Points = int(v)
	case Seed:
		c.Params.Seed = int64(v)
	case FlattenEnds:
		c.Params.FlattenEnds = v != 0
	case DeletePrevious:
		c.DeletePrevious = v != 0
		return nil
	case LiveUpdate:
		c.LiveUpdate = v != 0
		return nil
	default:
		return fmt.Errorf("unknown control %v", f)
	}
	c.logger().Debug("control changed", "control", f, "value", c.Value(f))
	return c.changed()
}

// Step nudges a slider by n steps, or flips a toggle
func (c *Controls) Step(f Field, n int) error {
	if f.Toggle() {
		return c.Set(f, 1-c.Value(f))
	}
	r, ok := RangeOf(f)
	if !ok {
		return fmt.Errorf("unknown control %v", f)
	}
	return c.Set(f, c.Value(f)+float64(n)*r.Step)
}

// Apply replaces all generation parameters at once, as a parameter file
// reload does. Values are taken as given, without slider clamping.
func (c *Controls) Apply(p curve.Params) error {
	c.Params = p
	return c.changed()
}

func (c *Controls) changed() error {
	if !c.LiveUpdate {
		return nil
	}
	_, err := c.Regenerate()
	return err
}

// Create regenerates regardless of live update
func (c *Controls) Create() (string, error) {
	return c.Regenerate()
}

// Regenerate generates a curve from the current values and stores it. With
// DeletePrevious the object under Name is replaced, otherwise another object
// is added. It returns the name the curve was stored under.
func (c *Controls) Regenerate() (string, error) {
	seq, err := c.Generator.Generate(c.Params)
	if err != nil {
		return "", err
	}

	name := c.Name
	if c.DeletePrevious {
		replaced, err := c.Store.Upsert(name, seq)
		if err != nil {
			return "", err
		}
		c.logger().Info("curve updated", "name", name, "replaced", replaced, "points", len(seq))
	} else {
		name, err = c.Store.Create(name, seq)
		if err != nil {
			return "", err
		}
		c.logger().Info("curve created", "name", name, "points", len(seq))
	}

	if c.OnCommit != nil {
		c.OnCommit(name, seq)
	}
	return name, nil
}

// Summary is a one-line description of the current values
func (c *Controls) Summary() string {
	p := c.Params
	return fmt.Sprintf("r=%g wind=%d irr=%.2f vert=%.2f pts=%d seed=%d flat=%t live=%t del=%t",
		p.Radius, p.Winding, p.Irregularity, p.VerticalIrregularity, p.Points, p.Seed,
		p.FlattenEnds, c.LiveUpdate, c.DeletePrevious)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (c *Controls) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}
