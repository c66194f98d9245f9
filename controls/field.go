package controls

import "fmt"

// Field names one adjustable control
type Field int

const (
	Radius Field = iota
	Winding
	Irregularity
	VerticalIrregularity
	Points
	Seed
	FlattenEnds
	DeletePrevious
	LiveUpdate
)

var fieldNames = [...]string{
	Radius:               "radius",
	Winding:              "winding",
	Irregularity:         "irregularity",
	VerticalIrregularity: "vertical_irregularity",
	Points:               "points",
	Seed:                 "seed",
	FlattenEnds:          "flatten_ends",
	DeletePrevious:       "delete_previous",
	LiveUpdate:           "live_update",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField is the inverse of Field.String
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q", name)
}

// Toggle reports whether the field is a checkbox rather than a slider
func (f Field) Toggle() bool {
	return f >= FlattenEnds && f <= LiveUpdate
}

// Range is the extent of a slider
type Range struct {
	Min, Max float64
	Step     float64
	Integer  bool
}

// Clamp limits v to the range, rounding integer sliders
func (r Range) Clamp(v float64) float64 {
	if r.Integer {
		v = float64(int64(v + 0.5*sign(v)))
	}
	return max(r.Min, min(r.Max, v))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

var ranges = map[Field]Range{
	Radius:               {Min: 1, Max: 1000, Step: 5},
	Winding:              {Min: 1, Max: 20, Step: 1, Integer: true},
	Irregularity:         {Min: 0, Max: 1, Step: 0.05},
	VerticalIrregularity: {Min: 0, Max: 1, Step: 0.05},
	Points:               {Min: 10, Max: 500, Step: 10, Integer: true},
	Seed:                 {Min: 1, Max: 1000, Step: 1, Integer: true},
}

// RangeOf returns the slider range of f; toggles have none
func RangeOf(f Field) (Range, bool) {
	r, ok := ranges[f]
	return r, ok
}
