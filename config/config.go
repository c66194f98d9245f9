// Package config reads and writes parameter files.
//
// A parameter file is TOML; keys left out keep their defaults:
//
//	name = "winding_circle"
//	noise = "uniform"
//	delete_previous = true
//	radius = 100.0
//	winding = 5
//	irregularity = 0.3
//	vertical_irregularity = 0.2
//	points = 100
//	seed = 42
//	flatten_ends = false
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"windingcircle/controls"
	"windingcircle/curve"
)

// File is the content of a parameter file
type File struct {
	Name           string `toml:"name"`
	Noise          string `toml:"noise"`
	DeletePrevious bool   `toml:"delete_previous"`

	Radius               float64 `toml:"radius"`
	Winding              int     `toml:"winding"`
	Irregularity         float64 `toml:"irregularity"`
	VerticalIrregularity float64 `toml:"vertical_irregularity"`
	Points               int     `toml:"points"`
	Seed                 int64   `toml:"seed"`
	FlattenEnds          bool    `toml:"flatten_ends"`
}

// Default mirrors the controls' Reset state
func Default() File {
	f := File{
		Name:           controls.DefaultName,
		Noise:          "uniform",
		DeletePrevious: true,
	}
	f.SetParams(curve.DefaultParams())
	return f
}

// Params extracts the generation parameters
func (f File) Params() curve.Params {
	return curve.Params{
		Radius:               f.Radius,
		Winding:              f.Winding,
		Irregularity:         f.Irregularity,
		VerticalIrregularity: f.VerticalIrregularity,
		Points:               f.Points,
		Seed:                 f.Seed,
		FlattenEnds:          f.FlattenEnds,
	}
}

// SetParams copies generation parameters into the file
func (f *File) SetParams(p curve.Params) {
	f.Radius = p.Radius
	f.Winding = p.Winding
	f.Irregularity = p.Irregularity
	f.VerticalIrregularity = p.VerticalIrregularity
	f.Points = p.Points
	f.Seed = p.Seed
	f.FlattenEnds = p.FlattenEnds
}

// Generator returns a generator using the file's noise engine
func (f File) Generator() (curve.Generator, error) {
	fn, err := curve.StreamByName(f.Noise)
	if err != nil {
		return curve.Generator{}, err
	}
	return curve.Generator{NewStream: fn}, nil
}

// Configure copies the file into c
func (f File) Configure(c *controls.Controls) error {
	gen, err := f.Generator()
	if err != nil {
		return err
	}
	c.Generator = gen
	c.Name = f.Name
	c.DeletePrevious = f.DeletePrevious
	return c.Apply(f.Params())
}

// Parse decodes a parameter file over the defaults. Unknown keys are errors.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the parameter file at path
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path
func Save(path string, f File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
