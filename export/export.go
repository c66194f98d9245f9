// Package export writes point sequences in interchange and preview formats.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"windingcircle/curve"
	"windingcircle/render"
)

// Encoder writes one named sequence
type Encoder interface {
	Encode(w io.Writer, name string, seq curve.Sequence) error
	// Ext is the file extension, without the dot
	Ext() string
}

type document struct {
	Name   string       `json:"name" yaml:"name"`
	Closed bool         `json:"closed" yaml:"closed"`
	Points [][3]float64 `json:"points" yaml:"points,flow"`
}

func newDocument(name string, seq curve.Sequence) document {
	pts := make([][3]float64, len(seq))
	for i, p := range seq {
		pts[i] = p
	}
	return document{Name: name, Closed: true, Points: pts}
}

// JSON writes {"name", "closed", "points": [[x, y, z], ...]}
type JSON struct {
	Indent bool
}

func (JSON) Ext() string { return "json" }

func (j JSON) Encode(w io.Writer, name string, seq curve.Sequence) error {
	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newDocument(name, seq))
}

// YAML writes the same document as JSON
type YAML struct{}

func (YAML) Ext() string { return "yaml" }

func (YAML) Encode(w io.Writer, name string, seq curve.Sequence) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(name, seq)); err != nil {
		return err
	}
	return enc.Close()
}

// OBJ writes a Wavefront object with one polyline element.
// The closing point is not repeated as a vertex; the line element returns to index 1.
type OBJ struct{}

func (OBJ) Ext() string { return "obj" }

func (OBJ) Encode(w io.Writer, name string, seq curve.Sequence) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	n := len(seq)
	if n > 1 && seq[0] == seq[n-1] {
		n--
	}
	for _, p := range seq[:n] {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	if n > 0 {
		bw.WriteString("l")
		for i := 1; i <= n; i++ {
			fmt.Fprintf(bw, " %d", i)
		}
		if n < len(seq) {
			bw.WriteString(" 1")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

var formats = map[string]func() Encoder{
	"json":   func() Encoder { return JSON{Indent: true} },
	"yaml":   func() Encoder { return YAML{} },
	"obj":    func() Encoder { return OBJ{} },
	"png":    func() Encoder { return render.PNG{Style: render.DefaultStyle()} },
	"raster": func() Encoder { return render.RasterPNG{Style: render.DefaultStyle()} },
	"svg":    func() Encoder { return render.SVG{Style: render.DefaultStyle()} },
}

// ByName returns the encoder for a format name
func ByName(format string) (Encoder, error) {
	fn, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats())
	}
	return fn(), nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadJSON decodes a document written by JSON
func ReadJSON(r io.Reader) (string, curve.Sequence, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, err
	}
	seq := make(curve.Sequence, len(doc.Points))
	for i, p := range doc.Points {
		seq[i] = p
	}
	return doc.Name, seq, nil
}
