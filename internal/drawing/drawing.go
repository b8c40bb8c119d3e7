// SPDX-License-Identifier: MIT

// Package drawing reads and writes line drawings as YAML:
//
//	scale: 1.11
//	segments:
//	  - from: [0, 0]
//	    to: [2, 0]
package drawing

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

var (
	// ErrInvalidPoint indicates a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("drawing: invalid coordinate")

	// ErrInvalidScale indicates a negative, NaN or infinite scale.
	ErrInvalidScale = errors.New("drawing: invalid scale")
)

// File is the on-disk drawing. Scale is optional; nil means "use the
// caller's default".
type File struct {
	Scale    *float64  `yaml:"scale,omitempty"`
	Segments []Segment `yaml:"segments"`
}

type Segment struct {
	From [2]float64 `yaml:"from,flow"`
	To   [2]float64 `yaml:"to,flow"`
}

// Decode parses and validates a drawing. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode drawing: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load decodes the drawing at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return Decode(fh)
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}

	return enc.Close()
}

// Save writes f to path, replacing any existing file.
func Save(path string, f *File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(fh, f); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}

func (f *File) Validate() error {
	if f.Scale != nil {
		if s := *f.Scale; !(s >= 0) || math.IsInf(s, 1) {
			return fmt.Errorf("%w: %g", ErrInvalidScale, s)
		}
	}
	for i, s := range f.Segments {
		for _, v := range [...]float64{s.From[0], s.From[1], s.To[0], s.To[1]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("segment %d: %w", i, ErrInvalidPoint)
			}
		}
	}

	return nil
}

// Lines converts the segments to core lines in file order.
func (f *File) Lines() []core.Line {
	out := make([]core.Line, len(f.Segments))
	for i, s := range f.Segments {
		out[i] = core.Line{
			From: core.Point{X: s.From[0], Y: s.From[1]},
			To:   core.Point{X: s.To[0], Y: s.To[1]},
		}
	}

	return out
}

// FromLines wraps lines into a File; scale <= 0 leaves Scale unset.
func FromLines(lines []core.Line, scale float64) *File {
	f := &File{Segments: make([]Segment, len(lines))}
	if scale > 0 {
		f.Scale = &scale
	}
	for i, l := range lines {
		f.Segments[i] = Segment{
			From: [2]float64{l.From.X, l.From.Y},
			To:   [2]float64{l.To.X, l.To.Y},
		}
	}

	return f
}

// Graph builds the graph. The file's scale wins over defaultScale.
func (f *File) Graph(defaultScale float64, opts ...core.DrawingOption) (*core.Graph, error) {
	scale := defaultScale
	if f.Scale != nil {
		scale = *f.Scale
	}
	opts = append([]core.DrawingOption{core.WithLengthScale(scale)}, opts...)

	return core.FromLines(f.Lines(), opts...)
}
