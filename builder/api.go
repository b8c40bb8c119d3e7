// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor appends the lines of one shape to a drawing.
type Constructor func(d *[]core.Line, cfg builderConfig) error

// BuildDrawing runs the constructors in order against one shared config
// and returns the combined drawing.
func BuildDrawing(bopts []BuilderOption, cons ...Constructor) ([]core.Line, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("BuildDrawing: jitter: %w", ErrNeedRandSource)
	}
	var lines []core.Line
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDrawing: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&lines, cfg); err != nil {
			return nil, fmt.Errorf("BuildDrawing: %w", err)
		}
	}

	return lines, nil
}

// BuildGraph is BuildDrawing followed by core.FromLines.
func BuildGraph(dopts []core.DrawingOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	lines, err := BuildDrawing(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.FromLines(lines, dopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}
