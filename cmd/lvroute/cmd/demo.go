// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/internal/drawing"
)

type demoFlags struct {
	shape      string
	n          int
	rows, cols int
	p          float64
	seed       int64
	spacing    float64
	jitter     float64
	out        string
}

func newDemoCmd(a *app) *cobra.Command {
	var f demoFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "write a generated drawing as YAML",
		Long: "demo draws one of the builder shapes (cycle, path, grid, star, wheel, " +
			"complete, random) and writes it to --out or stdout, ready for --input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			if !(f.spacing > 0) {
				return fmt.Errorf("--spacing must be positive, got %g", f.spacing)
			}
			if f.jitter < 0 {
				return fmt.Errorf("--jitter must be non-negative, got %g", f.jitter)
			}
			opts := []builder.BuilderOption{
				builder.WithSpacing(f.spacing),
				builder.WithSeed(f.seed),
				builder.WithJitter(f.jitter),
			}
			lines, err := builder.BuildDrawing(opts, ctor)
			if err != nil {
				return err
			}
			file := drawing.FromLines(lines, 0)
			a.log.Debug().Str("shape", f.shape).Int("lines", len(lines)).Msg("demo drawing")
			if f.out == "" {
				return drawing.Encode(cmd.OutOrStdout(), file)
			}

			return drawing.Save(f.out, file)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", "grid", "cycle|path|grid|star|wheel|complete|random")
	fl.IntVar(&f.n, "n", 6, "vertex count for cycle, path, star, wheel, complete and random")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.p, "p", 0.5, "chord probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "RNG seed for random and jitter")
	fl.Float64Var(&f.spacing, "spacing", builder.DefaultSpacing, "side length / lattice step")
	fl.Float64Var(&f.jitter, "jitter", 0, "random vertex displacement")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (f demoFlags) constructor() (builder.Constructor, error) {
	switch f.shape {
	case "cycle":
		return builder.Cycle(f.n), nil
	case "path":
		return builder.Path(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "star":
		return builder.Star(f.n), nil
	case "wheel":
		return builder.Wheel(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	}

	return nil, fmt.Errorf("unknown shape %q", f.shape)
}
