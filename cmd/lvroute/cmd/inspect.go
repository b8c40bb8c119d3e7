// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/matching"
	"github.com/katalvlaran/lvroute/parity"
	"github.com/katalvlaran/lvroute/route"
)

func newCostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cost FROM TO",
		Short: "print the shortest-path cost between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := a.inspector()
			if err != nil {
				return err
			}
			c, err := in.Cost(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), num(c))

			return err
		},
	}
}

func newTrailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trail FROM TO",
		Short: "print the edges of the shortest trail between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := a.inspector()
			if err != nil {
				return err
			}
			t, err := in.Trail(args[0], args[1])
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), "#", "edge", "from", "to", "cost", "total")
			table.AppendBulk(trailRows(t))
			table.SetFooter([]string{"", "", "", "", "cost", num(t.Cost())})
			table.Render()

			return nil
		},
	}
}

func newUnbalancedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unbalanced",
		Short: "list the odd-degree nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.inspector()
			if err != nil {
				return err
			}
			an, err := parity.New(g)
			if err != nil {
				return err
			}
			var data [][]string
			for _, n := range an.Unbalanced() {
				data = append(data, []string{n.Key, strconv.Itoa(n.Degree()), num(n.Pos.X), num(n.Pos.Y)})
			}
			table := newTable(cmd.OutOrStdout(), "node", "degree", "x", "y")
			table.AppendBulk(data)
			table.SetFooter([]string{"", "", "kind", an.Kind().String()})
			table.Render()

			return nil
		},
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "pair the odd-degree nodes with the cheapest correction trails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := a.inspector(route.WithMatchOptions(a.matchOptions()...))
			if err != nil {
				return err
			}
			res, err := in.Normalize()
			if err != nil {
				return err
			}
			var data [][]string
			for i, p := range res.Pairs {
				data = append(data, []string{strconv.Itoa(i + 1), p.A, p.B, num(p.Cost), joinNodes(p.Trail.Nodes())})
			}
			table := newTable(cmd.OutOrStdout(), "#", "a", "b", "cost", "trail")
			table.AppendBulk(data)
			table.SetFooter([]string{"", "", "total", num(res.TotalCost), ""})
			table.Render()

			return nil
		},
	}
	addMatchFlags(cmd)

	return cmd
}

func newCircuitCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "circuit",
		Short: "print a closed walk covering every edge at least once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, g, err := a.inspector(route.WithMatchOptions(a.matchOptions()...))
			if err != nil {
				return err
			}
			c, err := in.Circuit(start)
			if err != nil {
				return err
			}
			var (
				data [][]string
				acc  float64
			)
			for i, s := range c.Steps {
				acc += s.Edge.Cost()
				dup := ""
				if s.Duplicate {
					dup = "yes"
				}
				data = append(data, []string{strconv.Itoa(i + 1), s.Edge.ID, s.From, s.To, num(s.Edge.Cost()), num(acc), dup})
			}
			table := newTable(cmd.OutOrStdout(), "#", "edge", "from", "to", "cost", "total", "again")
			table.AppendBulk(data)
			table.SetFooter([]string{"", "", "", "", "cost", num(c.Cost), strconv.Itoa(c.Duplicates())})
			table.Render()
			a.log.Info().
				Float64("drawn", g.TotalCost()).
				Float64("walked", c.Cost).
				Msg("circuit")

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start node (default: smallest key)")
	addMatchFlags(cmd)

	return cmd
}

// addMatchFlags declares the pairing flags; app.init binds them for the
// command that actually runs.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", matching.BestFirst.String(),
		fmt.Sprintf("pairing strategy %s|%s", matching.BestFirst, matching.Greedy))
	cmd.Flags().Bool("improve", false, "run the pair-swap improvement after pairing")
}

func (a *app) matchOptions() []matching.Option {
	opts := []matching.Option{matching.WithStrategy(a.cfg.Match.Strategy)}
	if a.cfg.Match.Improve {
		opts = append(opts, matching.WithImprovement())
	}

	return opts
}
