// SPDX-License-Identifier: MIT

package cmd

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
)

func newDistancesCmd(a *app) *cobra.Command {
	var maxDist float64
	cmd := &cobra.Command{
		Use:   "distances SOURCE",
		Short: "single-source shortest distances (Dijkstra)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.Source(args[0]), dijkstra.WithReturnPath()}
			if maxDist > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}
			dist, prev, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}
			var data [][]string
			for _, key := range g.Keys() {
				d := dist[key]
				if math.IsInf(d, 1) {
					data = append(data, []string{key, "unreachable", ""})
					continue
				}
				t, err := dijkstra.Trail(args[0], key, dist, prev)
				if err != nil {
					return err
				}
				data = append(data, []string{key, num(d), joinNodes(t.Nodes())})
			}
			table := newTable(cmd.OutOrStdout(), "node", "distance", "trail")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
	cmd.Flags().Float64Var(&maxDist, "max-distance", 0, "stop exploring beyond this distance (0 = no cap)")

	return cmd
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "print the all-pairs shortest-path cost matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := a.inspector()
			if err != nil {
				return err
			}
			keys, m, err := in.Solver().CostMatrix()
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), append([]string{""}, keys...)...)
			table.SetAutoFormatHeaders(false)
			for i, k := range keys {
				row, err := m.Row(i)
				if err != nil {
					return err
				}
				cells := make([]string, 0, len(row)+1)
				cells = append(cells, k)
				for _, v := range row {
					cells = append(cells, num(v))
				}
				table.Append(cells)
			}
			table.Render()

			return nil
		},
	}
}
