// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvroute/core"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)

	return table
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinNodes(keys []string) string {
	return strings.Join(keys, " → ")
}

// trailRows lists the edges of t with a running cost.
func trailRows(t *core.Trail) [][]string {
	var (
		data [][]string
		acc  float64
		cur  = t.From()
	)
	for i, e := range t.Path() {
		next, _ := e.Other(cur)
		acc += e.Cost()
		data = append(data, []string{strconv.Itoa(i + 1), e.ID, cur, next, num(e.Cost()), num(acc)})
		cur = next
	}

	return data
}
