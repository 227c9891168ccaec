package ui

// columns.go provides column width calculation for bubbles/table.

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"

	"github.com/thesavant42/textbench/internal/models"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are allocated.
//
// Example:
//
//	columns := CalculateColumns([]ColumnSpec{
//	    {Title: "Algo", FixedWidth: 6},
//	    {Title: "Input", FlexRatio: 100, MinWidth: 20},
//	}, layout.TableWidth)
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	// Separators between cells come out of the shared width
	totalWidth -= ColSeparatorWidth * len(specs)

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// RunColumns returns column specs for the stored runs table
func RunColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "ID", FixedWidth: 6},
		{Title: "Algo", FixedWidth: 6},
		{Title: "N", FixedWidth: 12},
		{Title: "K", FixedWidth: 4},
		{Title: "Elapsed", FixedWidth: 12},
		{Title: "Result", FixedWidth: 18},
		{Title: "Input", FlexRatio: 100, MinWidth: 20},
	}
}

// StatsColumns returns column specs for the per-size aggregate table
func StatsColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Algo", FixedWidth: 6},
		{Title: "N", FlexRatio: 25, MinWidth: 10},
		{Title: "Runs", FixedWidth: 6},
		{Title: "Min", FlexRatio: 25, MinWidth: 12},
		{Title: "Mean", FlexRatio: 25, MinWidth: 12},
		{Title: "Max", FlexRatio: 25, MinWidth: 12},
	}
}

// RunRows converts stored runs to table rows matching RunColumns
func RunRows(runs []models.TimingRun) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		k := "-"
		if r.K > 0 {
			k = strconv.FormatUint(uint64(r.K), 10)
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Algo,
			humanize.Comma(int64(r.N)),
			k,
			FormatSeconds(r.Elapsed.Seconds()),
			resultLabel(r),
			r.InputPreview,
		})
	}
	return rows
}

// StatsRows converts aggregates to table rows matching StatsColumns
func StatsRows(stats []models.AlgoStats) []table.Row {
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, table.Row{
			s.Algo,
			humanize.Comma(int64(s.N)),
			strconv.Itoa(s.Runs),
			FormatSeconds(s.Min.Seconds()),
			FormatSeconds(s.Mean.Seconds()),
			FormatSeconds(s.Max.Seconds()),
		})
	}
	return rows
}

func resultLabel(r models.TimingRun) string {
	if r.Failed() {
		return r.ErrKind
	}
	return "ok"
}

// FormatSeconds renders a duration in seconds the way the timing report does
func FormatSeconds(s float64) string {
	return fmt.Sprintf("%.6f", s)
}
