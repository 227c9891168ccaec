package ui

import (
	"fmt"

	"github.com/thesavant42/textbench/internal/models"
)

const (
	PageRuns  = 0
	PageStats = 1
)

// HistoryConfig builds the two-page browser over stored runs and their aggregates
func HistoryConfig(dbPath string, runs []models.TimingRun, stats []models.AlgoStats) TabbedTableConfig {
	return TabbedTableConfig{
		Title:    "Timing History",
		Subtitle: fmt.Sprintf("%s: %d runs, %d algo/size groups", dbPath, len(runs), len(stats)),
		Pages: []TabbedTablePage{
			{
				Name:     "Runs",
				Columns:  RunColumns(),
				Rows:     RunRows(runs),
				HelpText: "↑/↓: navigate | Tab: stats | Enter: show run | q/Esc: quit",
			},
			{
				Name:     "Stats",
				Columns:  StatsColumns(),
				Rows:     StatsRows(stats),
				ReadOnly: true,
			},
		},
	}
}

// BrowseHistory runs the history TUI. It returns the run picked with Enter,
// or nil when the user quit without picking one.
func BrowseHistory(dbPath string, runs []models.TimingRun, stats []models.AlgoStats) (*models.TimingRun, error) {
	result, err := RunTabbedTable(HistoryConfig(dbPath, runs, stats))
	if err != nil {
		return nil, err
	}
	if result.Cancelled || result.SelectedPage != PageRuns {
		return nil, nil
	}
	if result.SelectedRow < 0 || result.SelectedRow >= len(runs) {
		return nil, nil
	}
	return &runs[result.SelectedRow], nil
}
