package ui

// base_model.go provides common helpers for Bubble Tea table models.

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// InitTable creates and configures a table with proper styling and dimensions.
// Use this instead of calling table.New() directly.
func InitTable(specs []ColumnSpec, rows []table.Row, layout Layout, focused bool) table.Model {
	t := table.New(
		table.WithColumns(CalculateColumns(specs, layout.TableWidth)),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()
	return t
}

// StandardInit returns the standard Init command for table models
func StandardInit() tea.Cmd {
	return tea.WindowSize()
}

// HandleQuitKeys returns true and Quit cmd for q/esc/ctrl+c keys.
//
// Example:
//
//	case tea.KeyMsg:
//	    if quit, cmd := HandleQuitKeys(msg.String()); quit {
//	        m.quitting = true
//	        return m, cmd
//	    }
func HandleQuitKeys(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "esc", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}
