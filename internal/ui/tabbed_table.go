package ui

// tabbed_table.go provides a multi-page tabbed table viewer.
// Each page is its own bubbles table; Tab/←/→ switch pages.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// TabbedTablePage defines a single page/tab of data
type TabbedTablePage struct {
	Name     string
	Columns  []ColumnSpec
	Rows     []table.Row
	ReadOnly bool   // Enter does nothing; scrolling only
	HelpText string // overrides the config help text when set
}

// TabbedTableConfig defines the complete configuration for a tabbed table
type TabbedTableConfig struct {
	Title    string
	Subtitle string
	Pages    []TabbedTablePage
	HelpText string
}

// TabbedTableResult contains the result after the TUI exits
type TabbedTableResult struct {
	SelectedPage int // -1 if cancelled
	SelectedRow  int // -1 if cancelled or read-only page
	Cancelled    bool
}

// TabbedTableModel is a generic multi-page table viewer
type TabbedTableModel struct {
	config      TabbedTableConfig
	tables      []table.Model
	currentPage int
	layout      Layout
	result      TabbedTableResult
	quitting    bool
}

// NewTabbedTableModel creates a new tabbed table viewer
func NewTabbedTableModel(cfg TabbedTableConfig) TabbedTableModel {
	layout := DefaultLayout()

	if len(cfg.Pages) == 0 {
		cfg.Pages = []TabbedTablePage{{
			Name:     "Empty",
			Columns:  []ColumnSpec{{Title: "No Data", FlexRatio: 100}},
			Rows:     []table.Row{{"No pages configured"}},
			ReadOnly: true,
		}}
	}

	if cfg.HelpText == "" {
		if len(cfg.Pages) > 1 {
			cfg.HelpText = "↑/↓: navigate | Tab/←/→: switch page | Enter: select | q/Esc: quit"
		} else {
			cfg.HelpText = "↑/↓: navigate | Enter: select | q/Esc: quit"
		}
	}

	tables := make([]table.Model, len(cfg.Pages))
	for i, page := range cfg.Pages {
		tables[i] = InitTable(page.Columns, page.Rows, layout, i == 0)
	}

	return TabbedTableModel{
		config: cfg,
		tables: tables,
		layout: layout,
		result: TabbedTableResult{SelectedPage: -1, SelectedRow: -1},
	}
}

func (m TabbedTableModel) Init() tea.Cmd {
	return StandardInit()
}

func (m TabbedTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.updateAllTableSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.tables[m.currentPage], cmd = m.tables[m.currentPage].Update(msg)
	return m, cmd
}

func (m TabbedTableModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if quit, cmd := HandleQuitKeys(key); quit {
		m.result.Cancelled = true
		m.quitting = true
		return m, cmd
	}

	pages := len(m.config.Pages)
	switch key {
	case "tab", "right", "l":
		if pages > 1 {
			m.switchPage((m.currentPage + 1) % pages)
		}
		return m, nil

	case "shift+tab", "left", "h":
		if pages > 1 {
			m.switchPage((m.currentPage + pages - 1) % pages)
		}
		return m, nil

	case "enter":
		page := m.config.Pages[m.currentPage]
		if page.ReadOnly {
			return m, nil
		}
		cursor := m.tables[m.currentPage].Cursor()
		if cursor >= 0 && cursor < len(page.Rows) {
			m.result.SelectedPage = m.currentPage
			m.result.SelectedRow = cursor
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case "home", "g":
		m.tables[m.currentPage].GotoTop()
		return m, nil

	case "end", "G":
		m.tables[m.currentPage].GotoBottom()
		return m, nil
	}

	// up/down, pgup/pgdown and friends use the table's own key map
	var cmd tea.Cmd
	m.tables[m.currentPage], cmd = m.tables[m.currentPage].Update(msg)
	return m, cmd
}

func (m *TabbedTableModel) switchPage(newPage int) {
	if newPage < 0 || newPage >= len(m.config.Pages) {
		return
	}
	m.tables[m.currentPage].Blur()
	m.currentPage = newPage
	m.tables[m.currentPage].Focus()
	m.tables[m.currentPage].GotoTop()
}

func (m *TabbedTableModel) updateAllTableSizes() {
	for i, page := range m.config.Pages {
		m.tables[i].SetColumns(CalculateColumns(page.Columns, m.layout.TableWidth))
		m.tables[i].SetHeight(m.layout.TableHeight)
	}
}

func (m TabbedTableModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(RenderTitle(m.config.Title))
	content.WriteString("\n")

	if len(m.config.Pages) > 1 {
		content.WriteString(m.renderTabIndicator())
		content.WriteString("\n")
	}

	content.WriteString(FullWidthDivider(m.layout.InnerWidth))
	content.WriteString("\n\n")

	if m.config.Subtitle != "" {
		content.WriteString(RenderDim(m.config.Subtitle))
		content.WriteString("\n\n")
	}

	content.WriteString(RenderTableWithSelection(m.tables[m.currentPage], m.layout))

	helpText := m.config.Pages[m.currentPage].HelpText
	if helpText == "" {
		helpText = m.config.HelpText
	}

	return BuildTwoBoxView(content.String(), helpText, m.layout)
}

func (m TabbedTableModel) renderTabIndicator() string {
	parts := make([]string, 0, len(m.config.Pages))
	for i, page := range m.config.Pages {
		label := fmt.Sprintf("%s (%d)", page.Name, len(page.Rows))
		if i == m.currentPage {
			parts = append(parts, RenderTabActive(label))
		} else {
			parts = append(parts, RenderTabInactive(label))
		}
	}
	return strings.Join(parts, " ") + "  " + RenderDim("(Tab/←/→)")
}

// Result returns the selection result after the TUI exits
func (m TabbedTableModel) Result() TabbedTableResult {
	return m.result
}

// RunTabbedTable runs a tabbed table TUI and returns the result
func RunTabbedTable(cfg TabbedTableConfig) (TabbedTableResult, error) {
	p := tea.NewProgram(NewTabbedTableModel(cfg), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return TabbedTableResult{Cancelled: true}, fmt.Errorf("tabbed table error: %w", err)
	}
	return finalModel.(TabbedTableModel).Result(), nil
}
