package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesavant42/textbench/internal/models"
)

func historyModel() TabbedTableModel {
	runs := []models.TimingRun{
		{ID: 3, Algo: "rle", N: 300, Elapsed: time.Microsecond},
		{ID: 2, Algo: "lfs", N: 200, K: 20, Elapsed: time.Millisecond},
		{ID: 1, Algo: "date", N: 100, ErrKind: "InvalidFormat"},
	}
	stats := []models.AlgoStats{{Algo: "rle", N: 300, Runs: 1}}
	return NewTabbedTableModel(HistoryConfig("runs.db", runs, stats))
}

func send(m TabbedTableModel, msgs ...tea.Msg) TabbedTableModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(TabbedTableModel)
	}
	return m
}

func TestTabbedTableSelectRun(t *testing.T) {
	m := send(historyModel(),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	res := m.Result()
	if res.Cancelled || res.SelectedPage != PageRuns || res.SelectedRow != 1 {
		t.Errorf("Result() = %+v, want runs page row 1", res)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestTabbedTableStatsPageReadOnly(t *testing.T) {
	m := send(historyModel(),
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.currentPage != PageStats {
		t.Fatalf("currentPage = %d, want stats", m.currentPage)
	}
	if res := m.Result(); res.SelectedRow != -1 || res.Cancelled {
		t.Errorf("Enter on read-only page changed result: %+v", res)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.currentPage != PageRuns {
		t.Errorf("Tab should wrap back to runs, got page %d", m.currentPage)
	}
}

func TestTabbedTableQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := send(historyModel(), key)
		if !m.Result().Cancelled {
			t.Errorf("%q did not cancel", key.String())
		}
	}
}

func TestTabbedTableView(t *testing.T) {
	m := send(historyModel(), tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"Timing History", "Runs (3)", "Stats (1)", "runs.db: 3 runs", "InvalidFormat"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTabbedTableEmptyConfig(t *testing.T) {
	m := NewTabbedTableModel(TabbedTableConfig{Title: "Nothing"})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Result().SelectedRow != -1 {
		t.Error("placeholder page should not be selectable")
	}
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		width, height int
		wantViewport  int
		wantTableRows int
	}{
		{40, 10, MinViewportWidth, MinTableHeight},
		{120, 40, 120, 40 - ChromeHeight},
		{500, 0, MaxViewportWidth, DefaultHeight - ChromeHeight},
	}

	for _, tt := range tests {
		l := NewLayout(tt.width, tt.height)
		if l.ViewportWidth != tt.wantViewport || l.TableHeight != tt.wantTableRows {
			t.Errorf("NewLayout(%d, %d) = %+v", tt.width, tt.height, l)
		}
		if l.InnerWidth != l.ViewportWidth-2 {
			t.Errorf("InnerWidth = %d, want %d", l.InnerWidth, l.ViewportWidth-2)
		}
	}
}

func TestCalculateColumns(t *testing.T) {
	cols := CalculateColumns([]ColumnSpec{
		{Title: "Fixed", FixedWidth: 10},
		{Title: "A", FlexRatio: 1},
		{Title: "B", FlexRatio: 3, MinWidth: 5},
	}, 106)

	// 106 - 3 separators*2 - 10 fixed = 90 flexible
	if cols[0].Width != 10 || cols[1].Width != 22 || cols[2].Width != 67 {
		t.Errorf("CalculateColumns() widths = %d/%d/%d", cols[0].Width, cols[1].Width, cols[2].Width)
	}

	narrow := CalculateColumns([]ColumnSpec{{Title: "X", FlexRatio: 1, MinWidth: 80}}, 10)
	if narrow[0].Width != 80 {
		t.Errorf("MinWidth not applied: %d", narrow[0].Width)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"5000", 5000, false},
		{" 5_000 ", 5000, false},
		{"1,000,000", 1000000, false},
		{"9", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-20", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input, 10)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
