package ui

// view_helpers.go provides common View() rendering helpers.

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// RenderTableWithSelection renders a bubbles table with full-width selection highlight.
//
// bubbles/table View() output is the header row followed by only the visible
// data rows, so the cursor's screen row is recomputed from the table height.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	lines := strings.Split(t.View(), "\n")
	result := make([]string, 0, len(lines)+1)

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	// Match the table's internal viewport offset
	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		if maxStart := totalRows - height; start > maxStart {
			start = maxStart
		}
	}
	visibleCursorIndex := cursor - start

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			result = append(result, FullWidthDivider(layout.InnerWidth))
			continue
		}

		if i-1 == visibleCursorIndex {
			// Strip escape codes first so embedded resets don't kill the background
			clean := stripEscapeCodes(line)
			if w := StringWidth(clean); w < layout.InnerWidth {
				clean += strings.Repeat(" ", layout.InnerWidth-w)
			} else if w > layout.InnerWidth {
				clean = truncateToWidth(clean, layout.InnerWidth)
			}
			result = append(result, SelectedStyle.Render(clean))
			continue
		}

		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// ViewHeader renders title + optional subtitle + full-width divider + spacing
func ViewHeader(title, subtitle string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(RenderDim(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(FullWidthDivider(innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// FullWidthDivider returns a horizontal divider spanning the inner width
func FullWidthDivider(innerWidth int) string {
	if innerWidth < 0 {
		innerWidth = 0
	}
	return strings.Repeat("─", innerWidth)
}
