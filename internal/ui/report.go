package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/thesavant42/textbench/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBorder).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	failedRowStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	statStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Bar returns the separator line framing a timing report
func Bar() string {
	return strings.Repeat("-", BarWidth)
}

// FormatElapsed renders seconds with six significant digits
func FormatElapsed(seconds float64) string {
	return strconv.FormatFloat(seconds, 'g', 6, 64)
}

// TimingUsage returns the usage text of the timing command
func TimingUsage(minN int) string {
	var sb strings.Builder
	sb.WriteString("usage:\n\n")
	sb.WriteString("    timing [-db PATH] <ALGO> <N>\n\n")
	sb.WriteString("where\n\n")
	sb.WriteString("    <ALGO> is one of: rle lfs date\n")
	fmt.Fprintf(&sb, "    <N> is an integer string length (at least %d)\n\n", minN)
	sb.WriteString("Example:\n")
	sb.WriteString("    $ ./timing rle 5000\n\n")
	return sb.String()
}

// FormatRunReport renders one run in the plain report format:
// a bar, the algorithm, n, the input preview, the elapsed time and a bar.
func FormatRunReport(run models.TimingRun) string {
	var sb strings.Builder
	sb.WriteString(Bar() + "\n")
	fmt.Fprintf(&sb, "algo = %s\n", run.Algo)
	fmt.Fprintf(&sb, "n = %d\n", run.N)
	fmt.Fprintf(&sb, "first %d characters of input:\n", len(run.InputPreview))
	sb.WriteString(run.InputPreview + "\n")
	if run.Failed() {
		fmt.Fprintf(&sb, "error = %s\n", run.ErrKind)
	}
	fmt.Fprintf(&sb, "elapsed time=%s seconds\n", FormatElapsed(run.Seconds()))
	sb.WriteString(Bar() + "\n")
	return sb.String()
}

// WriteRunReport writes FormatRunReport(run) to w
func WriteRunReport(w io.Writer, run models.TimingRun) error {
	_, err := io.WriteString(w, FormatRunReport(run))
	return err
}

// FormatRunDetail renders every stored field of a run, one per line
func FormatRunDetail(run models.TimingRun) string {
	result := "ok"
	if run.Failed() {
		result = run.ErrKind
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Run #%d\n", run.ID)
	fmt.Fprintf(&sb, "  algo:     %s\n", run.Algo)
	fmt.Fprintf(&sb, "  n:        %s\n", humanize.Comma(int64(run.N)))
	if run.K > 0 {
		fmt.Fprintf(&sb, "  k:        %d\n", run.K)
	}
	fmt.Fprintf(&sb, "  elapsed:  %s seconds\n", FormatElapsed(run.Seconds()))
	fmt.Fprintf(&sb, "  result:   %s\n", result)
	if !run.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, "  recorded: %s (%s)\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(run.CreatedAt))
	}
	fmt.Fprintf(&sb, "  input:    %q\n", run.InputPreview)
	fmt.Fprintf(&sb, "  output:   %q\n", run.OutputPreview)
	return sb.String()
}

// PrintHeader prints a styled header with an optional subtitle
func PrintHeader(title, subtitle string) {
	fmt.Println()
	fmt.Println(titleStyle.Render(title))
	if subtitle != "" {
		fmt.Println(subtitleStyle.Render(subtitle))
	}
	fmt.Println()
}

// boxTable renders rows in a bordered text table.
//
// This is a CLI report (non-interactive), so the structure is built with
// string formatting and lipgloss is used only for colors. Interactive tables
// use bubbles/table instead (see tabbed_table.go).
func boxTable(headers []string, rows [][]string, failed func(i int) bool) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = c + strings.Repeat(" ", widths[i]-StringWidth(c))
		}
		return "│ " + strings.Join(parts, " │ ") + " │"
	}

	total := 1
	for _, w := range widths {
		total += w + 3
	}
	separator := strings.Repeat("─", total-2)

	var sb strings.Builder
	sb.WriteString(borderStyle.Render("┌"+separator+"┐") + "\n")
	sb.WriteString(headerStyle.Render(line(headers)) + "\n")
	sb.WriteString(borderStyle.Render("├"+separator+"┤") + "\n")
	for i, row := range rows {
		style := rowStyle
		if failed != nil && failed(i) {
			style = failedRowStyle
		}
		sb.WriteString(style.Render(line(row)) + "\n")
	}
	sb.WriteString(borderStyle.Render("└"+separator+"┘") + "\n")
	return sb.String()
}

// RenderStatsTable renders per-size aggregates as a text table
func RenderStatsTable(stats []models.AlgoStats) string {
	if len(stats) == 0 {
		return subtitleStyle.Render("No successful runs recorded") + "\n"
	}

	headers := make([]string, 0, len(StatsColumns()))
	for _, c := range StatsColumns() {
		headers = append(headers, c.Title)
	}

	rows := make([][]string, 0, len(stats))
	for _, r := range StatsRows(stats) {
		rows = append(rows, []string(r))
	}
	return boxTable(headers, rows, nil)
}

// RenderRunsTable renders stored runs as a text table; failed runs are red
func RenderRunsTable(runs []models.TimingRun) string {
	if len(runs) == 0 {
		return subtitleStyle.Render("No runs recorded") + "\n"
	}

	headers := make([]string, 0, len(RunColumns()))
	for _, c := range RunColumns() {
		headers = append(headers, c.Title)
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range RunRows(runs) {
		rows = append(rows, []string(r))
	}
	return boxTable(headers, rows, func(i int) bool { return runs[i].Failed() })
}

// PrintStatsTable prints RenderStatsTable(stats) to stdout
func PrintStatsTable(stats []models.AlgoStats) {
	fmt.Print(RenderStatsTable(stats))
}

// PrintRunsTable prints RenderRunsTable(runs) to stdout
func PrintRunsTable(runs []models.TimingRun) {
	fmt.Print(RenderRunsTable(runs))
}

// PrintSummary prints a one-line sweep summary
func PrintSummary(algo string, runs []models.TimingRun) {
	var failed int
	for _, r := range runs {
		if r.Failed() {
			failed++
		}
	}
	summary := fmt.Sprintf("Summary: %s runs for %s, %s failed",
		statStyle.Render(strconv.Itoa(len(runs))), algo, strconv.Itoa(failed))
	fmt.Println(subtitleStyle.Render(summary))
	fmt.Println()
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(statStyle.Render(message))
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Bold(true)
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+message))
}
