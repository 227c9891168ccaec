package ui

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thesavant42/textbench/internal/models"
)

// DefaultExportName returns the dated markdown filename for an export
func DefaultExportName(algo string, now time.Time) string {
	if algo == "" {
		algo = "all"
	}
	return fmt.Sprintf("textbench-%s-%s.md", algo, now.Format("2006-01-02"))
}

// GenerateMarkdownReport renders aggregates and, when given, individual runs as markdown
func GenerateMarkdownReport(title string, stats []models.AlgoStats, runs []models.TimingRun, generated time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "**Generated:** %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "**Size groups:** %d\n", len(stats))
	if runs != nil {
		fmt.Fprintf(&sb, "**Runs:** %d\n", len(runs))
	}
	sb.WriteString("\n")

	sb.WriteString("## Elapsed time by input size\n\n")
	sb.WriteString(generateStatsTable(stats))

	if runs != nil {
		sb.WriteString("\n## Runs\n\n")
		sb.WriteString(generateRunsTable(runs))
	}

	return sb.String()
}

func generateStatsTable(stats []models.AlgoStats) string {
	if len(stats) == 0 {
		return "No data\n"
	}

	var sb strings.Builder
	sb.WriteString("| Algo | N | Runs | Min (s) | Mean (s) | Max (s) |\n")
	sb.WriteString("|------|--:|-----:|--------:|---------:|--------:|\n")
	for _, s := range stats {
		fmt.Fprintf(&sb, "| %s | %s | %d | %s | %s | %s |\n",
			s.Algo, humanize.Comma(int64(s.N)), s.Runs,
			FormatSeconds(s.Min.Seconds()), FormatSeconds(s.Mean.Seconds()), FormatSeconds(s.Max.Seconds()))
	}
	return sb.String()
}

func generateRunsTable(runs []models.TimingRun) string {
	if len(runs) == 0 {
		return "No data\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Algo | N | K | Elapsed (s) | Result |\n")
	sb.WriteString("|---:|------|--:|--:|------------:|--------|\n")
	for _, r := range runs {
		k := "-"
		if r.K > 0 {
			k = strconv.FormatUint(uint64(r.K), 10)
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %s |\n",
			r.ID, r.Algo, humanize.Comma(int64(r.N)), k, FormatSeconds(r.Seconds()), resultLabel(r))
	}
	return sb.String()
}

// ExportMarkdown writes the markdown report to filename and returns the path
func ExportMarkdown(filename, title string, stats []models.AlgoStats, runs []models.TimingRun) (string, error) {
	content := GenerateMarkdownReport(title, stats, runs, time.Now())
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}
	return filename, nil
}

// WriteRunsCSV writes one CSV record per run with a header row
func WriteRunsCSV(w io.Writer, runs []models.TimingRun) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "algo", "n", "k", "elapsed_ns", "err_kind", "created_at", "input_preview"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range runs {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Algo,
			strconv.Itoa(r.N),
			strconv.FormatUint(uint64(r.K), 10),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
			r.ErrKind,
			created,
			r.InputPreview,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write run %d: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportRunsCSV writes runs to a CSV file at path
func ExportRunsCSV(path string, runs []models.TimingRun) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteRunsCSV(f, runs); err != nil {
		return err
	}
	return f.Close()
}

// ExportDatabaseBackup copies the database to a timestamped file next to it
func ExportDatabaseBackup(currentDBPath string) (string, error) {
	timestamp := time.Now().Format("2006-01-02-150405")
	baseName := strings.TrimSuffix(filepath.Base(currentDBPath), filepath.Ext(currentDBPath))
	backupPath := filepath.Join(filepath.Dir(currentDBPath), fmt.Sprintf("%s-backup-%s.db", baseName, timestamp))

	src, err := os.Open(currentDBPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to finish backup: %w", err)
	}

	return backupPath, nil
}
