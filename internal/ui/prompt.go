package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// ParseSize parses a user-entered input size such as "5000" or "5_000"
func ParseSize(s string, minN int) (int, error) {
	s = strings.TrimSpace(sanitizeInput(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("size cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("size must be an integer")
	}
	if n < minN {
		return 0, fmt.Errorf("size must be at least %d", minN)
	}
	return n, nil
}

// PromptForRun asks for an algorithm and an input size
func PromptForRun(algos []string, minN int) (algo string, n int, err error) {
	var sizeInput string

	options := make([]huh.Option[string], 0, len(algos))
	for _, a := range algos {
		options = append(options, huh.NewOption(a, a))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Algorithm").
				Description("Which routine to time").
				Options(options...).
				Value(&algo),
			huh.NewInput().
				Title("Input size").
				Description(fmt.Sprintf("String length n (at least %d)", minN)).
				Placeholder("5000").
				Value(&sizeInput).
				Validate(func(s string) error {
					_, err := ParseSize(s, minN)
					return err
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", 0, fmt.Errorf("prompt cancelled: %w", err)
	}

	n, err = ParseSize(sizeInput, minN)
	if err != nil {
		return "", 0, err
	}
	return algo, n, nil
}

// ConfirmClear asks before deleting stored runs
func ConfirmClear(what string, count int) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %d stored runs for %s?", count, what)).
				Description("This cannot be undone; use -backup first to keep a copy").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}

// PromptForExportWithTimeout asks user if they want to export results to markdown.
// Returns false if timeout expires with no response
func PromptForExportWithTimeout(timeoutSeconds int) bool {
	var export bool
	done := make(chan bool, 1)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Export to Markdown? (auto-skip in %ds)", timeoutSeconds)).
				Description("Save the sweep statistics as a markdown document").
				Affirmative("Yes").
				Negative("No").
				Value(&export),
		),
	).WithTheme(NewAppTheme())

	go func() {
		if err := form.Run(); err != nil {
			done <- false
			return
		}
		done <- export
	}()

	select {
	case result := <-done:
		return result
	case <-time.After(time.Duration(timeoutSeconds) * time.Second):
		fmt.Println("\nExport prompt timed out, skipping...")
		return false
	}
}

// PromptForFilename asks user for an export filename
func PromptForFilename(defaultName string) (string, error) {
	var filename string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export Filename").
				Description("Enter the filename for the markdown export").
				Placeholder(defaultName).
				Value(&filename),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return NormalizeMarkdownName(filename, defaultName), nil
}

// NormalizeMarkdownName falls back to defaultName and adds a .md extension
func NormalizeMarkdownName(filename, defaultName string) string {
	filename = strings.TrimSpace(sanitizeInput(filename))
	if filename == "" {
		filename = defaultName
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".md") {
		filename += ".md"
	}
	return filename
}
