// Command timing times one text routine on a generated input of length N.
//
//	timing [-db PATH] <ALGO> <N>
//
// Run with no arguments on a terminal to pick the algorithm and size interactively.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/thesavant42/textbench/internal/bench"
	"github.com/thesavant42/textbench/internal/config"
	"github.com/thesavant42/textbench/internal/db"
	"github.com/thesavant42/textbench/internal/ui"
)

// Exit codes
const (
	exitSuccess    = 0
	exitUsage      = 1
	exitRunFailure = 2
)

// interactive reports whether prompts can be shown
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError(err.Error())
		return exitRunFailure
	}

	fs := flag.NewFlagSet("timing", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dbPath := fs.String("db", "", "Also store the run in this SQLite database")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	minN := max(cfg.MinN, bench.DefaultMinN)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, ui.TimingUsage(minN))
			return exitSuccess
		}
		return usageError(stdout, minN, err.Error())
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return usageError(stdout, minN, err.Error())
	}
	logger := config.NewLogger(level)

	algo, n, code := parseArgs(fs.Args(), minN, stdout)
	if code != exitSuccess {
		return code
	}

	runner := bench.NewRunner(logger)
	runner.K = cfg.LFSK
	runner.MinN = minN
	runner.PreviewLen = cfg.PreviewLen

	result, err := runner.Run(algo, n)
	if err != nil {
		ui.PrintError(err.Error())
		return exitRunFailure
	}

	if err := ui.WriteRunReport(stdout, result); err != nil {
		logger.Error("failed to write report", "err", err)
		return exitRunFailure
	}

	if *dbPath != "" {
		database, err := db.New(*dbPath)
		if err != nil {
			ui.PrintError(err.Error())
			return exitRunFailure
		}
		defer database.Close()

		id, err := database.InsertRun(result)
		if err != nil {
			ui.PrintError(err.Error())
			return exitRunFailure
		}
		logger.Info("stored run", "id", id, "db", *dbPath)
	}

	return exitSuccess
}

// parseArgs validates <ALGO> <N>. With no arguments on an interactive
// terminal it prompts instead.
func parseArgs(args []string, minN int, stdout io.Writer) (bench.Algo, int, int) {
	if len(args) == 0 && interactive() {
		names := make([]string, len(bench.Algos))
		for i, a := range bench.Algos {
			names[i] = string(a)
		}
		picked, n, err := ui.PromptForRun(names, minN)
		if err != nil {
			ui.PrintError(err.Error())
			return "", 0, exitUsage
		}
		return bench.Algo(picked), n, exitSuccess
	}

	if len(args) != 2 {
		fmt.Fprint(stdout, ui.TimingUsage(minN))
		return "", 0, exitUsage
	}

	algo, err := bench.ParseAlgo(args[0])
	if err != nil {
		return "", 0, usageError(stdout, minN, fmt.Sprintf("unknown <ALGO> %q", args[0]))
	}

	n, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return "", 0, usageError(stdout, minN, "<N> must be an integer")
	}
	if n < 0 {
		return "", 0, usageError(stdout, minN, "<N> must be non-negative")
	}
	if n < int64(minN) {
		return "", 0, usageError(stdout, minN, fmt.Sprintf("<N> must be at least %d", minN))
	}

	return algo, int(n), exitSuccess
}

func usageError(stdout io.Writer, minN int, msg string) int {
	fmt.Fprintf(stdout, "error: %s\n\n", msg)
	fmt.Fprint(stdout, ui.TimingUsage(minN))
	return exitUsage
}
