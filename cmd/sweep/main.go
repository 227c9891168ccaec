// Command sweep times one routine over a range of input sizes, stores every
// run in the results database and prints per-size statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/thesavant42/textbench/internal/bench"
	"github.com/thesavant42/textbench/internal/config"
	"github.com/thesavant42/textbench/internal/db"
	"github.com/thesavant42/textbench/internal/models"
	"github.com/thesavant42/textbench/internal/ui"
)

type options struct {
	algo    bench.Algo
	from    int
	to      int
	steps   int
	repeat  int
	dbPath  string
	export  string
	spinner bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(2)
	}

	algoName := flag.String("algo", "rle", "Algorithm to sweep (rle, lfs, date)")
	from := flag.Int("from", 1000, "Smallest input size")
	to := flag.Int("to", 100000, "Largest input size")
	steps := flag.Int("steps", 10, "Number of sizes between -from and -to")
	repeat := flag.Int("repeat", 1, "Runs per size")
	dbPath := flag.String("db", cfg.DBPath, "Path to SQLite results database")
	k := flag.Uint("k", cfg.LFSK, "Frequency floor for lfs")
	export := flag.String("export", "", "Write a markdown report to this file")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	noSpinner := flag.Bool("no-spinner", !cfg.Spinner, "Disable the progress spinner")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	logger := config.NewLogger(level)

	algo, err := bench.ParseAlgo(*algoName)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd())
	opts := options{
		algo:    algo,
		from:    *from,
		to:      *to,
		steps:   *steps,
		repeat:  *repeat,
		dbPath:  *dbPath,
		export:  *export,
		spinner: tty && !*noSpinner,
	}

	runner := bench.NewRunner(logger)
	runner.K = *k
	runner.MinN = cfg.MinN
	runner.PreviewLen = cfg.PreviewLen

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, runner, logger, opts); err != nil {
		ui.PrintError(err.Error())
		stop()
		os.Exit(2)
	}

	// Offer the export interactively when no -export was given
	if opts.export == "" && tty && isatty.IsTerminal(os.Stdin.Fd()) {
		if ui.PromptForExportWithTimeout(15) {
			name, err := ui.PromptForFilename(ui.DefaultExportName(string(algo), time.Now()))
			if err != nil {
				ui.PrintError(err.Error())
				return
			}
			database, err := db.New(opts.dbPath)
			if err != nil {
				ui.PrintError(err.Error())
				stop()
				os.Exit(2)
			}
			defer database.Close()

			path, err := exportReport(database, algo, name)
			if err != nil {
				ui.PrintError(err.Error())
				return
			}
			ui.PrintSuccess("Exported to " + path)
		}
	}
}

// sweepSizes repeats each size of the range opts.repeat times
func sweepSizes(opts options) ([]int, error) {
	base, err := bench.Sizes(opts.from, opts.to, opts.steps)
	if err != nil {
		return nil, err
	}
	if opts.repeat < 1 {
		return nil, fmt.Errorf("repeat must be positive, got %d", opts.repeat)
	}

	sizes := make([]int, 0, len(base)*opts.repeat)
	for _, n := range base {
		for i := 0; i < opts.repeat; i++ {
			sizes = append(sizes, n)
		}
	}
	return sizes, nil
}

func run(ctx context.Context, runner *bench.Runner, logger *log.Logger, opts options) error {
	sizes, err := sweepSizes(opts)
	if err != nil {
		return err
	}

	database, err := db.New(opts.dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("starting sweep", "algo", opts.algo, "sizes", len(sizes), "from", opts.from, "to", opts.to)

	var runs []models.TimingRun
	sweep := func(ctx context.Context, progress func(done, total int)) error {
		var err error
		runs, err = runner.Sweep(ctx, opts.algo, sizes, progress)
		return err
	}

	if opts.spinner {
		title := fmt.Sprintf("Sweeping %s over %d sizes...", opts.algo, len(sizes))
		err = ui.RunWithProgress(ctx, title, func(ctx context.Context, update func(string)) error {
			return sweep(ctx, func(done, total int) {
				update(fmt.Sprintf("Sweeping %s... %d/%d", opts.algo, done, total))
			})
		})
	} else {
		err = sweep(ctx, func(done, total int) {
			logger.Debug("sweep progress", "done", done, "total", total)
		})
	}

	cancelled := errors.Is(err, context.Canceled) || errors.Is(err, ui.ErrCancelled)
	if err != nil && !cancelled {
		return err
	}
	if cancelled {
		logger.Warn("sweep interrupted, keeping completed runs", "completed", len(runs))
	}

	if err := database.InsertRuns(runs); err != nil {
		return err
	}

	stats, err := database.GetAlgoStats(string(opts.algo))
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Sweep: %s", opts.algo), fmt.Sprintf("%d sizes from %d to %d, stored in %s", len(sizes), opts.from, opts.to, opts.dbPath))
	ui.PrintStatsTable(stats)
	ui.PrintSummary(string(opts.algo), runs)

	if opts.export != "" {
		path, err := exportReport(database, opts.algo, opts.export)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Exported to " + path)
	}

	return nil
}

// exportReport writes the stored statistics for algo as markdown and returns the file name
func exportReport(database *db.DB, algo bench.Algo, filename string) (string, error) {
	stats, err := database.GetAlgoStats(string(algo))
	if err != nil {
		return "", err
	}
	name := ui.NormalizeMarkdownName(filename, ui.DefaultExportName(string(algo), time.Now()))
	return ui.ExportMarkdown(name, fmt.Sprintf("Timing sweep: %s", algo), stats, nil)
}
