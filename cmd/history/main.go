// Command history browses the timing runs stored in the results database.
//
// On a terminal it opens a tabbed browser over runs and per-size statistics;
// otherwise, or with -plain, it prints the same data as text tables.
package main

import (
	"flag"
	"fmt"
	"os"
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
	dbPath  string
	algo    string
	minN    int
	maxN    int
	limit   int
	stats   bool
	plain   bool
	export  string
	csv     string
	backup  bool
	clear   bool
	yes     bool
	listDir string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(2)
	}

	var opts options
	flag.StringVar(&opts.dbPath, "db", cfg.DBPath, "Path to SQLite results database")
	flag.StringVar(&opts.algo, "algo", "", "Only show this algorithm (rle, lfs, date)")
	flag.IntVar(&opts.minN, "min-n", 0, "Only show runs with n >= this")
	flag.IntVar(&opts.maxN, "max-n", 0, "Only show runs with n <= this (0 = no limit)")
	flag.IntVar(&opts.limit, "limit", 500, "Maximum number of runs to load (0 = all)")
	flag.BoolVar(&opts.stats, "stats", false, "Print per-size statistics and exit")
	flag.BoolVar(&opts.plain, "plain", false, "Print tables instead of opening the browser")
	flag.StringVar(&opts.export, "export", "", "Write a markdown report to this file")
	flag.StringVar(&opts.csv, "csv", "", "Write the selected runs to this CSV file")
	flag.BoolVar(&opts.backup, "backup", false, "Copy the database to a timestamped backup")
	flag.BoolVar(&opts.clear, "clear", false, "Delete stored runs (for -algo, or all)")
	flag.BoolVar(&opts.yes, "yes", false, "Skip the -clear confirmation")
	flag.StringVar(&opts.listDir, "list", "", "List result databases in this directory and exit")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	logger := config.NewLogger(level)

	if opts.algo != "" {
		algo, err := bench.ParseAlgo(opts.algo)
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		opts.algo = string(algo)
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
	if err := run(opts, logger, interactive); err != nil {
		ui.PrintError(err.Error())
		os.Exit(2)
	}
}

func run(opts options, logger *log.Logger, interactive bool) error {
	if opts.listDir != "" {
		files, err := db.ListResultFiles(opts.listDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No result databases found")
			return nil
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return nil
	}

	if _, err := os.Stat(opts.dbPath); err != nil {
		return fmt.Errorf("no results database at %s: %w", opts.dbPath, err)
	}

	if opts.backup {
		path, err := ui.ExportDatabaseBackup(opts.dbPath)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Backup written to " + path)
	}

	database, err := db.New(opts.dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if opts.clear {
		return clearRuns(database, opts, logger, interactive)
	}

	stats, err := database.GetAlgoStats(opts.algo)
	if err != nil {
		return err
	}

	if opts.stats {
		ui.PrintHeader("Timing statistics", scopeLabel(opts.algo))
		ui.PrintStatsTable(stats)
		return nil
	}

	runs, err := database.GetRuns(models.RunFilter{
		Algo:  opts.algo,
		MinN:  opts.minN,
		MaxN:  opts.maxN,
		Limit: opts.limit,
	})
	if err != nil {
		return err
	}
	logger.Debug("loaded runs", "count", len(runs), "groups", len(stats))

	if opts.export != "" || opts.csv != "" {
		return exportRuns(opts, stats, runs)
	}

	if interactive && !opts.plain {
		picked, err := ui.BrowseHistory(opts.dbPath, runs, stats)
		if err != nil {
			return err
		}
		if picked != nil {
			fmt.Print(ui.FormatRunDetail(*picked))
		}
		return nil
	}

	ui.PrintHeader("Timing history", fmt.Sprintf("%s, %s", opts.dbPath, scopeLabel(opts.algo)))
	ui.PrintRunsTable(runs)
	fmt.Println()
	ui.PrintStatsTable(stats)
	return nil
}

func exportRuns(opts options, stats []models.AlgoStats, runs []models.TimingRun) error {
	if opts.export != "" {
		name := ui.NormalizeMarkdownName(opts.export, ui.DefaultExportName(opts.algo, time.Now()))
		path, err := ui.ExportMarkdown(name, "Timing history: "+scopeLabel(opts.algo), stats, runs)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Exported to " + path)
	}
	if opts.csv != "" {
		if err := ui.ExportRunsCSV(opts.csv, runs); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Exported %d runs to %s", len(runs), opts.csv))
	}
	return nil
}

func clearRuns(database *db.DB, opts options, logger *log.Logger, interactive bool) error {
	count, err := database.CountRuns(opts.algo)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("Nothing to delete")
		return nil
	}

	if !opts.yes {
		if !interactive {
			return fmt.Errorf("refusing to delete %d runs without -yes", count)
		}
		ok, err := ui.ConfirmClear(scopeLabel(opts.algo), count)
		if err != nil || !ok {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := database.DeleteRuns(opts.algo)
	if err != nil {
		return err
	}
	logger.Info("deleted runs", "count", deleted, "algo", scopeLabel(opts.algo))
	ui.PrintSuccess(fmt.Sprintf("Deleted %d runs", deleted))
	return nil
}

func scopeLabel(algo string) string {
	if algo == "" {
		return "all algorithms"
	}
	return algo
}
