// Command textalgo applies one text routine to its arguments or to each line of stdin.
//
//	textalgo rle [-d] [text...]
//	textalgo lfs [-k K] [text...]
//	textalgo date [text...]
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/textbench/internal/bench"
	"github.com/thesavant42/textbench/internal/config"
	"github.com/thesavant42/textbench/internal/datefmt"
	"github.com/thesavant42/textbench/internal/lfs"
	"github.com/thesavant42/textbench/internal/rle"
)

const (
	exitSuccess = 0
	exitUsage   = 1
	exitFailed  = 2
)

const usage = `usage:

    textalgo rle [-d] [text...]     run-length encode (-d decodes)
    textalgo lfs [-k K] [text...]   longest substring of characters occurring at least K times
    textalgo date [text...]         reformat a date as YYYY-MM-DD

With no text, each line of stdin is processed separately.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: cfg.Level(), ReportTimestamp: true})

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	algo, err := bench.ParseAlgo(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage)
		return exitUsage
	}

	fs := flag.NewFlagSet("textalgo "+string(algo), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	decode := fs.Bool("d", false, "Decode instead of encode (rle only)")
	k := fs.Uint("k", cfg.LFSK, "Frequency floor (lfs only)")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, usage)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage)
		return exitUsage
	}

	apply := transform(algo, *decode, *k)

	if fs.NArg() > 0 {
		return emit(apply, strings.Join(fs.Args(), " "), stdout, stderr, logger)
	}

	code := exitSuccess
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if c := emit(apply, scanner.Text(), stdout, stderr, logger); c != exitSuccess {
			code = c
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "error: failed to read input: %v\n", err)
		return exitFailed
	}
	return code
}

func transform(algo bench.Algo, decode bool, k uint) func(string) (string, error) {
	switch algo {
	case bench.AlgoRLE:
		if decode {
			return rle.Decode
		}
		return rle.Encode
	case bench.AlgoLFS:
		return func(s string) (string, error) { return lfs.Find(s, k), nil }
	default:
		return datefmt.Reformat
	}
}

func emit(apply func(string) (string, error), input string, stdout, stderr io.Writer, logger *log.Logger) int {
	out, err := apply(input)
	if err != nil {
		logger.Debug("input rejected", "input", input, "kind", bench.ErrorKind(err))
		fmt.Fprintf(stderr, "error: %s: %v\n", bench.ErrorKind(err), err)
		return exitFailed
	}
	fmt.Fprintln(stdout, out)
	return exitSuccess
}
