package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/textbench/internal/datefmt"
	"github.com/thesavant42/textbench/internal/lfs"
	"github.com/thesavant42/textbench/internal/models"
	"github.com/thesavant42/textbench/internal/rle"
)

// DefaultK is the frequency floor used for lfs timing runs
const DefaultK uint = 20

// DefaultPreviewLen is how many input characters a report shows
const DefaultPreviewLen = 80

// Runner times single algorithm calls on generated inputs
type Runner struct {
	Logger     *log.Logger
	K          uint
	MinN       int
	PreviewLen int

	// now is swapped in tests
	now func() time.Time
}

// NewRunner creates a runner with the default settings
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{
		Logger:     logger,
		K:          DefaultK,
		MinN:       DefaultMinN,
		PreviewLen: DefaultPreviewLen,
		now:        time.Now,
	}
}

// Run generates the input for (algo, n), times one call and returns the result.
// An error is returned only when the run could not be set up. A failing
// algorithm call is reported through TimingRun.ErrKind.
func (r *Runner) Run(algo Algo, n int) (models.TimingRun, error) {
	if n < r.minN() {
		return models.TimingRun{}, fmt.Errorf("n must be at least %d, got %d", r.minN(), n)
	}

	input, err := GenerateInput(algo, n)
	if err != nil {
		return models.TimingRun{}, fmt.Errorf("failed to generate %s input: %w", algo, err)
	}

	call, err := r.call(algo)
	if err != nil {
		return models.TimingRun{}, err
	}

	started := r.clock()
	output, callErr := call(input)
	elapsed := r.clock().Sub(started)

	run := models.TimingRun{
		Algo:          string(algo),
		N:             n,
		InputPreview:  Preview(input, r.PreviewLen),
		OutputPreview: Preview(output, r.PreviewLen),
		Elapsed:       elapsed,
		ErrKind:       ErrorKind(callErr),
		CreatedAt:     time.Now(),
	}
	if algo == AlgoLFS {
		run.K = r.K
	}

	if r.Logger != nil {
		if callErr != nil {
			r.Logger.Warn("run failed", "algo", algo, "n", n, "kind", run.ErrKind, "err", callErr)
		} else {
			r.Logger.Debug("run complete", "algo", algo, "n", n, "elapsed", elapsed)
		}
	}

	return run, nil
}

// Sweep runs algo once per size, in order. It stops early when ctx is
// cancelled and returns the runs completed so far together with ctx.Err().
// progress, if non-nil, is called after every run.
func (r *Runner) Sweep(ctx context.Context, algo Algo, sizes []int, progress func(done, total int)) ([]models.TimingRun, error) {
	runs := make([]models.TimingRun, 0, len(sizes))
	for i, n := range sizes {
		if err := ctx.Err(); err != nil {
			return runs, err
		}
		run, err := r.Run(algo, n)
		if err != nil {
			return runs, fmt.Errorf("sweep %s at n=%d: %w", algo, n, err)
		}
		runs = append(runs, run)
		if progress != nil {
			progress(i+1, len(sizes))
		}
	}
	return runs, nil
}

func (r *Runner) call(algo Algo) (func(string) (string, error), error) {
	switch algo {
	case AlgoRLE:
		return rle.Encode, nil
	case AlgoLFS:
		k := r.K
		return func(s string) (string, error) {
			return lfs.Find(s, k), nil
		}, nil
	case AlgoDate:
		return datefmt.Reformat, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", algo)
}

func (r *Runner) minN() int {
	if r.MinN < DefaultMinN {
		return DefaultMinN
	}
	return r.MinN
}

func (r *Runner) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}

// Sizes returns steps sizes evenly spaced from start to stop inclusive.
// Duplicate sizes produced by rounding are dropped.
func Sizes(start, stop, steps int) ([]int, error) {
	if start < DefaultMinN {
		return nil, fmt.Errorf("start must be at least %d, got %d", DefaultMinN, start)
	}
	if stop < start {
		return nil, fmt.Errorf("stop (%d) is below start (%d)", stop, start)
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}
	if steps == 1 || start == stop {
		return []int{start}, nil
	}

	sizes := make([]int, 0, steps)
	span := stop - start
	for i := 0; i < steps; i++ {
		n := start + span*i/(steps-1)
		if len(sizes) > 0 && sizes[len(sizes)-1] == n {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// ErrorKind names the error category of an algorithm failure, or "" for nil
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, rle.ErrInvalidCharacter):
		return "InvalidCharacter"
	case errors.Is(err, rle.ErrMalformedEncoding):
		return "MalformedEncoding"
	case errors.Is(err, datefmt.ErrInvalidFormat):
		return "InvalidFormat"
	case errors.Is(err, datefmt.ErrYearOutOfRange):
		return "YearOutOfRange"
	case errors.Is(err, datefmt.ErrInvalidMonth):
		return "InvalidMonth"
	case errors.Is(err, datefmt.ErrDayOutOfRange):
		return "DayOutOfRange"
	}
	return "Other"
}
