package bench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/thesavant42/textbench/internal/datefmt"
	"github.com/thesavant42/textbench/internal/rle"
)

func TestParseAlgo(t *testing.T) {
	tests := []struct {
		input   string
		want    Algo
		wantErr bool
	}{
		{"rle", AlgoRLE, false},
		{"LFS", AlgoLFS, false},
		{" date ", AlgoDate, false},
		{"", "", true},
		{"sort", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgo(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgo(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAlgo(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateInputLetters(t *testing.T) {
	for _, algo := range []Algo{AlgoRLE, AlgoLFS} {
		for _, n := range []int{10, 11, 100, 4096} {
			input, err := GenerateInput(algo, n)
			if err != nil {
				t.Fatalf("GenerateInput(%s, %d) error: %v", algo, n, err)
			}
			if len(input) != n {
				t.Errorf("GenerateInput(%s, %d) has length %d", algo, n, len(input))
			}
			for i := 0; i < len(input); i++ {
				if input[i] < 'a' || input[i] > 'z' {
					t.Fatalf("GenerateInput(%s, %d)[%d] = %q, want a-z", algo, n, i, input[i])
				}
			}
		}
	}
}

func TestGenerateInputDate(t *testing.T) {
	for _, n := range []int{10, 12, 50, 1000} {
		input, err := GenerateInput(AlgoDate, n)
		if err != nil {
			t.Fatalf("GenerateInput(date, %d) error: %v", n, err)
		}
		if len(input) != n {
			t.Errorf("GenerateInput(date, %d) has length %d", n, len(input))
		}

		date := strings.TrimLeft(input, " ")
		var y, m, d int
		if _, err := fmt.Sscanf(date, "%d-%d-%d", &y, &m, &d); err != nil {
			t.Fatalf("GenerateInput(date, %d) = %q, not Y-M-D: %v", n, input, err)
		}
		if y < 1900 || y > 2099 || m < 1 || m > 12 || d < 1 || d > 31 {
			t.Errorf("GenerateInput(date, %d) = %q, fields out of range", n, input)
		}

		if _, err := datefmt.Reformat(input); err != nil {
			t.Errorf("Reformat(%q) error: %v", input, err)
		}
	}
}

func TestGenerateInputDeterministic(t *testing.T) {
	for _, algo := range Algos {
		a, _ := GenerateInput(algo, 64)
		b, _ := GenerateInput(algo, 64)
		if a != b {
			t.Errorf("GenerateInput(%s, 64) differs between calls", algo)
		}
	}
}

func TestGenerateInputErrors(t *testing.T) {
	if _, err := GenerateInput(AlgoRLE, 9); err == nil {
		t.Error("GenerateInput(rle, 9) expected error")
	}
	if _, err := GenerateInput(Algo("sort"), 100); err == nil {
		t.Error("GenerateInput(sort, 100) expected error")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"abcdef", 3, "abc"},
		{"abc", 3, "abc"},
		{"ab", 80, "ab"},
		{"abc", 0, ""},
		{"abc", -1, "abc"},
	}
	for _, tt := range tests {
		if got := Preview(tt.s, tt.max); got != tt.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

// fakeClock advances by step on every call
func fakeClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(nil)
	r.now = fakeClock(5 * time.Millisecond)
	r.PreviewLen = 8

	for _, algo := range Algos {
		t.Run(string(algo), func(t *testing.T) {
			run, err := r.Run(algo, 200)
			if err != nil {
				t.Fatalf("Run(%s, 200) error: %v", algo, err)
			}
			if run.Algo != string(algo) || run.N != 200 {
				t.Errorf("Run() = %+v", run)
			}
			if run.Elapsed != 5*time.Millisecond {
				t.Errorf("Elapsed = %v, want 5ms", run.Elapsed)
			}
			if len(run.InputPreview) != 8 {
				t.Errorf("InputPreview = %q, want 8 bytes", run.InputPreview)
			}
			if run.Failed() {
				t.Errorf("Run(%s) failed with %s", algo, run.ErrKind)
			}
			if algo == AlgoLFS && run.K != DefaultK {
				t.Errorf("K = %d, want %d", run.K, DefaultK)
			}
			if algo != AlgoLFS && run.K != 0 {
				t.Errorf("K = %d, want 0 for %s", run.K, algo)
			}
		})
	}
}

func TestRunnerRunDateOutput(t *testing.T) {
	r := NewRunner(nil)
	run, err := r.Run(AlgoDate, 30)
	if err != nil {
		t.Fatalf("Run(date, 30) error: %v", err)
	}
	if len(run.OutputPreview) != len("2000-01-01") || run.OutputPreview[4] != '-' {
		t.Errorf("OutputPreview = %q, want YYYY-MM-DD", run.OutputPreview)
	}
}

func TestRunnerRunMinN(t *testing.T) {
	r := NewRunner(nil)
	r.MinN = 50
	if _, err := r.Run(AlgoRLE, 20); err == nil {
		t.Error("Run(rle, 20) with MinN=50 expected error")
	}
	if _, err := r.Run(AlgoRLE, 50); err != nil {
		t.Errorf("Run(rle, 50) error: %v", err)
	}
}

func TestRunnerSweep(t *testing.T) {
	r := NewRunner(nil)
	sizes := []int{10, 20, 30}

	var calls int
	runs, err := r.Sweep(context.Background(), AlgoRLE, sizes, func(done, total int) {
		calls++
		if total != len(sizes) || done != calls {
			t.Errorf("progress(%d, %d) after %d calls", done, total, calls)
		}
	})
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	if len(runs) != 3 || runs[2].N != 30 {
		t.Errorf("Sweep() = %+v", runs)
	}
}

func TestRunnerSweepCancelled(t *testing.T) {
	r := NewRunner(nil)
	ctx, cancel := context.WithCancel(context.Background())

	runs, err := r.Sweep(ctx, AlgoLFS, []int{10, 20, 30}, func(done, _ int) {
		if done == 1 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() error = %v, want context.Canceled", err)
	}
	if len(runs) != 1 {
		t.Errorf("Sweep() returned %d runs, want 1", len(runs))
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		name               string
		start, stop, steps int
		want               []int
		wantErr            bool
	}{
		{"single step", 100, 1000, 1, []int{100}, false},
		{"start equals stop", 50, 50, 4, []int{50}, false},
		{"even", 10, 100, 4, []int{10, 40, 70, 100}, false},
		{"rounding duplicates", 10, 12, 5, []int{10, 11, 12}, false},
		{"below min", 5, 100, 3, nil, true},
		{"reversed", 100, 10, 3, nil, true},
		{"zero steps", 10, 100, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sizes(tt.start, tt.stop, tt.steps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Sizes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Sizes(%d, %d, %d) = %v, want %v", tt.start, tt.stop, tt.steps, got, tt.want)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	_, rleErr := rle.Encode("ab1")
	_, decErr := rle.Decode("3")
	_, fmtErr := datefmt.Reformat("hello")
	_, yearErr := datefmt.Reformat("1899-01-01")
	_, monthErr := datefmt.Reformat("2000-13-01")
	_, dayErr := datefmt.Reformat("2000-01-32")

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{rleErr, "InvalidCharacter"},
		{decErr, "MalformedEncoding"},
		{fmtErr, "InvalidFormat"},
		{yearErr, "YearOutOfRange"},
		{monthErr, "InvalidMonth"},
		{dayErr, "DayOutOfRange"},
		{errors.New("boom"), "Other"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
