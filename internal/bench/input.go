package bench

import (
	"fmt"
	"math/rand"
	"strings"
)

// Algo names one of the timed routines
type Algo string

const (
	AlgoRLE  Algo = "rle"
	AlgoLFS  Algo = "lfs"
	AlgoDate Algo = "date"
)

// Algos lists every algorithm in the order the CLIs present them
var Algos = []Algo{AlgoRLE, AlgoLFS, AlgoDate}

// DefaultMinN is the smallest size that still fits a generated Y-M-D date
const DefaultMinN = 10

// ParseAlgo validates an algorithm name from the command line
func ParseAlgo(s string) (Algo, error) {
	a := Algo(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algos {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q (want one of rle, lfs, date)", s)
}

// Description returns a one-line summary for prompts and reports
func (a Algo) Description() string {
	switch a {
	case AlgoRLE:
		return "run-length encode random letters"
	case AlgoLFS:
		return "longest frequent substring of random letters"
	case AlgoDate:
		return "reformat a space-padded Y-M-D date"
	}
	return string(a)
}

// GenerateInput builds the input string of length n for algo.
// The generator is seeded with n so a given size always yields the same input.
//
// rle and lfs get n random letters a-z. date gets a random Y-M-D date without
// zero padding, preceded by enough spaces to make the string n bytes long.
func GenerateInput(algo Algo, n int) (string, error) {
	if n < DefaultMinN {
		return "", fmt.Errorf("n must be at least %d, got %d", DefaultMinN, n)
	}

	rng := rand.New(rand.NewSource(int64(n)))

	switch algo {
	case AlgoRLE, AlgoLFS:
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('a' + rng.Intn(26))
		}
		return string(b), nil

	case AlgoDate:
		year := 1900 + rng.Intn(200)
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(31)
		date := fmt.Sprintf("%d-%d-%d", year, month, day)
		return strings.Repeat(" ", n-len(date)) + date, nil
	}

	return "", fmt.Errorf("unknown algorithm %q", algo)
}

// Preview returns at most max leading bytes of s
func Preview(s string, max int) string {
	if max < 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
