package bench

import (
	"fmt"
	"testing"

	"github.com/thesavant42/textbench/internal/datefmt"
	"github.com/thesavant42/textbench/internal/lfs"
	"github.com/thesavant42/textbench/internal/rle"
)

// BenchmarkAlgorithms times the three routines on the harness inputs,
// giving the same growth curves as a sweep without the database.
func BenchmarkAlgorithms(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		for _, algo := range Algos {
			input, err := GenerateInput(algo, n)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/n=%d", algo, n), func(b *testing.B) {
				b.SetBytes(int64(n))
				for i := 0; i < b.N; i++ {
					switch algo {
					case AlgoRLE:
						_, _ = rle.Encode(input)
					case AlgoLFS:
						_ = lfs.Find(input, DefaultK)
					case AlgoDate:
						_, _ = datefmt.Reformat(input)
					}
				}
			})
		}
	}
}
