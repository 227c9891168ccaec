package lfs

import (
	"strings"
	"testing"
)

func FuzzFind(f *testing.F) {
	f.Add("ababbc", uint8(2))
	f.Add("aa_bb_baba_aaa", uint8(4))
	f.Add("", uint8(3))
	f.Add("abc", uint8(30))

	f.Fuzz(func(t *testing.T, text string, k8 uint8) {
		if len(text) > 64 {
			text = text[:64]
		}
		k := uint(k8 % 10)

		got := Find(text, k)
		if want := FindBruteForce(text, k); got != want {
			t.Fatalf("Find(%q, %d) = %q, brute force = %q", text, k, got, want)
		}
		if !strings.Contains(text, got) {
			t.Fatalf("Find(%q, %d) = %q is not a substring", text, k, got)
		}
		if k <= 1 && got != text {
			t.Fatalf("Find(%q, %d) = %q, want input unchanged", text, k, got)
		}

		freq := Frequencies(text)
		for i := 0; i < len(got); i++ {
			if !freq.Frequent(got[i], k) {
				t.Fatalf("Find(%q, %d) = %q contains infrequent %q", text, k, got, got[i])
			}
		}
	})
}
