// Package lfs finds the longest substring whose characters are all frequent.
//
// A character is frequent when it occurs at least k times in the whole text,
// not just inside the substring. Ties go to the leftmost substring.
package lfs

// Table counts every byte of a text. Absent bytes count as zero.
type Table [256]int

// Frequencies builds the table for text in one pass
func Frequencies(text string) Table {
	var t Table
	for i := 0; i < len(text); i++ {
		t[text[i]]++
	}
	return t
}

// Count returns how many times c occurs
func (t *Table) Count(c byte) int {
	return t[c]
}

// Frequent reports whether c occurs at least k times
func (t *Table) Frequent(c byte, k uint) bool {
	return uint(t[c]) >= k
}

// Find returns the longest substring of text whose every character occurs at
// least k times in text, or "" when none does. k <= 1 returns text unchanged.
//
// Whether a character qualifies depends only on the global table, so every
// qualifying substring lies inside a maximal stretch of qualifying characters.
// The answer is the first longest such stretch, found in one scan.
func Find(text string, k uint) string {
	if k <= 1 {
		return text
	}

	freq := Frequencies(text)

	bestStart, bestLen := 0, 0
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && freq.Frequent(text[i], k) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			// strict > keeps the leftmost stretch on ties
			if n := i - start; n > bestLen {
				bestStart, bestLen = start, n
			}
			start = -1
		}
	}

	return text[bestStart : bestStart+bestLen]
}

// FindBruteForce is the reference enumeration of every window, O(n^3).
// It returns exactly what Find returns and exists for verification and timing.
func FindBruteForce(text string, k uint) string {
	if k <= 1 {
		return text
	}

	freq := Frequencies(text)

	best := ""
	for b := 0; b < len(text); b++ {
		for e := b + 1; e <= len(text); e++ {
			cand := text[b:e]
			ok := true
			for i := 0; i < len(cand); i++ {
				if !freq.Frequent(cand[i], k) {
					ok = false
					break
				}
			}
			if ok && len(cand) > len(best) {
				best = cand
			}
		}
	}
	return best
}
