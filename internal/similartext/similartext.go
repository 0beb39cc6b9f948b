// Package similartext implements the fuzzy name suggestion shared by column
// and function resolution: a bounded edit distance search over a lexicon of
// valid names.
package similartext

import "strings"

// maxDistance returns the acceptance bound for an input of the given length.
// Roughly a third of the input may differ, calibrated so that typos like
// "nth_vlue" and "frst_value" still find their target while unrelated names
// do not.
func maxDistance(input string) int {
	d := len(input) / 3
	if d < 1 {
		d = 1
	}
	return d
}

// Find returns the lexicon entry with the minimal edit distance to src, if
// that distance is within the acceptance bound. Ties keep the earliest
// declared entry. Matching is case-insensitive.
func Find(names []string, src string) (string, bool) {
	if src == "" {
		return "", false
	}

	lowerSrc := strings.ToLower(src)
	best := -1
	var candidate string
	for _, name := range names {
		d := distance(strings.ToLower(name), lowerSrc)
		if best < 0 || d < best {
			best = d
			candidate = name
		}
	}

	if best < 0 || best > maxDistance(src) {
		return "", false
	}
	return candidate, true
}

// distance computes the Levenshtein distance between two strings.
func distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
