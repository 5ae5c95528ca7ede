package search

import "unicode/utf8"

// Distance computes the classic Levenshtein distance between two strings over
// runes. Insertion, deletion, and substitution each cost 1. Pure function.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Two rows are enough for the DP matrix
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenB]
}

// maxEditDistance returns the edit tolerance for a word: at most 2 edits,
// scaled down with length so short words cannot match almost anything.
func maxEditDistance(word string) int {
	n := utf8.RuneCountInString(word)
	tolerance := (n + 2) / 3
	if tolerance > 2 {
		tolerance = 2
	}
	return tolerance
}

// Nearest finds the first vocabulary entry within the edit tolerance of word.
// The vocabulary must be in a deterministic order; callers pass sorted index
// keys. Returns false when no entry qualifies.
func Nearest(word string, vocabulary []string) (string, bool) {
	tolerance := maxEditDistance(word)
	for _, candidate := range vocabulary {
		if Distance(word, candidate) <= tolerance {
			return candidate, true
		}
	}
	return "", false
}
