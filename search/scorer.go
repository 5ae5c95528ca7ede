package search

import (
	"sort"
	"strings"

	"github.com/poiesic/berkut/core"
)

// maxWindowSpan is the widest position span a valid sentence match may have:
// the query's words must appear almost contiguously.
const maxWindowSpan = 2

// distanceWeight shapes the score falloff for spans wider than one position.
const distanceWeight = 0.4

// formPenalty discounts matches resolved through non-literal surface forms,
// morphological variants and edit-distance fallback alike.
const formPenalty = 0.9

// proximityResult carries the similarity of one candidate-set evaluation and
// a diagnostic of which index words matched.
type proximityResult struct {
	Similarity   float64
	Matched      []string
	UsedForms    bool // a non-literal surface form matched
	UsedFallback bool // the edit-distance matcher resolved a word
}

// scoreProximity evaluates one candidate set of forms against a record index.
// queryWords are the filtered query tokens; formsFor returns the surface forms
// to try for a query word (the word itself for literal evaluation).
// vocabulary is the record's sorted word list, used only for the single-word
// edit-distance fallback. Similarity 0 means no acceptable match.
func scoreProximity(queryWords []string, formsFor func(string) []string, index core.WordIndex, vocabulary []string) proximityResult {
	if len(queryWords) == 0 {
		return proximityResult{}
	}
	singleWord := len(queryWords) == 1

	var result proximityResult

	// Resolve every query word to matched occurrences. A word resolves
	// through any of its forms present in the index; for single-word queries
	// an unresolved word falls back to the edit-distance matcher.
	occurrences := make([][]core.WordOccurrence, len(queryWords))
	for i, word := range queryWords {
		for _, form := range formsFor(word) {
			occs, ok := index[form]
			if !ok {
				continue
			}
			occurrences[i] = append(occurrences[i], occs...)
			result.Matched = append(result.Matched, form)
			if form != word {
				result.UsedForms = true
			}
		}
		if len(occurrences[i]) == 0 && singleWord {
			if matched, ok := Nearest(word, vocabulary); ok {
				occurrences[i] = append(occurrences[i], index[matched]...)
				result.Matched = append(result.Matched, matched)
				result.UsedFallback = true
			}
		}
		if len(occurrences[i]) == 0 {
			// Every original query word must resolve.
			return proximityResult{}
		}
	}

	// A sentence is valid only if every query word matched somewhere in it.
	positionsBySentence := make(map[int][]int)
	wordsInSentence := make(map[int]int)
	for _, wordOccs := range occurrences {
		counted := make(map[int]bool)
		for _, occ := range wordOccs {
			positionsBySentence[occ.Sentence] = append(positionsBySentence[occ.Sentence], occ.Position)
			if !counted[occ.Sentence] {
				counted[occ.Sentence] = true
				wordsInSentence[occ.Sentence]++
			}
		}
	}

	// Minimum window span across valid sentences: sort the matched global
	// positions and slide a window of query-word-count width.
	n := len(queryWords)
	minDistance := -1
	for sentence, positions := range positionsBySentence {
		if wordsInSentence[sentence] < n {
			continue
		}
		sort.Ints(positions)
		for i := 0; i+n <= len(positions); i++ {
			span := positions[i+n-1] - positions[i]
			if minDistance < 0 || span < minDistance {
				minDistance = span
			}
		}
	}
	if minDistance < 0 || minDistance > maxWindowSpan {
		return proximityResult{}
	}

	similarity := 1.0
	if minDistance > 1 {
		similarity = float64(n) / (float64(n) + float64(minDistance)*distanceWeight)
	}
	if result.UsedForms || result.UsedFallback {
		similarity *= formPenalty
	}
	result.Similarity = similarity
	return result
}

// literalMatch reports whether the query matches the record verbatim: the
// normalized query is a substring of the normalized text or of its inferred
// title, or every query word appears as a literal substring anywhere in the
// record. No proximity or sentence constraint applies; a hit forces
// similarity 1.0.
func literalMatch(normalizedQuery string, queryWords []string, text string) bool {
	if normalizedQuery == "" {
		return false
	}
	normalized := core.NormalizeText(text)
	if strings.Contains(normalized, normalizedQuery) {
		return true
	}
	if strings.Contains(inferTitle(text), normalizedQuery) {
		return true
	}
	for _, word := range queryWords {
		if !strings.Contains(normalized, word) {
			return false
		}
	}
	return len(queryWords) > 0
}

// inferTitle extracts the leading quoted segment of the normalized text, or
// the normalized first line when there is no quoted segment.
func inferTitle(text string) string {
	normalized := core.NormalizeText(text)
	if start := strings.Index(normalized, `"`); start >= 0 {
		rest := normalized[start+1:]
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end]
		}
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	return core.NormalizeText(firstLine)
}

// sortedVocabulary returns the record's indexed words in deterministic order
// for the edit-distance matcher.
func sortedVocabulary(index core.WordIndex) []string {
	vocabulary := make([]string, 0, len(index))
	for word := range index {
		vocabulary = append(vocabulary, word)
	}
	sort.Strings(vocabulary)
	return vocabulary
}
