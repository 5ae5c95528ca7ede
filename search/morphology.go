package search

import "strings"

// FormExpander generates alternate surface forms for a single word.
// Implementations must include the word itself in the returned set.
// The default is SuffixExpander; a real morphology backend can be substituted
// without touching the scorer.
type FormExpander interface {
	Expand(word string) []string
}

// SuffixExpander is a bounded suffix-substitution heuristic for Russian.
// It is not stemming: it only swaps a single trailing letter against a fixed
// table of noun/adjective endings. The expansion runs for single-word queries
// only: one ambiguous word against a whole corpus is tolerable, but combined
// with multi-word proximity it produces too many false positives.
type SuffixExpander struct{}

var _ FormExpander = SuffixExpander{}

// Trailing letters that are treated as a replaceable suffix.
const strippableEndings = "аеиоуыьюя"

// Endings substituted onto the stem.
var alternateEndings = []string{"а", "я", "ы", "и", "е", "у", "ю", "ой", "ей"}

// Expand returns the word together with its candidate surface forms.
// Words not ending in a Russian letter are returned as-is. Forms of one rune
// or less are discarded.
func (SuffixExpander) Expand(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return []string{word}
	}

	last := runes[len(runes)-1]
	if !isRussianLetter(last) {
		return []string{word}
	}

	stem := word
	if strings.ContainsRune(strippableEndings, last) {
		stem = string(runes[:len(runes)-1])
	}

	forms := []string{word}
	seen := map[string]bool{word: true}
	appendForm := func(form string) {
		if len([]rune(form)) <= 1 || seen[form] {
			return
		}
		seen[form] = true
		forms = append(forms, form)
	}

	appendForm(stem)
	for _, ending := range alternateEndings {
		appendForm(stem + ending)
	}
	return forms
}

func isRussianLetter(r rune) bool {
	return (r >= 'а' && r <= 'я') || r == 'ё'
}
