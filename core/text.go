package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The character policy keeps ASCII word characters, the Russian alphabet
// (а-я plus ё), whitespace, and the double quote. Everything else is noise:
// the same policy is applied to record text at index-build time and to
// queries at search time, so the two sides always agree.
var (
	disallowedRunes = regexp.MustCompile(`[^\w\sа-яё"]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	sentenceEnders  = regexp.MustCompile(`[.!?]+`)
)

// NormalizeText canonicalizes raw text for matching: lower-cases, strips
// characters outside the policy above, collapses whitespace runs to single
// spaces, and trims.
func NormalizeText(text string) string {
	lowered := strings.ToLower(text)
	stripped := disallowedRunes.ReplaceAllString(lowered, "")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(stripped, " "))
}

// SplitSentences splits raw text into normalized sentences. The split runs on
// `.`, `!`, `?` runs before normalization, since normalization strips sentence
// enders. Empty and whitespace-only sentences are discarded.
func SplitSentences(text string) []string {
	pieces := sentenceEnders.Split(strings.ToLower(text), -1)
	sentences := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		normalized := NormalizeText(piece)
		if normalized != "" {
			sentences = append(sentences, normalized)
		}
	}
	return sentences
}

// Tokenize splits a normalized sentence into words, discarding tokens of one
// character or less.
func Tokenize(sentence string) []string {
	tokens := strings.Split(sentence, " ")
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if utf8.RuneCountInString(token) > 1 {
			words = append(words, token)
		}
	}
	return words
}
