package search

// Stop words dropped from queries before matching. Single-letter particles
// never reach this list because tokenization already discards one-rune tokens.
var stopWords = map[string]bool{
	"на": true, "не": true, "по": true, "за": true, "от": true, "до": true,
	"из": true, "об": true, "во": true, "со": true, "для": true, "или": true,
	"что": true, "как": true, "это": true, "все": true, "так": true,
	"же": true, "бы": true, "то": true, "ли": true, "при": true,
}

// filterStopWords removes stop words, preserving token order.
func filterStopWords(words []string) []string {
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if !stopWords[word] {
			filtered = append(filtered, word)
		}
	}
	return filtered
}
