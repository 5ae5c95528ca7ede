package core

// BuildWordIndex derives the inverted word index for a material text.
// Occurrences are appended in encounter order; Position starts at 0 for the
// whole record and increments once per word across all sentences, so later
// sentences continue the counter. Pure function: runs once per record at
// import time and never at query time.
func BuildWordIndex(text string) WordIndex {
	index := make(WordIndex)
	position := 0
	for sentenceIdx, sentence := range SplitSentences(text) {
		for _, word := range Tokenize(sentence) {
			index[word] = append(index[word], WordOccurrence{
				Sentence: sentenceIdx,
				Position: position,
			})
			position++
		}
	}
	return index
}
