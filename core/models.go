package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// ID is the natural key of a material record.
// Ids come from the imported source and are unique within the store.
type ID uint64

// HashContent computes the BLAKE2b-256 digest of raw source content,
// rendered as lowercase hex. It is stored in Settings and used to detect
// no-op updates: identical content always produces an identical hash.
func HashContent(content string) string {
	h, _ := blake2b.New(32, nil) // 32 bytes = 256 bits
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// SourceKind identifies the raw format of an imported source.
type SourceKind int

const (
	// SourceStructuredText is a plain-text dump split on a section delimiter phrase.
	SourceStructuredText SourceKind = iota + 1
	// SourceDelimitedTable is a semicolon-delimited table with a fixed header row.
	SourceDelimitedTable
)

// DateUnspecified is the date label for materials without an extracted decision date.
const DateUnspecified = "Не указана"

// WordOccurrence locates one occurrence of a word within a material.
// Position is a global ordinal across the whole record: words in later
// sentences continue the counter rather than resetting it, so the proximity
// scorer can combine "same sentence" with a numeric distance.
type WordOccurrence struct {
	Sentence int
	Position int
}

// WordIndex maps a normalized word to its occurrences, in encounter order.
type WordIndex map[string][]WordOccurrence

// Material is one indexed entry of the restricted-materials registry.
// WordIndex is always derived from Text via BuildWordIndex; it is rebuilt
// on every import and never edited by hand.
type Material struct {
	Id        ID
	Date      string // free-text label, never parsed as a calendar date
	Text      string // original casing preserved for display
	WordIndex WordIndex
}

// Settings describes the last imported source.
type Settings struct {
	Source      SourceKind
	SourceLabel string // display name of the last imported source
	ContentHash string // hex digest of the last-imported raw content, empty if none
	AutoUpdate  bool
}

// DefaultSettings returns the settings used before any import has run.
func DefaultSettings() *Settings {
	return &Settings{
		Source:     SourceStructuredText,
		AutoUpdate: true,
	}
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	Material   *Material
	Similarity float64
	// Typo is set when a query word was resolved through the edit-distance
	// fallback rather than an exact index lookup.
	Typo bool
}
