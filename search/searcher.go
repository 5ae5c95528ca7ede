package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/storage"
)

// Acceptance thresholds, evaluated per record: typo-resolved matches clear a
// lower bar than exact ones.
const (
	thresholdExact = 0.85
	thresholdTypo  = 0.6
)

// Searcher answers fuzzy, proximity-aware queries against the material
// collection. Every query scans the full collection; the per-record word
// index is the only secondary structure.
type Searcher struct {
	materials storage.MaterialRepository
	expander  FormExpander
	queryLog  *QueryLog
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithExpander replaces the morphological form expander.
// Default is SuffixExpander.
func WithExpander(expander FormExpander) Option {
	return func(s *Searcher) error {
		if expander == nil {
			expander = SuffixExpander{}
		}
		s.expander = expander
		return nil
	}
}

// WithQueryLog attaches a caller-owned write-through log of ranked results.
// The searcher only ever writes to it; see QueryLog.
func WithQueryLog(log *QueryLog) Option {
	return func(s *Searcher) error {
		s.queryLog = log
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(materials storage.MaterialRepository, opts ...Option) (*Searcher, error) {
	if materials == nil {
		return nil, ErrMaterialRepositoryRequired
	}

	s := &Searcher{
		materials: materials,
		expander:  SuffixExpander{},
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs a query against the material collection.
// Returns accepted results ranked by similarity descending.
func (s *Searcher) Search(ctx context.Context, rawQuery string) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, rawQuery, nil)
}

// SearchWithMonitor runs a query with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, rawQuery string, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(rawQuery)

	// 1. Normalize, tokenize, drop stop words.
	normalizedQuery := core.NormalizeText(rawQuery)
	queryWords := filterStopWords(core.Tokenize(normalizedQuery))
	monitor.AfterTokenize(queryWords)

	// The log entry for this query is dropped before computing, so a failed
	// search never leaves a stale entry behind.
	if s.queryLog != nil {
		s.queryLog.invalidate(normalizedQuery)
	}

	if len(queryWords) == 0 {
		results := []*core.SearchResult{}
		if s.queryLog != nil {
			s.queryLog.put(normalizedQuery, results)
		}
		monitor.Finish(results)
		return results, nil
	}

	// 2. Morphological expansion, single-word queries only.
	singleWord := len(queryWords) == 1
	forms := queryWords
	if singleWord {
		forms = s.expander.Expand(queryWords[0])
	}
	monitor.AfterExpansion(forms)

	materials, err := s.materials.ScanMaterials(ctx)
	if err != nil {
		s.logger.Error("error scanning materials", "query", rawQuery, "err", err)
		return nil, err
	}

	literalForms := func(word string) []string { return []string{word} }
	expandedForms := func(string) []string { return forms }

	// 3-4. Score every record, apply its own threshold.
	results := make([]*core.SearchResult, 0)
	for _, material := range materials {
		var vocabulary []string
		if singleWord {
			vocabulary = sortedVocabulary(material.WordIndex)
		}

		// Best of: literal scoring, form scoring, verbatim short-circuit.
		similarity := scoreProximity(queryWords, literalForms, material.WordIndex, vocabulary).Similarity
		if singleWord {
			formResult := scoreProximity(queryWords, expandedForms, material.WordIndex, vocabulary)
			if formResult.Similarity > similarity {
				similarity = formResult.Similarity
			}
		}
		if similarity < 1.0 && literalMatch(normalizedQuery, queryWords, material.Text) {
			similarity = 1.0
		}

		typo := false
		if singleWord {
			if _, present := material.WordIndex[queryWords[0]]; !present {
				_, typo = Nearest(queryWords[0], vocabulary)
			}
		}
		monitor.RecordScored(material, similarity, typo)

		threshold := thresholdExact
		if typo {
			threshold = thresholdTypo
		}
		if similarity >= threshold {
			results = append(results, &core.SearchResult{
				Material:   material,
				Similarity: similarity,
				Typo:       typo,
			})
			monitor.RecordAccepted(material, similarity)
		}
	}

	// 5. Rank by similarity descending; ties keep store scan order
	// (ascending id).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if s.queryLog != nil {
		s.queryLog.put(normalizedQuery, results)
	}
	monitor.Finish(results)

	return results, nil
}
