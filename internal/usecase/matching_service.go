package usecase

import (
	"log"
	"slices"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/taxonomy"
)

// Default thresholds and limits for the query modes
const (
	DefaultFindThreshold        = 0.3
	DefaultSearchThreshold      = 0.2
	DefaultSearchLimit          = 10
	DefaultSuggestThreshold     = 0.4
	DefaultSuggestWordThreshold = 0.5
	minSuggestWordLen           = 3
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	FindThreshold        float64
	SearchThreshold      float64
	SearchLimit          int
	SuggestThreshold     float64
	SuggestWordThreshold float64
	EnableDebugLogging   bool
}

// MatchingService resolves free-text queries to taxonomy entries.
// It only reads immutable data, so one instance can serve concurrent callers.
type MatchingService struct {
	store   *taxonomy.Store
	entries []scoredEntry
	config  MatchConfig
}

// DefaultMatchConfig returns the default thresholds and search limit
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		FindThreshold:        DefaultFindThreshold,
		SearchThreshold:      DefaultSearchThreshold,
		SearchLimit:          DefaultSearchLimit,
		SuggestThreshold:     DefaultSuggestThreshold,
		SuggestWordThreshold: DefaultSuggestWordThreshold,
	}
}

// NewMatchingService creates a matching service over the given store.
// A threshold of 0 is kept as given. Negative thresholds and a non-positive
// search limit fall back to the package defaults.
func NewMatchingService(store *taxonomy.Store, config MatchConfig) *MatchingService {
	if config.FindThreshold < 0 {
		config.FindThreshold = DefaultFindThreshold
	}
	if config.SearchThreshold < 0 {
		config.SearchThreshold = DefaultSearchThreshold
	}
	if config.SearchLimit <= 0 {
		config.SearchLimit = DefaultSearchLimit
	}
	if config.SuggestThreshold < 0 {
		config.SuggestThreshold = DefaultSuggestThreshold
	}
	if config.SuggestWordThreshold < 0 {
		config.SuggestWordThreshold = DefaultSuggestWordThreshold
	}

	entries := make([]scoredEntry, 0, store.Len())
	for entry := range store.All() {
		entries = append(entries, newScoredEntry(entry))
	}

	return &MatchingService{
		store:   store,
		entries: entries,
		config:  config,
	}
}

// Config returns the effective configuration after defaults were applied
func (s *MatchingService) Config() MatchConfig {
	return s.config
}

// Store returns the taxonomy the service matches against
func (s *MatchingService) Store() *taxonomy.Store {
	return s.store
}

// FindCategory returns the best scoring entry for the query, or nil when the
// query is blank or the best score is below threshold. Ties go to the entry
// declared first in the taxonomy.
func (s *MatchingService) FindCategory(query string, threshold float64) *domain.CategoryMatch {
	matches := s.rank(query)
	if len(matches) == 0 {
		return nil
	}

	best := matches[0]
	if s.config.EnableDebugLogging {
		log.Printf("[MATCH] Best for %q: %q (score: %.2f, threshold: %.2f)",
			query, best.Category.Name, best.Score, threshold)
	}

	if best.Score < threshold {
		return nil
	}
	return &best
}

// FindCategories returns every entry scoring at least threshold, best first,
// truncated to limit. A non-positive limit means no truncation.
func (s *MatchingService) FindCategories(query string, limit int, threshold float64) []domain.CategoryMatch {
	matches := s.rank(query)

	var result []domain.CategoryMatch
	for _, m := range matches {
		// rank output is sorted, so everything after the first miss is below threshold too
		if m.Score < threshold {
			break
		}
		result = append(result, m)
	}

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// GetCategoryByID returns the first entry with the given id, or nil
func (s *MatchingService) GetCategoryByID(id string) *domain.CategoryEntry {
	for entry := range s.store.All() {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// SuggestCategoryForSearch maps a shopper's search text to a category.
// The whole query is tried first at the suggest threshold. Failing that, each
// word of at least three characters is tried alone, left to right, and the
// first word that clears the word threshold wins, even if a later word would
// score higher.
func (s *MatchingService) SuggestCategoryForSearch(query string) *domain.CategoryMatch {
	if match := s.FindCategory(query, s.config.SuggestThreshold); match != nil {
		return match
	}

	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) < minSuggestWordLen {
			continue
		}
		if match := s.FindCategory(word, s.config.SuggestWordThreshold); match != nil {
			if s.config.EnableDebugLogging {
				log.Printf("[MATCH] Suggest for %q fell back to word %q", query, word)
			}
			return match
		}
	}

	return nil
}

// rank scores every entry against the query and returns the positive scores,
// highest first. The sort is stable so equal scores keep taxonomy order.
func (s *MatchingService) rank(query string) []domain.CategoryMatch {
	normalized := Normalize(query)
	if normalized == "" {
		return nil
	}

	var matches []domain.CategoryMatch
	for _, se := range s.entries {
		score := scoreCategory(normalized, se)

		if s.config.EnableDebugLogging && score > 0 {
			log.Printf("[MATCH] %q vs %q | Score: %.2f", normalized, se.name, score)
		}

		if score > 0 {
			matches = append(matches, domain.NewCategoryMatch(se.entry, score))
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.CategoryMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return matches
}
