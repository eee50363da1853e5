package usecase

import (
	"strings"

	"github.com/cartwise/backend/internal/domain"
)

// Signal scores. The final score is the strongest signal, never a sum.
const (
	scoreExactName       = 1.0 // Query equals the category name
	scoreKeywordExact    = 0.9 // Query equals a keyword
	scoreQueryInName     = 0.8 // Name contains the query
	scoreNameInQuery     = 0.7 // Query contains the name
	scoreKeywordPartial  = 0.6 // Keyword contains the query or the reverse
	wordOverlapWeight    = 0.5 // Scales the fraction of query words that hit
	editSimilarityWeight = 0.6 // Scales name similarity once above the cutoff
	editSimilarityCutoff = 0.7 // Similarity must exceed this to count
)

// Query words shorter than this are ignored by the word overlap signal
const minOverlapQueryWordLen = 2

// scoredEntry is a taxonomy entry with its text fields normalized once up front
type scoredEntry struct {
	entry    *domain.CategoryEntry
	name     string
	keywords []string
	terms    []string // name words followed by keywords, used for word overlap
}

func newScoredEntry(entry *domain.CategoryEntry) scoredEntry {
	se := scoredEntry{
		entry: entry,
		name:  Normalize(entry.Name),
	}
	for _, kw := range entry.Keywords {
		// A keyword made only of punctuation normalizes to "" and would match everything
		if nk := Normalize(kw); nk != "" {
			se.keywords = append(se.keywords, nk)
		}
	}
	se.terms = append(strings.Fields(se.name), se.keywords...)
	return se
}

// scoreCategory rates how well a normalized query matches one entry.
// Returns a value in [0, 1]; 1 only for an exact name match.
func scoreCategory(query string, se scoredEntry) float64 {
	if query == se.name {
		return scoreExactName
	}

	best := 0.0
	raise := func(score float64) {
		if score > best {
			best = score
		}
	}

	// Containment in either direction
	if strings.Contains(se.name, query) {
		raise(scoreQueryInName)
	}
	if strings.Contains(query, se.name) {
		raise(scoreNameInQuery)
	}

	// Keyword matches
	for _, kw := range se.keywords {
		if query == kw {
			raise(scoreKeywordExact)
		} else if strings.Contains(kw, query) || strings.Contains(query, kw) {
			raise(scoreKeywordPartial)
		}
	}

	raise(wordOverlapScore(query, se.terms))

	if sim := similarity(query, se.name); sim > editSimilarityCutoff {
		raise(sim * editSimilarityWeight)
	}

	return best
}

// wordOverlapScore is the fraction of significant query words found in the
// entry's terms, scaled by wordOverlapWeight. A query word hits a term when
// either one contains the other.
func wordOverlapScore(query string, terms []string) float64 {
	var queryWords []string
	for _, w := range strings.Fields(query) {
		if len(w) >= minOverlapQueryWordLen {
			queryWords = append(queryWords, w)
		}
	}
	if len(queryWords) == 0 {
		return 0
	}

	matched := 0
	for _, qw := range queryWords {
		for _, term := range terms {
			if strings.Contains(term, qw) || strings.Contains(qw, term) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(queryWords)) * wordOverlapWeight
}
