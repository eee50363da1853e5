package domain

// CategoryEntry is one record of the static category taxonomy.
// Entries are shared by pointer and must be treated as read-only.
type CategoryEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ParentName string   `json:"parentName,omitempty"`
	Keywords   []string `json:"-"`
}

// CategoryMatch is the result of scoring a query against one taxonomy entry
type CategoryMatch struct {
	Category     *CategoryEntry `json:"category"`
	Score        float64        `json:"score"`
	IsExactMatch bool           `json:"isExactMatch"`
}

// NewCategoryMatch builds a match, deriving the exact flag from the score
func NewCategoryMatch(entry *CategoryEntry, score float64) CategoryMatch {
	return CategoryMatch{
		Category:     entry,
		Score:        score,
		IsExactMatch: score >= 1.0,
	}
}

// MatchSummary is the flat wire shape of a CategoryMatch shared by the HTTP API
// and the CLI's JSON output
type MatchSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ParentName   string  `json:"parentName,omitempty"`
	Score        float64 `json:"score"`
	IsExactMatch bool    `json:"isExactMatch"`
}

// Summary flattens the match into its wire shape
func (m CategoryMatch) Summary() MatchSummary {
	return MatchSummary{
		ID:           m.Category.ID,
		Name:         m.Category.Name,
		ParentName:   m.Category.ParentName,
		Score:        m.Score,
		IsExactMatch: m.IsExactMatch,
	}
}

// RemoteCategory is a category record returned by the remote catalog API
type RemoteCategory struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Active bool                `json:"active,omitempty"`
	Path   []RemoteCategoryRef `json:"path,omitempty"`
}

// RemoteCategoryRef is a lightweight ancestor reference in a remote category path
type RemoteCategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToEntry converts the remote record into a taxonomy-shaped entry.
// The parent name is taken from the closest ancestor in the path, if any.
func (c RemoteCategory) ToEntry() CategoryEntry {
	entry := CategoryEntry{ID: c.ID, Name: c.Name}
	for i := len(c.Path) - 1; i >= 0; i-- {
		if c.Path[i].ID != c.ID {
			entry.ParentName = c.Path[i].Name
			break
		}
	}
	return entry
}

// CategoryPage is one page of the remote category listing
type CategoryPage struct {
	Categories  []RemoteCategory `json:"categories"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
}
