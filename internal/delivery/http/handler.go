package http

import (
	"net/http"
	"strconv"

	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	matching *usecase.MatchingService
	lookup   *usecase.CategoryLookupService // nil when the remote fallback is not configured
}

// NewHandler creates a new HTTP handler
func NewHandler(matching *usecase.MatchingService, lookup *usecase.CategoryLookupService) *Handler {
	return &Handler{
		matching: matching,
		lookup:   lookup,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":          "healthy",
		"service":         "cartwise-backend",
		"version":         "1.0.0",
		"categories":      h.matching.Store().Len(),
		"fallbackEnabled": h.lookup != nil,
	}
	if h.lookup != nil {
		response["cachedCategories"] = h.lookup.CachedCount()
	}

	c.JSON(http.StatusOK, response)
}

// ListCategories returns the picker subset, one group, or the whole taxonomy
func (h *Handler) ListCategories(c *gin.Context) {
	store := h.matching.Store()

	if group := c.Query("group"); group != "" {
		entries, ok := store.Group(group)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown category group: " + group})
			return
		}
		c.JSON(http.StatusOK, gin.H{"group": group, "categories": entries})
		return
	}

	if all, _ := strconv.ParseBool(c.Query("all")); all {
		c.JSON(http.StatusOK, gin.H{"categories": store.Entries(), "groups": store.GroupNames()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": store.Picker()})
}

// MatchCategory returns the single best category for q
func (h *Handler) MatchCategory(c *gin.Context) {
	query, ok := requireQuery(c)
	if !ok {
		return
	}

	threshold, ok := floatParam(c, "threshold", h.matching.Config().FindThreshold)
	if !ok {
		return
	}

	match := h.matching.FindCategory(query, threshold)
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error(), "query": query})
		return
	}

	c.JSON(http.StatusOK, match.Summary())
}

// SearchCategories returns the ranked matches for q
func (h *Handler) SearchCategories(c *gin.Context) {
	query, ok := requireQuery(c)
	if !ok {
		return
	}

	cfg := h.matching.Config()
	threshold, ok := floatParam(c, "threshold", cfg.SearchThreshold)
	if !ok {
		return
	}

	limit := cfg.SearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	matches := h.matching.FindCategories(query, limit, threshold)
	results := make([]domain.MatchSummary, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.Summary())
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}

// SuggestCategory maps a shopper search to a category
func (h *Handler) SuggestCategory(c *gin.Context) {
	query, ok := requireQuery(c)
	if !ok {
		return
	}

	match := h.matching.SuggestCategoryForSearch(query)
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error(), "query": query})
		return
	}

	c.JSON(http.StatusOK, match.Summary())
}

// GetCategory returns the taxonomy entry with the given id
func (h *Handler) GetCategory(c *gin.Context) {
	entry := h.matching.GetCategoryByID(c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// SearchRemoteCategories runs the remote fallback search
func (h *Handler) SearchRemoteCategories(c *gin.Context) {
	if !h.requireFallback(c) {
		return
	}

	query, ok := requireQuery(c)
	if !ok {
		return
	}

	results := h.lookup.SearchCategories(c.Request.Context(), query)
	if results == nil {
		results = []domain.RemoteCategory{}
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}

// GetRemoteCategory runs the remote fallback id lookup
func (h *Handler) GetRemoteCategory(c *gin.Context) {
	if !h.requireFallback(c) {
		return
	}

	category := h.lookup.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) requireFallback(c *gin.Context) bool {
	if h.lookup == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrFallbackDisabled.Error()})
		return false
	}
	return true
}

func requireQuery(c *gin.Context) (string, bool) {
	query := c.Query("q")
	if usecase.Normalize(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return "", false
	}
	return query, true
}

func floatParam(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number between 0 and 1"})
		return 0, false
	}
	return value, true
}
