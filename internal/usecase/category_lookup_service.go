package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CategoryLookupConfig holds configuration for the remote fallback lookup
type CategoryLookupConfig struct {
	PageSize           int
	EnableDebugLogging bool
}

// CategoryLookupService is the best-effort remote fallback for category lookups.
// Results are cached by normalized category name. Every collaborator failure is
// logged and reported to the caller as "no match".
type CategoryLookupService struct {
	api      domain.CategoryAPI
	cache    domain.CategoryCache
	pageSize int
	debug    bool
	group    singleflight.Group
}

// NewCategoryLookupService creates a lookup service over a remote API and cache
func NewCategoryLookupService(
	api domain.CategoryAPI,
	cache domain.CategoryCache,
	config CategoryLookupConfig,
) *CategoryLookupService {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &CategoryLookupService{
		api:      api,
		cache:    cache,
		pageSize: pageSize,
		debug:    config.EnableDebugLogging,
	}
}

// SearchCategories returns remote categories whose name contains the query,
// case-insensitively. A cached record under the normalized query is returned
// alone without a remote call.
func (s *CategoryLookupService) SearchCategories(ctx context.Context, query string) []domain.RemoteCategory {
	key := Normalize(query)
	if key == "" {
		return nil
	}

	if cached, err := s.cache.Get(ctx, key); err == nil {
		s.debugLog("Cache hit for %q", key)
		return []domain.RemoteCategory{cached}
	}

	// Concurrent searches for the same text share one remote fetch
	result, err := s.shared(ctx, "search:"+key, func(fetchCtx context.Context) (any, error) {
		return s.fetchMatching(fetchCtx, query)
	})
	if err != nil {
		log.Printf("[FALLBACK] Remote search for %q failed: %v", query, err)
		return nil
	}

	return result.([]domain.RemoteCategory)
}

func (s *CategoryLookupService) fetchMatching(ctx context.Context, query string) ([]domain.RemoteCategory, error) {
	page, err := s.api.GetCategories(ctx, s.pageSize)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	needle := strings.ToLower(query)
	var matches []domain.RemoteCategory
	for _, category := range page.Categories {
		if !strings.Contains(strings.ToLower(category.Name), needle) {
			continue
		}
		matches = append(matches, category)
		s.store(ctx, category)
	}

	s.debugLog("Remote search %q matched %d of %d categories", query, len(matches), len(page.Categories))
	return matches, nil
}

// GetCategoryByID looks the id up among cached records first, then remotely.
// Returns nil when nothing is found or the remote call fails.
func (s *CategoryLookupService) GetCategoryByID(ctx context.Context, id string) *domain.RemoteCategory {
	if id == "" {
		return nil
	}

	for _, cached := range s.cache.Values(ctx) {
		if cached.ID == id {
			s.debugLog("Cache hit for id %s", id)
			return &cached
		}
	}

	result, err := s.shared(ctx, "id:"+id, func(fetchCtx context.Context) (any, error) {
		return s.api.GetCategoryByID(fetchCtx, id)
	})
	if errors.Is(err, domain.ErrCategoryNotFound) {
		s.debugLog("Remote lookup found no category with id %s", id)
		return nil
	}
	if err != nil {
		log.Printf("[FALLBACK] Remote lookup for id %s failed: %v", id, err)
		return nil
	}

	category, _ := result.(*domain.RemoteCategory)
	if category == nil {
		return nil
	}

	s.store(ctx, *category)
	found := *category
	return &found
}

// shared runs fn once per key for all concurrent callers. The fetch is detached
// from any single caller's cancellation; each caller stops waiting when its own
// ctx is done.
func (s *CategoryLookupService) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fn(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (s *CategoryLookupService) store(ctx context.Context, category domain.RemoteCategory) {
	key := Normalize(category.Name)
	if key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, category); err != nil {
		// Caching is an optimization; the lookup result is still returned
		log.Printf("[CACHE] Failed to cache category %q: %v", category.ID, err)
	}
}

// CachedCount returns how many remote categories are currently cached
func (s *CategoryLookupService) CachedCount() int {
	return s.cache.Size()
}

func (s *CategoryLookupService) debugLog(format string, args ...any) {
	if s.debug {
		log.Printf("[FALLBACK] "+format, args...)
	}
}
