package domain

import "errors"

var (
	// ErrCategoryNotFound is returned when a category id or query has no match
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogAPIFailure is returned when the remote category API request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrFallbackDisabled is returned when the remote fallback is not configured
	ErrFallbackDisabled = errors.New("remote category fallback not configured")
)
