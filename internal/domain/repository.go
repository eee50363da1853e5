package domain

import (
	"context"
)

// CategoryCache stores remote category records keyed by normalized category name
type CategoryCache interface {
	Get(ctx context.Context, key string) (RemoteCategory, error)
	Set(ctx context.Context, key string, value RemoteCategory) error
	Values(ctx context.Context) []RemoteCategory
	Size() int
}

// CategoryAPI defines the interface for the remote category lookup collaborator
type CategoryAPI interface {
	GetCategories(ctx context.Context, pageSize int) (*CategoryPage, error)
	GetCategoryByID(ctx context.Context, id string) (*RemoteCategory, error)
}
