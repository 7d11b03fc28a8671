package domain

import "context"

// CatalogRepository defines the interface for product catalog access
type CatalogRepository interface {
	List(ctx context.Context, filters *ProductFilters, sort SortOption) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Upsert(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int, error)
}

// CopyGenerator defines the interface for the external text-generation
// collaborator that writes recommendation comparison copy. Implementations
// may fail freely; callers are expected to degrade to local copy.
type CopyGenerator interface {
	Generate(ctx context.Context, request *RecommendationRequest) (*RecommendationResponse, error)
}
