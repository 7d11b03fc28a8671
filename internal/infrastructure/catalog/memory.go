package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ecoswap/recommender/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory product catalog. Insertion order is
// preserved so listings (and the similarity tie-break that depends on
// catalog order) stay deterministic.
type MemoryStore struct {
	mutex    sync.RWMutex
	products map[string]domain.Product
	order    []string
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]domain.Product),
	}
}

// Upsert inserts or replaces a product. The sustainability score is always
// recomputed from carbon intensity, organic flag, and category, so a stale
// or caller-supplied score never survives a write.
func (s *MemoryStore) Upsert(ctx context.Context, product *domain.Product) error {
	if product == nil || product.Name == "" {
		return domain.ErrInvalidProduct
	}
	if !product.Category.IsValid() {
		return domain.ErrInvalidProduct
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	now := time.Now()
	if _, exists := s.products[product.ID]; !exists {
		s.order = append(s.order, product.ID)
		if product.CreatedAt.IsZero() {
			product.CreatedAt = now
		}
	}
	product.UpdatedAt = now
	product.Rescore()

	s.products[product.ID] = *product
	return nil
}

// GetByID returns a copy of the product with the given ID
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

// List returns products passing the filters, ordered by the sort option.
// A zero sort option keeps insertion order.
func (s *MemoryStore) List(ctx context.Context, filters *domain.ProductFilters, sortBy domain.SortOption) ([]domain.Product, error) {
	s.mutex.RLock()
	results := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		product := s.products[id]
		if filters.Matches(&product) {
			results = append(results, product)
		}
	}
	s.mutex.RUnlock()

	sortProducts(results, sortBy)
	return results, nil
}

// Count returns the number of products in the catalog
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products), nil
}

// sortProducts orders products in place. Sorts are stable so equal keys
// keep catalog order.
func sortProducts(products []domain.Product, sortBy domain.SortOption) {
	var less func(a, b *domain.Product) bool

	switch sortBy {
	case domain.SortNameAsc:
		less = func(a, b *domain.Product) bool { return a.Name < b.Name }
	case domain.SortNameDesc:
		less = func(a, b *domain.Product) bool { return a.Name > b.Name }
	case domain.SortPriceAsc:
		less = func(a, b *domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b *domain.Product) bool { return a.Price > b.Price }
	case domain.SortSustainabilityAsc:
		less = func(a, b *domain.Product) bool { return a.SustainabilityScore < b.SustainabilityScore }
	case domain.SortSustainabilityDesc:
		less = func(a, b *domain.Product) bool { return a.SustainabilityScore > b.SustainabilityScore }
	case domain.SortCarbonAsc:
		less = func(a, b *domain.Product) bool { return a.CarbonIntensity < b.CarbonIntensity }
	case domain.SortCarbonDesc:
		less = func(a, b *domain.Product) bool { return a.CarbonIntensity > b.CarbonIntensity }
	case domain.SortRatingDesc:
		less = func(a, b *domain.Product) bool { return a.Rating > b.Rating }
	case domain.SortNewest:
		less = func(a, b *domain.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}
