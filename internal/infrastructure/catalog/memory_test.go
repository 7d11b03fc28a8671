package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoswap/recommender/internal/domain"
)

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid products", func(t *testing.T) {
		store := NewMemoryStore()

		if err := store.Upsert(ctx, nil); !errors.Is(err, domain.ErrInvalidProduct) {
			t.Errorf("Upsert(nil) error = %v, want ErrInvalidProduct", err)
		}
		if err := store.Upsert(ctx, &domain.Product{Category: domain.CategoryProduce}); !errors.Is(err, domain.ErrInvalidProduct) {
			t.Errorf("Upsert(no name) error = %v, want ErrInvalidProduct", err)
		}
		if err := store.Upsert(ctx, &domain.Product{Name: "Thing", Category: "Gadgets"}); !errors.Is(err, domain.ErrInvalidProduct) {
			t.Errorf("Upsert(bad category) error = %v, want ErrInvalidProduct", err)
		}
	})

	t.Run("assigns an ID when missing", func(t *testing.T) {
		store := NewMemoryStore()
		product := domain.Product{Name: "Oat Milk", Category: domain.CategoryDairy, CarbonIntensity: 0.6}

		if err := store.Upsert(ctx, &product); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		if product.ID == "" {
			t.Error("Upsert() did not assign an ID")
		}
		if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
			t.Error("Upsert() did not set timestamps")
		}
	})

	t.Run("always derives the sustainability score", func(t *testing.T) {
		store := NewMemoryStore()
		product := domain.Product{
			ID: "p-1", Name: "Organic Kale",
			Category:        domain.CategoryProduce,
			CarbonIntensity: 0.4, IsOrganic: true,
			SustainabilityScore: 3, // caller-supplied, must be discarded
		}

		if err := store.Upsert(ctx, &product); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		stored, err := store.GetByID(ctx, "p-1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if stored.SustainabilityScore != 100 {
			t.Errorf("stored score = %d, want derived 100", stored.SustainabilityScore)
		}
	})

	t.Run("replace keeps insertion order and rescores", func(t *testing.T) {
		store := NewMemoryStore()
		first := domain.Product{ID: "p-1", Name: "Kale", Category: domain.CategoryProduce, CarbonIntensity: 0.4}
		second := domain.Product{ID: "p-2", Name: "Rice", Category: domain.CategoryGrains, CarbonIntensity: 3.8}
		for _, p := range []domain.Product{first, second} {
			p := p
			if err := store.Upsert(ctx, &p); err != nil {
				t.Fatalf("Upsert() error = %v", err)
			}
		}

		// Updating p-1 with a higher footprint must drop its derived score
		// without moving it behind p-2.
		update := domain.Product{ID: "p-1", Name: "Kale", Category: domain.CategoryProduce, CarbonIntensity: 6.2}
		if err := store.Upsert(ctx, &update); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		products, err := store.List(ctx, nil, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("got %d products, want 2", len(products))
		}
		if products[0].ID != "p-1" || products[1].ID != "p-2" {
			t.Errorf("order = [%s %s], want [p-1 p-2]", products[0].ID, products[1].ID)
		}
		if products[0].SustainabilityScore != 50 {
			t.Errorf("updated score = %d, want 50", products[0].SustainabilityScore)
		}
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	product := domain.Product{ID: "p-1", Name: "Kale", Category: domain.CategoryProduce, CarbonIntensity: 0.4}
	if err := store.Upsert(ctx, &product); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	t.Run("unknown ID", func(t *testing.T) {
		_, err := store.GetByID(ctx, "missing")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("GetByID() error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		got, err := store.GetByID(ctx, "p-1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		got.Name = "Mutated"

		again, err := store.GetByID(ctx, "p-1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if again.Name != "Kale" {
			t.Errorf("stored product mutated through returned pointer: %q", again.Name)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	t.Run("nil filters return everything in insertion order", func(t *testing.T) {
		products, err := store.List(ctx, nil, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 12 {
			t.Fatalf("got %d products, want 12", len(products))
		}
		if products[0].ID != "prod-001" || products[11].ID != "prod-012" {
			t.Errorf("insertion order broken: first %s, last %s", products[0].ID, products[11].ID)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		filters := &domain.ProductFilters{Categories: []domain.ProductCategory{domain.CategoryGrains}}
		products, err := store.List(ctx, filters, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("got %d grain products, want 2", len(products))
		}
		for _, p := range products {
			if p.Category != domain.CategoryGrains {
				t.Errorf("product %s has category %s", p.ID, p.Category)
			}
		}
	})

	t.Run("organic filter with search", func(t *testing.T) {
		organic := true
		filters := &domain.ProductFilters{IsOrganic: &organic, Search: "milk"}
		products, err := store.List(ctx, filters, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 1 || products[0].ID != "prod-006" {
			t.Fatalf("got %v, want only prod-006 (Organic Almond Milk)", productIDs(products))
		}
	})

	t.Run("sort by price ascending", func(t *testing.T) {
		products, err := store.List(ctx, nil, domain.SortPriceAsc)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for i := 1; i < len(products); i++ {
			if products[i].Price < products[i-1].Price {
				t.Fatalf("prices out of order at %d: %v then %v", i, products[i-1].Price, products[i].Price)
			}
		}
		if products[0].ID != "prod-002" {
			t.Errorf("cheapest = %s, want prod-002 (bananas at 2.49)", products[0].ID)
		}
	})

	t.Run("sort by sustainability descending keeps catalog order on ties", func(t *testing.T) {
		products, err := store.List(ctx, nil, domain.SortSustainabilityDesc)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for i := 1; i < len(products); i++ {
			if products[i].SustainabilityScore > products[i-1].SustainabilityScore {
				t.Fatalf("scores out of order at %d", i)
			}
		}
		// prod-001 and prod-003 derive 100, prod-004 and prod-006 derive 95;
		// each pair must keep its seed order.
		want := []string{"prod-001", "prod-003", "prod-004", "prod-006"}
		for i, id := range want {
			if products[i].ID != id {
				t.Errorf("products[%d] = %s, want %s", i, products[i].ID, id)
			}
		}
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 12 {
		t.Errorf("Count() = %d, want 12", count)
	}

	// Seeding twice replaces rather than duplicates.
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	count, _ = store.Count(ctx)
	if count != 12 {
		t.Errorf("Count() after reseed = %d, want 12", count)
	}
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
