package catalog

import (
	"context"
	"fmt"

	"github.com/ecoswap/recommender/internal/domain"
)

// seedProducts is the built-in demo catalog. Sustainability scores are left
// zero here: Upsert derives them.
var seedProducts = []domain.Product{
	{
		ID:              "prod-001",
		Name:            "Organic Avocados",
		Description:     "Fresh, creamy organic avocados grown using sustainable farming practices. Perfect for toast, salads, or guacamole.",
		Price:           4.99,
		CarbonIntensity: 0.8,
		IsOrganic:       true,
		Category:        domain.CategoryProduce,
		Brand:           "Green Valley Farms",
		Rating:          4.5,
		ReviewCount:     128,
		InStock:         true,
		Tags:            []string{"organic", "local", "sustainable", "healthy"},
	},
	{
		ID:              "prod-002",
		Name:            "Conventional Bananas",
		Description:     "Sweet, ripe bananas imported from tropical regions. Great source of potassium and natural energy.",
		Price:           2.49,
		CarbonIntensity: 2.1,
		IsOrganic:       false,
		Category:        domain.CategoryProduce,
		Brand:           "Tropical Imports",
		Rating:          4.0,
		ReviewCount:     89,
		InStock:         true,
		Tags:            []string{"imported", "affordable", "energy"},
	},
	{
		ID:              "prod-003",
		Name:            "Local Organic Spinach",
		Description:     "Fresh, nutrient-rich organic spinach grown locally. Packed with iron, vitamins, and minerals.",
		Price:           3.99,
		CarbonIntensity: 0.3,
		IsOrganic:       true,
		Category:        domain.CategoryProduce,
		Brand:           "Local Harvest Co.",
		Rating:          4.8,
		ReviewCount:     156,
		InStock:         true,
		Tags:            []string{"organic", "local", "superfood", "iron-rich"},
	},
	{
		ID:              "prod-004",
		Name:            "Organic Quinoa",
		Description:     "Premium organic quinoa, a complete protein source. Sustainably sourced from South American farmers.",
		Price:           8.99,
		CarbonIntensity: 1.2,
		IsOrganic:       true,
		Category:        domain.CategoryGrains,
		Brand:           "Ancient Grains Co.",
		Rating:          4.6,
		ReviewCount:     203,
		InStock:         true,
		Tags:            []string{"organic", "protein", "gluten-free", "superfood"},
	},
	{
		ID:              "prod-005",
		Name:            "Conventional White Rice",
		Description:     "Long-grain white rice, a pantry staple. Versatile and affordable for everyday meals.",
		Price:           3.49,
		CarbonIntensity: 3.8,
		IsOrganic:       false,
		Category:        domain.CategoryGrains,
		Brand:           "Staple Foods Inc.",
		Rating:          3.8,
		ReviewCount:     67,
		InStock:         true,
		Tags:            []string{"affordable", "staple", "versatile"},
	},
	{
		ID:              "prod-006",
		Name:            "Organic Almond Milk",
		Description:     "Creamy, unsweetened organic almond milk. A sustainable plant-based alternative to dairy milk.",
		Price:           4.49,
		CarbonIntensity: 0.7,
		IsOrganic:       true,
		Category:        domain.CategoryDairy,
		Brand:           "Plant Pure",
		Rating:          4.4,
		ReviewCount:     312,
		InStock:         true,
		Tags:            []string{"organic", "plant-based", "dairy-free", "sustainable"},
	},
	{
		ID:              "prod-007",
		Name:            "Conventional Whole Milk",
		Description:     "Fresh whole milk from local dairy farms. Rich in calcium and protein for strong bones.",
		Price:           3.99,
		CarbonIntensity: 4.2,
		IsOrganic:       false,
		Category:        domain.CategoryDairy,
		Brand:           "Dairy Fresh",
		Rating:          4.1,
		ReviewCount:     145,
		InStock:         true,
		Tags:            []string{"calcium", "protein", "local"},
	},
	{
		ID:              "prod-008",
		Name:            "Organic Cotton T-Shirt",
		Description:     "Soft, comfortable t-shirt made from 100% organic cotton. Ethically produced with fair trade practices.",
		Price:           24.99,
		CarbonIntensity: 5.1,
		IsOrganic:       true,
		Category:        domain.CategoryClothing,
		Brand:           "Eco Threads",
		Rating:          4.7,
		ReviewCount:     89,
		InStock:         true,
		Tags:            []string{"organic", "fair-trade", "comfortable", "ethical"},
	},
	{
		ID:              "prod-009",
		Name:            "Fast Fashion Polyester Shirt",
		Description:     "Trendy polyester shirt with modern design. Affordable fashion for everyday wear.",
		Price:           12.99,
		CarbonIntensity: 12.8,
		IsOrganic:       false,
		Category:        domain.CategoryClothing,
		Brand:           "Quick Fashion",
		Rating:          3.2,
		ReviewCount:     234,
		InStock:         true,
		Tags:            []string{"affordable", "trendy", "synthetic"},
	},
	{
		ID:              "prod-010",
		Name:            "Refurbished Laptop",
		Description:     "High-performance refurbished laptop with warranty. Sustainable choice that reduces electronic waste.",
		Price:           599.99,
		CarbonIntensity: 45.2,
		IsOrganic:       false,
		Category:        domain.CategoryElectronics,
		Brand:           "GreenTech Refurb",
		Rating:          4.3,
		ReviewCount:     167,
		InStock:         true,
		Tags:            []string{"refurbished", "warranty", "sustainable", "performance"},
	},
	{
		ID:              "prod-011",
		Name:            "New Gaming Laptop",
		Description:     "Latest gaming laptop with high-end graphics and processing power. Perfect for gaming and creative work.",
		Price:           1299.99,
		CarbonIntensity: 156.7,
		IsOrganic:       false,
		Category:        domain.CategoryElectronics,
		Brand:           "GameMax Pro",
		Rating:          4.6,
		ReviewCount:     298,
		InStock:         true,
		Tags:            []string{"gaming", "high-performance", "new", "graphics"},
	},
	{
		ID:              "prod-012",
		Name:            "Bamboo Kitchen Utensils Set",
		Description:     "Eco-friendly bamboo kitchen utensils set. Sustainable alternative to plastic utensils.",
		Price:           19.99,
		CarbonIntensity: 2.1,
		IsOrganic:       true,
		Category:        domain.CategoryHomeGoods,
		Brand:           "Bamboo Living",
		Rating:          4.5,
		ReviewCount:     178,
		InStock:         true,
		Tags:            []string{"bamboo", "eco-friendly", "sustainable", "kitchen"},
	},
}

// Seed loads the built-in demo catalog into the store
func (s *MemoryStore) Seed(ctx context.Context) error {
	for i := range seedProducts {
		product := seedProducts[i]
		if err := s.Upsert(ctx, &product); err != nil {
			return fmt.Errorf("seeding %q: %w", product.Name, err)
		}
	}
	return nil
}
