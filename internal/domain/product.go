package domain

import "time"

// ProductCategory classifies products for sustainability scoring
type ProductCategory string

// Closed set of product categories
const (
	CategoryProduce        ProductCategory = "Produce"
	CategoryGrains         ProductCategory = "Grains"
	CategoryDairy          ProductCategory = "Dairy"
	CategoryMeat           ProductCategory = "Meat"
	CategoryClothing       ProductCategory = "Clothing"
	CategoryElectronics    ProductCategory = "Electronics"
	CategoryHomeGoods      ProductCategory = "Home Goods"
	CategoryAutomotive     ProductCategory = "Automotive"
	CategoryEnergy         ProductCategory = "Energy"
	CategoryTransportation ProductCategory = "Transportation"
)

// AllCategories lists every valid product category
var AllCategories = []ProductCategory{
	CategoryProduce, CategoryGrains, CategoryDairy, CategoryMeat,
	CategoryClothing, CategoryElectronics, CategoryHomeGoods,
	CategoryAutomotive, CategoryEnergy, CategoryTransportation,
}

// IsValid reports whether the category belongs to the closed set
func (c ProductCategory) IsValid() bool {
	for _, cat := range AllCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Product represents a single catalog entry
type Product struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	ImageURL            string          `json:"image,omitempty"`
	Price               float64         `json:"price"`
	CarbonIntensity     float64         `json:"carbonIntensity"` // kg CO2e per unit
	IsOrganic           bool            `json:"isOrganic"`
	Category            ProductCategory `json:"category"`
	Brand               string          `json:"brand,omitempty"`
	Rating              float64         `json:"rating,omitempty"` // 0-5
	ReviewCount         int             `json:"reviewCount,omitempty"`
	InStock             bool            `json:"inStock"`
	SustainabilityScore int             `json:"sustainabilityScore"` // 0-100, always derived
	Tags                []string        `json:"tags,omitempty"`
	CreatedAt           time.Time       `json:"createdAt,omitempty"`
	UpdatedAt           time.Time       `json:"updatedAt,omitempty"`
}

// ComputeSustainabilityScore derives the 0-100 sustainability score from a
// product's carbon intensity, organic status, and category. The score on a
// Product must always come from this function; callers never set it directly.
func ComputeSustainabilityScore(carbonIntensity float64, isOrganic bool, category ProductCategory) int {
	score := 50

	// Carbon intensity tiers (lower is better)
	switch {
	case carbonIntensity < 1:
		score += 30
	case carbonIntensity < 3:
		score += 20
	case carbonIntensity < 5:
		score += 10
	default:
		score -= 10
	}

	if isOrganic {
		score += 15
	}

	if category == CategoryProduce || category == CategoryGrains {
		score += 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Rescore recomputes the derived sustainability score in place. Must be
// called after any change to CarbonIntensity, IsOrganic, or Category.
func (p *Product) Rescore() {
	p.SustainabilityScore = ComputeSustainabilityScore(p.CarbonIntensity, p.IsOrganic, p.Category)
}

// SimilarityScore pairs a candidate product with its similarity to a query
// product. Lives only for the duration of a single similarity search.
type SimilarityScore struct {
	Product Product  `json:"product"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// ProductRecommendation is a product enriched with comparison copy and the
// gamification metrics awarded for choosing it over the original.
type ProductRecommendation struct {
	Product
	Comparison              string  `json:"comparison"`
	EcoCredits              int     `json:"ecoCreds"`      // 10-50
	CarbonSavings           float64 `json:"carbonSavings"` // kg CO2e vs the original
	ReasonForRecommendation string  `json:"reasonForRecommendation"`
}

// RecommendationRequest is the payload handed to a copy generator
type RecommendationRequest struct {
	OriginalProduct Product   `json:"originalProduct"`
	Alternatives    []Product `json:"alternatives"`
}

// RecommendationResponse carries generated recommendations plus the overall
// reasoning behind them
type RecommendationResponse struct {
	Recommendations []ProductRecommendation `json:"recommendations"`
	Reasoning       string                  `json:"reasoning"`
}

// RecommendationAnalysis summarizes how a recommendation run went
type RecommendationAnalysis struct {
	TotalCandidates            int `json:"totalCandidates"`
	SimilarityMatches          int `json:"similarityMatches"`
	SustainabilityImprovements int `json:"sustainabilityImprovements"`
	AverageScoreImprovement    int `json:"averageScoreImprovement"`
}
