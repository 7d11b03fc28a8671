package domain

import "strings"

// PriceRange bounds a price filter (inclusive)
type PriceRange struct {
	Min float64 `json:"min" form:"priceMin"`
	Max float64 `json:"max" form:"priceMax"`
}

// ScoreRange bounds a sustainability score filter (inclusive)
type ScoreRange struct {
	Min int `json:"min" form:"scoreMin"`
	Max int `json:"max" form:"scoreMax"`
}

// ProductFilters narrows a catalog listing. Zero values mean "no filter".
type ProductFilters struct {
	Categories          []ProductCategory `json:"category,omitempty"`
	PriceRange          *PriceRange       `json:"priceRange,omitempty"`
	SustainabilityScore *ScoreRange       `json:"sustainabilityScore,omitempty"`
	IsOrganic           *bool             `json:"isOrganic,omitempty"`
	InStock             *bool             `json:"inStock,omitempty"`
	Tags                []string          `json:"tags,omitempty"`
	Search              string            `json:"search,omitempty"`
}

// SortOption orders a catalog listing
type SortOption string

const (
	SortNameAsc            SortOption = "name-asc"
	SortNameDesc           SortOption = "name-desc"
	SortPriceAsc           SortOption = "price-asc"
	SortPriceDesc          SortOption = "price-desc"
	SortSustainabilityAsc  SortOption = "sustainability-asc"
	SortSustainabilityDesc SortOption = "sustainability-desc"
	SortCarbonAsc          SortOption = "carbon-asc"
	SortCarbonDesc         SortOption = "carbon-desc"
	SortRatingDesc         SortOption = "rating-desc"
	SortNewest             SortOption = "newest"
)

// Matches reports whether the product passes every active filter
func (f *ProductFilters) Matches(p *Product) bool {
	if f == nil {
		return true
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if p.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.PriceRange != nil {
		if p.Price < f.PriceRange.Min {
			return false
		}
		if f.PriceRange.Max > 0 && p.Price > f.PriceRange.Max {
			return false
		}
	}

	if f.SustainabilityScore != nil {
		if p.SustainabilityScore < f.SustainabilityScore.Min {
			return false
		}
		if f.SustainabilityScore.Max > 0 && p.SustainabilityScore > f.SustainabilityScore.Max {
			return false
		}
	}

	if f.IsOrganic != nil && p.IsOrganic != *f.IsOrganic {
		return false
	}

	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}

	for _, tag := range f.Tags {
		if !hasTag(p.Tags, tag) {
			return false
		}
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}

	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
