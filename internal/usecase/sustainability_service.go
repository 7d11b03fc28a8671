package usecase

import (
	"log"
	"sort"

	"github.com/ecoswap/recommender/internal/domain"
)

// Scoring weights for sustainability-improvement signals
const (
	carbonReductionMax      = 60.0 // Carbon reduction relative to the query
	organicUpgradeScore     = 25.0 // Candidate organic, query not
	greenCategoryScore      = 15.0 // Naturally sustainable category
	scoreImprovementMax     = 20.0 // Overall sustainability score delta
	scoreImprovementDiv     = 5.0
	defaultAlternativeLimit = 2
)

// SustainabilityConfig holds configuration for the sustainability ranker
type SustainabilityConfig struct {
	Limit              int
	EnableDebugLogging bool
}

// SustainabilityService ranks candidate products by their environmental
// improvement over a query product
type SustainabilityService struct {
	limit              int
	enableDebugLogging bool
}

// NewSustainabilityService creates a sustainability ranker with the given configuration
func NewSustainabilityService(config SustainabilityConfig) *SustainabilityService {
	limit := config.Limit
	if limit <= 0 {
		limit = defaultAlternativeLimit
	}

	return &SustainabilityService{
		limit:              limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// RankBySustainability orders candidates by descending environmental
// improvement over the query and returns up to limit products. The sort is
// stable, so candidates with equal scores keep their input order.
func (s *SustainabilityService) RankBySustainability(
	query *domain.Product,
	candidates []domain.Product,
	limit int,
) ([]domain.Product, error) {
	if query == nil || query.ID == "" {
		return nil, domain.ErrInvalidProduct
	}

	if limit <= 0 {
		limit = s.limit
	}

	type rankedProduct struct {
		product domain.Product
		score   float64
	}

	ranked := make([]rankedProduct, 0, len(candidates))
	for i := range candidates {
		score := s.scoreImprovement(query, &candidates[i])
		if s.enableDebugLogging {
			log.Printf("[RANK] %q vs %q: %.1f", query.Name, candidates[i].Name, score)
		}
		ranked = append(ranked, rankedProduct{product: candidates[i], score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	products := make([]domain.Product, len(ranked))
	for i, r := range ranked {
		products[i] = r.product
	}
	return products, nil
}

// scoreImprovement computes the additive sustainability-improvement score
// for one candidate
func (s *SustainabilityService) scoreImprovement(query, candidate *domain.Product) float64 {
	var score float64

	// Carbon reduction relative to the query. A zero-carbon query makes the
	// ratio undefined; the component contributes nothing rather than NaN.
	if query.CarbonIntensity > 0 {
		reduction := query.CarbonIntensity - candidate.CarbonIntensity
		if reduction < 0 {
			reduction = 0
		}
		carbonScore := (reduction / query.CarbonIntensity) * carbonReductionMax
		if carbonScore > carbonReductionMax {
			carbonScore = carbonReductionMax
		}
		score += carbonScore
	}

	if candidate.IsOrganic && !query.IsOrganic {
		score += organicUpgradeScore
	}

	if candidate.Category == domain.CategoryProduce || candidate.Category == domain.CategoryGrains {
		score += greenCategoryScore
	}

	if delta := candidate.SustainabilityScore - query.SustainabilityScore; delta > 0 {
		improvement := float64(delta) / scoreImprovementDiv
		if improvement > scoreImprovementMax {
			improvement = scoreImprovementMax
		}
		score += improvement
	}

	return score
}
