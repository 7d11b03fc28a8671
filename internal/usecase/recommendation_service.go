package usecase

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/ecoswap/recommender/internal/domain"
)

// Eco credit bounds and bonuses for the local fallback generator
const (
	ecoCreditMin          = 10
	ecoCreditMax          = 50
	ecoCreditOrganicBonus = 15
	ecoCreditScoreBonus   = 10 // Sustainability score above 80
	ecoCreditCarbonBonus  = 10 // Carbon intensity below 1 kg CO2e
	ecoCreditScoreDivisor = 5
)

const (
	analysisSimilarityLimit = 10 // Shortlist size counted for analysis only

	fallbackReasoning = "These alternatives have been selected based on their superior sustainability metrics, including lower carbon footprints and organic certifications."
	reasonOrganic     = "Organic and sustainable"
	reasonLowerCarbon = "Lower carbon footprint"
)

// RecommendationConfig holds configuration for the recommendation orchestrator
type RecommendationConfig struct {
	SimilarLimit       int
	AlternativeLimit   int
	EnableDebugLogging bool
}

// RecommendationService chains the similarity finder and the sustainability
// ranker, and turns ranked alternatives into recommendation copy via an
// optional external generator with a deterministic local fallback.
type RecommendationService struct {
	similarity         *SimilarityService
	sustainability     *SustainabilityService
	generator          domain.CopyGenerator
	similarLimit       int
	alternativeLimit   int
	enableDebugLogging bool
}

// NewRecommendationService creates the orchestrator. The generator may be
// nil, in which case every request uses the local fallback copy.
func NewRecommendationService(
	similarity *SimilarityService,
	sustainability *SustainabilityService,
	generator domain.CopyGenerator,
	config RecommendationConfig,
) *RecommendationService {
	similarLimit := config.SimilarLimit
	if similarLimit <= 0 {
		similarLimit = defaultSimilarLimit
	}

	alternativeLimit := config.AlternativeLimit
	if alternativeLimit <= 0 {
		alternativeLimit = defaultAlternativeLimit
	}

	return &RecommendationService{
		similarity:         similarity,
		sustainability:     sustainability,
		generator:          generator,
		similarLimit:       similarLimit,
		alternativeLimit:   alternativeLimit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindSustainableAlternatives runs the two-stage pipeline: shortlist
// similar products, then keep the best sustainability improvements. An
// empty result means no sustainable alternative exists; it is not an error.
func (s *RecommendationService) FindSustainableAlternatives(
	query *domain.Product,
	catalog []domain.Product,
) ([]domain.Product, error) {
	similar, err := s.similarity.FindSimilarProducts(query, catalog, s.similarLimit)
	if err != nil {
		return nil, err
	}
	if len(similar) == 0 {
		return nil, nil
	}

	candidates := make([]domain.Product, len(similar))
	for i, sim := range similar {
		candidates[i] = sim.Product
	}

	return s.sustainability.RankBySustainability(query, candidates, s.alternativeLimit)
}

// DetailedRecommendations returns the sustainable alternatives together with
// an analysis of the recommendation run
func (s *RecommendationService) DetailedRecommendations(
	query *domain.Product,
	catalog []domain.Product,
) ([]domain.Product, *domain.RecommendationAnalysis, error) {
	alternatives, err := s.FindSustainableAlternatives(query, catalog)
	if err != nil {
		return nil, nil, err
	}

	similar, err := s.similarity.FindSimilarProducts(query, catalog, analysisSimilarityLimit)
	if err != nil {
		return nil, nil, err
	}

	improvements := 0
	totalDelta := 0
	for _, alt := range alternatives {
		delta := alt.SustainabilityScore - query.SustainabilityScore
		if delta > 0 {
			improvements++
		}
		totalDelta += delta
	}

	averageImprovement := 0
	if len(alternatives) > 0 {
		averageImprovement = int(math.Round(float64(totalDelta) / float64(len(alternatives))))
	}

	analysis := &domain.RecommendationAnalysis{
		TotalCandidates:            len(catalog) - 1, // Exclude the query itself
		SimilarityMatches:          len(similar),
		SustainabilityImprovements: improvements,
		AverageScoreImprovement:    averageImprovement,
	}
	return alternatives, analysis, nil
}

// GenerateRecommendations produces comparison copy for the given
// alternatives. It delegates to the external generator when one is
// configured and falls back to deterministic local copy when the generator
// is absent, fails, or returns an unusable response. Collaborator failures
// never propagate to the caller.
func (s *RecommendationService) GenerateRecommendations(
	ctx context.Context,
	request *domain.RecommendationRequest,
) (*domain.RecommendationResponse, error) {
	if request == nil || request.OriginalProduct.ID == "" {
		return nil, domain.ErrInvalidRequest
	}

	if s.generator == nil {
		return s.fallbackRecommendations(request), nil
	}

	response, err := s.generator.Generate(ctx, request)
	if err != nil {
		log.Printf("[RECOMMEND] copy generator failed, using fallback: %v", err)
		return s.fallbackRecommendations(request), nil
	}

	return response, nil
}

// fallbackRecommendations builds recommendation copy locally. Output is
// byte-identical for identical inputs, which makes it the test oracle for
// the generator-unavailable path.
func (s *RecommendationService) fallbackRecommendations(request *domain.RecommendationRequest) *domain.RecommendationResponse {
	recommendations := make([]domain.ProductRecommendation, len(request.Alternatives))
	for i, alt := range request.Alternatives {
		reason := reasonLowerCarbon
		if alt.IsOrganic {
			reason = reasonOrganic
		}

		recommendations[i] = domain.ProductRecommendation{
			Product:                 alt,
			Comparison:              fallbackComparison(&alt),
			EcoCredits:              calculateEcoCredits(&alt),
			CarbonSavings:           carbonSavings(&request.OriginalProduct, &alt),
			ReasonForRecommendation: reason,
		}
	}

	return &domain.RecommendationResponse{
		Recommendations: recommendations,
		Reasoning:       fallbackReasoning,
	}
}

// fallbackComparison assembles the templated comparison sentence from the
// sustainability signals the product actually exhibits
func fallbackComparison(p *domain.Product) string {
	var benefits []string
	if p.IsOrganic {
		benefits = append(benefits, "certified organic production")
	}
	if p.SustainabilityScore > 70 {
		benefits = append(benefits, "excellent sustainability rating")
	}
	if p.CarbonIntensity < 2 {
		benefits = append(benefits, "low carbon footprint")
	}

	benefitText := "sustainable practices"
	if len(benefits) > 0 {
		benefitText = strings.Join(benefits, ", ")
	}

	return p.Name + " offers a more sustainable choice with " + benefitText +
		". This product helps reduce your environmental impact while maintaining quality and value. " +
		"By choosing this alternative, you're supporting eco-friendly practices and contributing to a more sustainable future. " +
		"The improved sustainability metrics make this an excellent choice for environmentally conscious consumers."
}

// calculateEcoCredits derives the 10-50 eco credit award from a product's
// sustainability attributes
func calculateEcoCredits(p *domain.Product) int {
	credits := p.SustainabilityScore / ecoCreditScoreDivisor
	if p.IsOrganic {
		credits += ecoCreditOrganicBonus
	}
	if p.SustainabilityScore > 80 {
		credits += ecoCreditScoreBonus
	}
	if p.CarbonIntensity < 1 {
		credits += ecoCreditCarbonBonus
	}

	if credits < ecoCreditMin {
		credits = ecoCreditMin
	}
	if credits > ecoCreditMax {
		credits = ecoCreditMax
	}
	return credits
}

// carbonSavings is the non-negative carbon delta between original and candidate
func carbonSavings(original, candidate *domain.Product) float64 {
	savings := original.CarbonIntensity - candidate.CarbonIntensity
	if savings < 0 {
		return 0
	}
	return savings
}
