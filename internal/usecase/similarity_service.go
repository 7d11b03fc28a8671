package usecase

import (
	"log"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ecoswap/recommender/internal/domain"
)

// Package-level compiled regex pattern for performance
var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// Scoring weights for similarity signals
const (
	categoryMatchScore  = 40.0 // Same category
	keywordOverlapMax   = 35.0 // Description keyword overlap ceiling
	nameOverlapMax      = 15.0 // Name token overlap ceiling
	affinityGroupScore  = 10.0 // Related product type
	brandMatchScore     = 5.0  // Exact brand match
	keywordReasonFloor  = 10.0 // "Similar description" tag threshold
	nameReasonFloor     = 5.0  // "Similar name" tag threshold
	maxKeywordsPerText  = 10
	defaultSimilarLimit = 5
	defaultMinScore     = 15.0
)

// Human-readable reason tags attached to similarity scores
const (
	ReasonSameCategory       = "Same category"
	ReasonSimilarDescription = "Similar description"
	ReasonSimilarName        = "Similar name"
	ReasonRelatedProductType = "Related product type"
	ReasonSameBrand          = "Same brand"
)

// descriptionStopWords are dropped during keyword extraction
var descriptionStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true,
}

// defaultAffinityGroups maps a base product word to related words. A query
// whose name contains the base word is considered related to any candidate
// whose name or description contains one of the related words.
var defaultAffinityGroups = map[string][]string{
	"tomato":  {"paste", "sauce", "juice", "ketchup"},
	"milk":    {"dairy", "almond", "oat", "soy"},
	"bread":   {"grain", "wheat", "flour"},
	"apple":   {"fruit", "juice", "cider"},
	"chicken": {"poultry", "meat", "protein"},
	"rice":    {"grain", "quinoa", "barley"},
}

// SimilarityConfig holds configuration for the similarity service
type SimilarityConfig struct {
	Limit              int
	MinScore           float64
	AffinityGroups     map[string][]string
	EnableDebugLogging bool
}

// SimilarityService scores catalog products by textual and categorical
// resemblance to a query product
type SimilarityService struct {
	limit              int
	minScore           float64
	affinityGroups     map[string][]string
	enableDebugLogging bool
}

// NewSimilarityService creates a similarity service with the given configuration
func NewSimilarityService(config SimilarityConfig) *SimilarityService {
	limit := config.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	groups := config.AffinityGroups
	if groups == nil {
		groups = defaultAffinityGroups
	}

	return &SimilarityService{
		limit:              limit,
		minScore:           minScore,
		affinityGroups:     groups,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindSimilarProducts scores every catalog product against the query and
// returns up to limit matches ordered by descending similarity. The query
// itself is skipped, and candidates at or below the minimum score are
// excluded entirely so low-relevance matches never reach the ranking stage.
func (s *SimilarityService) FindSimilarProducts(
	query *domain.Product,
	catalog []domain.Product,
	limit int,
) ([]domain.SimilarityScore, error) {
	if query == nil || query.ID == "" || query.Name == "" {
		return nil, domain.ErrInvalidProduct
	}

	if limit <= 0 {
		limit = s.limit
	}

	var scores []domain.SimilarityScore
	for i := range catalog {
		candidate := &catalog[i]
		if candidate.ID == query.ID {
			continue
		}

		score := s.scoreSimilarity(query, candidate)
		if s.enableDebugLogging {
			log.Printf("[SIMILARITY] %q vs %q: %.1f %v", query.Name, candidate.Name, score.Score, score.Reasons)
		}

		if score.Score > s.minScore {
			scores = append(scores, score)
		}
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// scoreSimilarity computes the additive similarity score for one candidate
func (s *SimilarityService) scoreSimilarity(query, candidate *domain.Product) domain.SimilarityScore {
	var score float64
	var reasons []string

	if query.Category == candidate.Category {
		score += categoryMatchScore
		reasons = append(reasons, ReasonSameCategory)
	}

	keywordScore := keywordOverlap(query.Description, candidate.Description)
	score += keywordScore
	if keywordScore > keywordReasonFloor {
		reasons = append(reasons, ReasonSimilarDescription)
	}

	nameScore := nameSimilarity(query.Name, candidate.Name)
	score += nameScore
	if nameScore > nameReasonFloor {
		reasons = append(reasons, ReasonSimilarName)
	}

	affinityScore := s.affinityBonus(query, candidate)
	score += affinityScore
	if affinityScore > 0 {
		reasons = append(reasons, ReasonRelatedProductType)
	}

	if query.Brand != "" && candidate.Brand != "" && query.Brand == candidate.Brand {
		score += brandMatchScore
		reasons = append(reasons, ReasonSameBrand)
	}

	return domain.SimilarityScore{
		Product: *candidate,
		Score:   score,
		Reasons: reasons,
	}
}

// keywordOverlap scores description resemblance on 0-35. The ratio divides
// by the larger keyword count, not the union size; the score ranges depend
// on this exact formula.
func keywordOverlap(desc1, desc2 string) float64 {
	words1 := extractKeywords(desc1)
	words2 := extractKeywords(desc2)

	larger := len(words1)
	if len(words2) > larger {
		larger = len(words2)
	}
	if larger == 0 {
		return 0
	}

	common := 0
	for _, w := range words1 {
		if containsWord(words2, w) {
			common++
		}
	}

	ratio := float64(common) / float64(larger)
	return math.Floor(ratio * keywordOverlapMax)
}

// nameSimilarity scores name resemblance on 0-15. Tokens match when either
// token is a substring of the other.
func nameSimilarity(name1, name2 string) float64 {
	words1 := strings.Fields(strings.ToLower(name1))
	words2 := strings.Fields(strings.ToLower(name2))

	larger := len(words1)
	if len(words2) > larger {
		larger = len(words2)
	}
	if larger == 0 {
		return 0
	}

	common := 0
	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if strings.Contains(w2, w1) || strings.Contains(w1, w2) {
				common++
				break
			}
		}
	}

	ratio := float64(common) / float64(larger)
	return math.Floor(ratio * nameOverlapMax)
}

// affinityBonus awards a fixed bonus when the query name contains an affinity
// base word and the candidate name or description contains a related word
func (s *SimilarityService) affinityBonus(query, candidate *domain.Product) float64 {
	queryName := strings.ToLower(query.Name)
	candidateName := strings.ToLower(candidate.Name)
	candidateDesc := strings.ToLower(candidate.Description)

	for base, related := range s.affinityGroups {
		if !strings.Contains(queryName, base) {
			continue
		}
		for _, word := range related {
			if strings.Contains(candidateName, word) || strings.Contains(candidateDesc, word) {
				return affinityGroupScore
			}
		}
	}
	return 0
}

// extractKeywords splits text into at most 10 lowercase keywords, dropping
// punctuation, stop words, and tokens of two characters or fewer
func extractKeywords(text string) []string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(text), " ")
	words := strings.Fields(cleaned)

	var keywords []string
	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if descriptionStopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywordsPerText {
			break
		}
	}
	return keywords
}

func containsWord(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}
