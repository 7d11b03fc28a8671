package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecoswap/recommender/internal/domain"
)

// aiPayload is the JSON structure the prompt asks the model to produce
type aiPayload struct {
	Recommendations []aiRecommendation `json:"recommendations"`
	Reasoning       string             `json:"reasoning"`
}

type aiRecommendation struct {
	ProductID               string  `json:"productId"`
	Comparison              string  `json:"comparison"`
	EcoCredits              int     `json:"ecoCreds"`
	CarbonSavings           float64 `json:"carbonSavings"`
	ReasonForRecommendation string  `json:"reasonForRecommendation"`
}

// mapResponse parses the model's free-form text into a recommendation
// response. Models wrap JSON in prose or markdown fences, so the payload is
// the region between the first '{' and the last '}'. A response that does
// not yield a comparison for every alternative is rejected whole; the caller
// then regenerates everything locally rather than serving half-trusted copy.
func mapResponse(text string, alternatives []domain.Product) (*domain.RecommendationResponse, error) {
	payload, err := extractPayload(text)
	if err != nil {
		return nil, err
	}

	if len(payload.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: no recommendations in payload", domain.ErrMalformedAIResponse)
	}

	recommendations := make([]domain.ProductRecommendation, len(alternatives))
	for i, alt := range alternatives {
		if i >= len(payload.Recommendations) {
			return nil, fmt.Errorf("%w: %d recommendations for %d alternatives",
				domain.ErrMalformedAIResponse, len(payload.Recommendations), len(alternatives))
		}

		rec := payload.Recommendations[i]
		if strings.TrimSpace(rec.Comparison) == "" {
			return nil, fmt.Errorf("%w: missing comparison for %q", domain.ErrMalformedAIResponse, alt.Name)
		}

		reason := rec.ReasonForRecommendation
		if reason == "" {
			reason = "More sustainable choice"
		}

		recommendations[i] = domain.ProductRecommendation{
			Product:                 alt,
			Comparison:              rec.Comparison,
			EcoCredits:              clampEcoCredits(rec.EcoCredits),
			CarbonSavings:           maxZero(rec.CarbonSavings),
			ReasonForRecommendation: reason,
		}
	}

	reasoning := payload.Reasoning
	if reasoning == "" {
		reasoning = "These alternatives offer better sustainability profiles."
	}

	return &domain.RecommendationResponse{
		Recommendations: recommendations,
		Reasoning:       reasoning,
	}, nil
}

// extractPayload locates and unmarshals the JSON object inside the text
func extractPayload(text string) (*aiPayload, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in candidate text", domain.ErrMalformedAIResponse)
	}

	var payload aiPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}
	return &payload, nil
}

// clampEcoCredits bounds a model-supplied award to the valid 10-50 range
func clampEcoCredits(credits int) int {
	if credits < 10 {
		return 10
	}
	if credits > 50 {
		return 50
	}
	return credits
}

func maxZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
