package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecoswap/recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *domain.RecommendationRequest {
	return &domain.RecommendationRequest{
		OriginalProduct: domain.Product{
			ID: "prod-002", Name: "Conventional Bananas",
			Category:        domain.CategoryProduce,
			CarbonIntensity: 2.1, SustainabilityScore: 45,
		},
		Alternatives: []domain.Product{
			{
				ID: "prod-003", Name: "Local Organic Spinach",
				Category:        domain.CategoryProduce,
				CarbonIntensity: 0.3, IsOrganic: true, SustainabilityScore: 95,
			},
		},
	}
}

// candidateResponse wraps payload text in the Gemini REST response envelope
func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", "gemini-pro", 10*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.Equal(t, "gemini-pro", client.model)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("key", "https://api.example.com", "gemini-pro", 0)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("key", "https://api.example.com", "gemini-pro", 0)

	assert.False(t, client.debug)
	client.SetDebug(true)
	assert.True(t, client.debug)
	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	client := NewClient("key", "https://api.example.com", "gemini-pro", 0)
	ctx := context.Background()

	_, err := client.Generate(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = client.Generate(ctx, &domain.RecommendationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGenerate_Success(t *testing.T) {
	payload := `{
		"recommendations": [
			{
				"productId": "prod-003",
				"comparison": "Spinach has a far smaller footprint than imported bananas.",
				"ecoCreds": 45,
				"carbonSavings": 1.8,
				"reasonForRecommendation": "Locally grown and organic"
			}
		],
		"reasoning": "Lower carbon and organic certification."
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Conventional Bananas")
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Local Organic Spinach")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(candidateResponse("Here you go:\n" + payload))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gemini-pro", 0)
	result, err := client.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "prod-003", result.Recommendations[0].ID)
	assert.Equal(t, 45, result.Recommendations[0].EcoCredits)
	assert.Equal(t, 1.8, result.Recommendations[0].CarbonSavings)
	assert.Equal(t, "Locally grown and organic", result.Recommendations[0].ReasonForRecommendation)
	assert.Equal(t, "Lower carbon and organic certification.", result.Reasoning)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	result, err := client.Generate(context.Background(), testRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrGeminiUnavailable)
}

func TestGenerate_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, "gemini-pro", 0)
	_, err := client.Generate(context.Background(), testRequest())

	assert.ErrorIs(t, err, domain.ErrGeminiUnavailable)
}

func TestGenerate_InvalidJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not valid json"))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	result, err := client.Generate(context.Background(), testRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedAIResponse)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	_, err := client.Generate(context.Background(), testRequest())

	assert.ErrorIs(t, err, domain.ErrMalformedAIResponse)
}

func TestGenerate_NoJSONInCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(candidateResponse("Sorry, I cannot help with that."))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	_, err := client.Generate(context.Background(), testRequest())

	assert.ErrorIs(t, err, domain.ErrMalformedAIResponse)
}

func TestGenerate_NoRetryOnFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	_, err := client.Generate(context.Background(), testRequest())

	assert.Error(t, err)
	assert.Equal(t, 1, attempts) // Single outbound request per lookup
}

func TestGenerate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, "gemini-pro", 0)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result, err := client.Generate(ctx, testRequest())

	assert.Nil(t, result)
	assert.Error(t, err)
}
