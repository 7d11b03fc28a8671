package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ecoswap/recommender/internal/domain"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 1 << 20 // 1 MiB is far beyond any expected completion

// Client calls the Gemini generateContent REST API to produce recommendation
// copy. One outbound request per lookup; failures are returned to the caller,
// which degrades to local copy.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Free-tier Gemini allows 60 requests per minute
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[GEMINI] "+format, args...)
	}
}

// generateContentRequest is the Gemini REST request body
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse is the subset of the Gemini REST response we read
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate asks Gemini for comparison copy covering every alternative in the
// request. There is no retry loop: the caller falls back to local copy on
// any failure, so a second attempt only adds latency.
func (c *Client) Generate(ctx context.Context, request *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	if request == nil || len(request.Alternatives) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	prompt := buildPrompt(&request.OriginalProduct, request.Alternatives)
	c.debugLog("prompt for %q (%d alternatives)", request.OriginalProduct.Name, len(request.Alternatives))

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	params := url.Values{}
	params.Add("key", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "EcoSwapRecommender/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeminiUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrGeminiUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.debugLog("API error - status: %d, body: %s", resp.StatusCode, respBody)
		return nil, fmt.Errorf("%w: status %d", domain.ErrGeminiUnavailable, resp.StatusCode)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}

	text := firstCandidateText(&genResp)
	if text == "" {
		return nil, fmt.Errorf("%w: empty candidate text", domain.ErrMalformedAIResponse)
	}
	c.debugLog("candidate text: %d bytes", len(text))

	return mapResponse(text, request.Alternatives)
}

// firstCandidateText extracts the generated text from the first candidate
func firstCandidateText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
