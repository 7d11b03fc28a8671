package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product ID is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidProduct is returned when a query product violates the contract
	// (nil, missing ID, or missing name)
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGeminiUnavailable is returned when the Gemini API request fails
	ErrGeminiUnavailable = errors.New("gemini API request failed")

	// ErrMalformedAIResponse is returned when the Gemini response does not
	// contain the expected recommendation structure
	ErrMalformedAIResponse = errors.New("malformed AI response")
)
