package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecoswap/recommender/internal/domain"
	"github.com/ecoswap/recommender/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     domain.CatalogRepository
	recommender *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.CatalogRepository, recommender *usecase.RecommendationService) *Handler {
	return &Handler{
		catalog:     catalog,
		recommender: recommender,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecoswap-recommender",
		"version": "1.0.0",
	})
}

// ListProducts returns catalog products matching the query-string filters
func (h *Handler) ListProducts(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.catalog.List(c.Request.Context(), filters, domain.SortOption(c.Query("sort")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns a single product by ID
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// searchRequest is the body for recommendation lookups
type searchRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// SearchAlternatives runs the two-stage recommendation pipeline for one
// product against the full catalog. An empty alternatives list means no
// sustainable alternative exists; it is still a 200.
func (h *Handler) SearchAlternatives(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	query, catalog, ok := h.loadQueryAndCatalog(c, req.ProductID)
	if !ok {
		return
	}

	alternatives, analysis, err := h.recommender.DetailedRecommendations(query, catalog)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	if alternatives == nil {
		alternatives = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"alternatives": alternatives,
		"analysis":     analysis,
	})
}

// generateRequest is the body for copy generation. AlternativeIDs may be
// omitted, in which case the pipeline chooses the alternatives.
type generateRequest struct {
	ProductID      string   `json:"productId" binding:"required"`
	AlternativeIDs []string `json:"alternativeIds"`
}

// GenerateRecommendations produces recommendation copy for a product's
// sustainable alternatives. Generator failures degrade to local copy, so the
// endpoint fails only when the product itself cannot be resolved.
func (h *Handler) GenerateRecommendations(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	query, catalog, ok := h.loadQueryAndCatalog(c, req.ProductID)
	if !ok {
		return
	}

	var alternatives []domain.Product
	if len(req.AlternativeIDs) > 0 {
		for _, id := range req.AlternativeIDs {
			product, err := h.catalog.GetByID(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "alternative not found: " + id})
				return
			}
			alternatives = append(alternatives, *product)
		}
	} else {
		var err error
		alternatives, err = h.recommender.FindSustainableAlternatives(query, catalog)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
			return
		}
	}

	if len(alternatives) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"recommendations": []domain.ProductRecommendation{},
			"reasoning":       "No sustainable alternatives were found for this product.",
		})
		return
	}

	response, err := h.recommender.GenerateRecommendations(c.Request.Context(), &domain.RecommendationRequest{
		OriginalProduct: *query,
		Alternatives:    alternatives,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// loadQueryAndCatalog resolves the query product and the full candidate
// catalog, writing the error response itself when either fails
func (h *Handler) loadQueryAndCatalog(c *gin.Context, productID string) (*domain.Product, []domain.Product, bool) {
	query, err := h.catalog.GetByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		}
		return nil, nil, false
	}

	catalog, err := h.catalog.List(c.Request.Context(), nil, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return nil, nil, false
	}

	return query, catalog, true
}

// parseFilters builds ProductFilters from query-string parameters
func parseFilters(c *gin.Context) (*domain.ProductFilters, error) {
	filters := &domain.ProductFilters{
		Search: c.Query("search"),
	}

	for _, raw := range c.QueryArray("category") {
		category := domain.ProductCategory(raw)
		if !category.IsValid() {
			return nil, errors.New("unknown category: " + raw)
		}
		filters.Categories = append(filters.Categories, category)
	}

	if raw := c.Query("tags"); raw != "" {
		filters.Tags = strings.Split(raw, ",")
	}

	if raw := c.Query("organic"); raw != "" {
		organic, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("organic must be a boolean")
		}
		filters.IsOrganic = &organic
	}

	if raw := c.Query("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("inStock must be a boolean")
		}
		filters.InStock = &inStock
	}

	priceMin, err := parseFloatQuery(c, "priceMin")
	if err != nil {
		return nil, err
	}
	priceMax, err := parseFloatQuery(c, "priceMax")
	if err != nil {
		return nil, err
	}
	if priceMin > 0 || priceMax > 0 {
		filters.PriceRange = &domain.PriceRange{Min: priceMin, Max: priceMax}
	}

	scoreMin, err := parseFloatQuery(c, "scoreMin")
	if err != nil {
		return nil, err
	}
	scoreMax, err := parseFloatQuery(c, "scoreMax")
	if err != nil {
		return nil, err
	}
	if scoreMin > 0 || scoreMax > 0 {
		filters.SustainabilityScore = &domain.ScoreRange{Min: int(scoreMin), Max: int(scoreMax)}
	}

	return filters, nil
}

func parseFloatQuery(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return value, nil
}
