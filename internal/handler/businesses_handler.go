package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/application"
	"LocalLoop-App/internal/domain/model"
)

// defaultNearbyRadiusMeters bounds the map viewport query.
const (
	defaultNearbyRadiusMeters = 5000
	maxNearbyRadiusMeters     = 50000
	defaultNearbyLimit        = 50
)

// BusinessesHandler serves the catalog browsing endpoints.
type BusinessesHandler struct {
	catalogService application.CatalogService
}

// NewBusinessesHandler creates a new BusinessesHandler instance.
func NewBusinessesHandler(catalogService application.CatalogService) *BusinessesHandler {
	return &BusinessesHandler{catalogService: catalogService}
}

// ListBusinesses GET /businesses - the whole approved catalog
func (h *BusinessesHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.catalogService.ListBusinesses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list businesses: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// GetBusiness GET /businesses/:id - one business
func (h *BusinessesHandler) GetBusiness(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Business ID is required",
		})
		return
	}

	business, err := h.catalogService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Failed to get business: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, business)
}

// GetBusinessProducts GET /businesses/:id/products - the business's products
func (h *BusinessesHandler) GetBusinessProducts(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Business ID is required",
		})
		return
	}

	products, err := h.catalogService.GetBusinessProducts(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Failed to get products: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// NearbyBusinesses GET /businesses/nearby - located businesses within a radius
func (h *BusinessesHandler) NearbyBusinesses(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat must be a number between -90 and 90",
		})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lng must be a number between -180 and 180",
		})
		return
	}

	radius := defaultNearbyRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius <= 0 || radius > maxNearbyRadiusMeters {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "radius must be a positive integer up to 50000 meters",
			})
			return
		}
	}

	businesses, err := h.catalogService.NearbyBusinesses(c.Request.Context(),
		model.LatLng{Lat: lat, Lng: lng}, radius, defaultNearbyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to query nearby businesses: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}
