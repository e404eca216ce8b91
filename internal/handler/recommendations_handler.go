package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/usecase"
)

// RecommendationsHandler serves the tag-based recommendation endpoint.
type RecommendationsHandler struct {
	recommendationsUseCase usecase.RecommendationsUseCase
}

// NewRecommendationsHandler creates a new RecommendationsHandler instance.
func NewRecommendationsHandler(recommendationsUseCase usecase.RecommendationsUseCase) *RecommendationsHandler {
	return &RecommendationsHandler{recommendationsUseCase: recommendationsUseCase}
}

// GetRecommendations GET /recommendations - top tag matches for a user
func (h *RecommendationsHandler) GetRecommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "user_id parameter is required",
		})
		return
	}

	limit := 0 // the engine applies its default
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	ranked, err := h.recommendationsUseCase.GetRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to compute recommendations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": ranked})
}
