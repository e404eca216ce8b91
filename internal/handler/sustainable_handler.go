package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/usecase"
)

// SustainableHandler serves the sustainability listing view.
type SustainableHandler struct {
	sustainableUseCase usecase.SustainableUseCase
}

// NewSustainableHandler creates a new SustainableHandler instance.
func NewSustainableHandler(sustainableUseCase usecase.SustainableUseCase) *SustainableHandler {
	return &SustainableHandler{sustainableUseCase: sustainableUseCase}
}

// GetSustainable GET /sustainable - the catalog partitioned into buckets
func (h *SustainableHandler) GetSustainable(c *gin.Context) {
	buckets, err := h.sustainableUseCase.GetBuckets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build sustainable view: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}
