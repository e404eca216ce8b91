package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/domain/service"
	"LocalLoop-App/internal/usecase"
	api "LocalLoop-App/model"
)

// SwipeHandler serves the swipe browsing loop.
type SwipeHandler struct {
	swipeUseCase usecase.SwipeUseCase
}

// NewSwipeHandler creates a new SwipeHandler instance.
func NewSwipeHandler(swipeUseCase usecase.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

// StartSession POST /swipe/sessions - open a browsing session
func (h *SwipeHandler) StartSession(c *gin.Context) {
	var req api.StartSwipeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "user_id is required",
		})
		return
	}

	session, err := h.swipeUseCase.StartSession(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCatalog) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "empty_catalog",
				"message": "No businesses available to browse",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to start session: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, api.StartSwipeSessionResponse{
		SessionID: session.ID,
		Index:     session.Index(),
		Total:     session.Size(),
	})
}

// Swipe POST /swipe/sessions/:id/swipe - apply one gesture
func (h *SwipeHandler) Swipe(c *gin.Context) {
	sessionID := c.Param("id")

	var req api.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	result, err := h.swipeUseCase.Swipe(c.Request.Context(), sessionID, req.Direction, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Swipe session not found",
			})
		case errors.Is(err, service.ErrInvalidDirection):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "direction must be 'like' or 'dislike'",
			})
		case errors.Is(err, service.ErrAnimating):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "swipe_in_flight",
				"message": "Previous swipe has not settled yet",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to apply swipe: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
