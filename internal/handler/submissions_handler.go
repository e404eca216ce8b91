package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/domain/model"
	"LocalLoop-App/internal/usecase"
	api "LocalLoop-App/model"
)

// SubmissionsHandler serves the submission, review and claiming workflow.
type SubmissionsHandler struct {
	submissionsUseCase usecase.SubmissionsUseCase
	geocodeUseCase     usecase.CatalogGeocodeUseCase
}

// NewSubmissionsHandler creates a new SubmissionsHandler instance.
func NewSubmissionsHandler(submissionsUseCase usecase.SubmissionsUseCase, geocodeUseCase usecase.CatalogGeocodeUseCase) *SubmissionsHandler {
	return &SubmissionsHandler{
		submissionsUseCase: submissionsUseCase,
		geocodeUseCase:     geocodeUseCase,
	}
}

// Submit POST /submissions - record a new pending listing
func (h *SubmissionsHandler) Submit(c *gin.Context) {
	var req api.SubmitBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}
	if err := h.validateSubmitRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err.Error(),
		})
		return
	}

	user := CurrentUser(c)
	submission := &model.BusinessSubmission{
		SubmitterID: user.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Tags:        req.Tags,
	}
	if req.Website != "" {
		submission.Website = &req.Website
	}

	stored, err := h.submissionsUseCase.Submit(c.Request.Context(), submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to store submission: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, api.SubmitBusinessResponse{
		Status:       "pending",
		Message:      "Submission received and awaiting review",
		SubmissionID: stored.ID,
	})
}

// validateSubmitRequest checks the fields an empty catalog form would miss.
func (h *SubmissionsHandler) validateSubmitRequest(req *api.SubmitBusinessRequest) error {
	if req.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Category == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if req.Address == "" {
		return &ValidationError{Field: "address", Message: "address is required"}
	}
	return nil
}

// ListPending GET /admin/submissions - the review queue
func (h *SubmissionsHandler) ListPending(c *gin.Context) {
	submissions, err := h.submissionsUseCase.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list submissions: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// Approve POST /admin/submissions/:id/approve - publish a submission
func (h *SubmissionsHandler) Approve(c *gin.Context) {
	user := CurrentUser(c)
	business, err := h.submissionsUseCase.Approve(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmissionReviewed) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "already_reviewed",
				"message": "Submission has already been reviewed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to approve submission: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, business)
}

// Reject POST /admin/submissions/:id/reject - record a rejection
func (h *SubmissionsHandler) Reject(c *gin.Context) {
	user := CurrentUser(c)
	err := h.submissionsUseCase.Reject(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmissionReviewed) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "already_reviewed",
				"message": "Submission has already been reviewed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to reject submission: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// Claim POST /businesses/:id/claim - claim an approved listing
func (h *SubmissionsHandler) Claim(c *gin.Context) {
	user := CurrentUser(c)
	err := h.submissionsUseCase.Claim(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyClaimed) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "already_claimed",
				"message": "Business has already been claimed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to claim business: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "claimed"})
}

// RefreshGeocode POST /admin/geocode/refresh - batch geocode the catalog
func (h *SubmissionsHandler) RefreshGeocode(c *gin.Context) {
	summary, err := h.geocodeUseCase.RefreshLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to refresh locations: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ValidationError represents a request validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
