package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type ReviewHandler struct {
	log           *logger.Logger
	reviewService services.ReviewService
}

func NewReviewHandler(log *logger.Logger, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		log:           log.With("handler", "ReviewHandler"),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviews(c.Request.Context())
	if err != nil {
		h.log.Error("ListReviews failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_reviews_failed", err)
		return
	}
	RespondOK(c, gin.H{"reviews": reviews})
}

type addReviewRequest struct {
	Name       string     `json:"name" binding:"required"`
	Comment    string     `json:"comment" binding:"required"`
	IsApproved bool       `json:"is_approved"`
	ReviewDate *time.Time `json:"review_date"`
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	input := services.AddReviewInput{
		Name:       req.Name,
		Comment:    req.Comment,
		IsApproved: req.IsApproved,
	}
	if req.ReviewDate != nil {
		input.ReviewDate = *req.ReviewDate
	}
	review, err := h.reviewService.AddReview(c.Request.Context(), input)
	if err != nil {
		h.log.Error("AddReview failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "add_review_failed", err)
		return
	}
	RespondOK(c, gin.H{"review": review})
}

type updateReviewRequest struct {
	Name       *string    `json:"name"`
	Comment    *string    `json:"comment"`
	IsApproved *bool      `json:"is_approved"`
	ReviewDate *time.Time `json:"review_date"`
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id := c.Param("id")
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	input := services.UpdateReviewInput{
		Name:       req.Name,
		Comment:    req.Comment,
		IsApproved: req.IsApproved,
		ReviewDate: req.ReviewDate,
	}
	if err := h.reviewService.UpdateReview(c.Request.Context(), id, input); err != nil {
		h.log.Error("UpdateReview failed", "error", err, "review_id", id)
		RespondError(c, http.StatusInternalServerError, "update_review_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")
	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteReview failed", "error", err, "review_id", id)
		RespondError(c, http.StatusInternalServerError, "delete_review_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
