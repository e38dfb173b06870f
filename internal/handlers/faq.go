package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type FAQHandler struct {
	log        *logger.Logger
	faqService services.FAQService
}

func NewFAQHandler(log *logger.Logger, faqService services.FAQService) *FAQHandler {
	return &FAQHandler{
		log:        log.With("handler", "FAQHandler"),
		faqService: faqService,
	}
}

func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.faqService.GetFAQs(c.Request.Context())
	if err != nil {
		h.log.Error("ListFAQs failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_faqs_failed", err)
		return
	}
	RespondOK(c, gin.H{"faqs": faqs})
}

type addFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (h *FAQHandler) AddFAQ(c *gin.Context) {
	var req addFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	faq, err := h.faqService.AddFAQ(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		h.log.Error("AddFAQ failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "add_faq_failed", err)
		return
	}
	RespondOK(c, gin.H{"faq": faq})
}

type updateFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id := c.Param("id")
	var req updateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.faqService.UpdateFAQ(c.Request.Context(), id, req.Question, req.Answer); err != nil {
		h.log.Error("UpdateFAQ failed", "error", err, "faq_id", id)
		RespondError(c, http.StatusInternalServerError, "update_faq_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

type deleteFAQsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (h *FAQHandler) DeleteFAQs(c *gin.Context) {
	var req deleteFAQsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.faqService.DeleteFAQs(c.Request.Context(), req.IDs); err != nil {
		h.log.Error("DeleteFAQs failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "delete_faqs_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type reorderFAQRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// ReorderFAQ swaps the FAQ with its neighbor. Failures come back to the
// client rather than disappearing into a fire-and-forget call.
func (h *FAQHandler) ReorderFAQ(c *gin.Context) {
	id := c.Param("id")
	var req reorderFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	direction := services.MoveDirection(req.Direction)
	if err := h.faqService.ReorderFAQ(c.Request.Context(), id, direction); err != nil {
		h.log.Error("ReorderFAQ failed", "error", err, "faq_id", id)
		RespondError(c, http.StatusInternalServerError, "reorder_faq_failed", err)
		return
	}
	RespondOK(c, gin.H{"reordered": true})
}
