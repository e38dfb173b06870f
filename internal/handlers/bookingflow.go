package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type BookingFlowHandler struct {
	log         *logger.Logger
	flowService services.BookingFlowService
}

func NewBookingFlowHandler(log *logger.Logger, flowService services.BookingFlowService) *BookingFlowHandler {
	return &BookingFlowHandler{
		log:         log.With("handler", "BookingFlowHandler"),
		flowService: flowService,
	}
}

// GetFlow returns the assembled graph the editor renders: questions with
// their options, options with their resolved services.
func (h *BookingFlowHandler) GetFlow(c *gin.Context) {
	flow, err := h.flowService.GetQuestionsWithOptions(c.Request.Context())
	if err != nil {
		h.log.Error("GetFlow failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_flow_failed", err)
		return
	}
	RespondOK(c, gin.H{"questions": flow})
}

func (h *BookingFlowHandler) ListQuestions(c *gin.Context) {
	questions, err := h.flowService.GetQuestions(c.Request.Context())
	if err != nil {
		h.log.Error("ListQuestions failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_questions_failed", err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

type createQuestionRequest struct {
	ID    string `json:"id" binding:"required"`
	Text  string `json:"text" binding:"required"`
	Order *int   `json:"order"`
}

func (h *BookingFlowHandler) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := h.flowService.CreateQuestion(c.Request.Context(), req.ID, req.Text, req.Order)
	if err != nil {
		h.log.Error("CreateQuestion failed", "error", err, "question_id", req.ID)
		RespondError(c, http.StatusInternalServerError, "create_question_failed", err)
		return
	}
	RespondOK(c, gin.H{"question": question})
}

type updateQuestionRequest struct {
	Text  *string `json:"text"`
	Order *int    `json:"order"`
}

func (h *BookingFlowHandler) UpdateQuestion(c *gin.Context) {
	id := c.Param("id")
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	patch := services.QuestionPatch{Text: req.Text, Order: req.Order}
	if err := h.flowService.UpdateQuestion(c.Request.Context(), id, patch); err != nil {
		h.log.Error("UpdateQuestion failed", "error", err, "question_id", id)
		RespondError(c, http.StatusInternalServerError, "update_question_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *BookingFlowHandler) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if err := h.flowService.DeleteQuestion(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteQuestion failed", "error", err, "question_id", id)
		RespondError(c, http.StatusInternalServerError, "delete_question_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type createOptionRequest struct {
	ID             string  `json:"id" binding:"required"`
	QuestionID     string  `json:"question_id" binding:"required"`
	OptionTitle    string  `json:"option_title" binding:"required"`
	Description    string  `json:"description"`
	Tag            string  `json:"tag"`
	NextQuestionID *string `json:"next_question_id"`
	Order          *int    `json:"order"`
}

func (h *BookingFlowHandler) CreateOption(c *gin.Context) {
	var req createOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	option, err := h.flowService.CreateOption(c.Request.Context(), services.CreateOptionInput{
		ID:             req.ID,
		QuestionID:     req.QuestionID,
		OptionTitle:    req.OptionTitle,
		Description:    req.Description,
		Tag:            req.Tag,
		NextQuestionID: req.NextQuestionID,
		Order:          req.Order,
	})
	if err != nil {
		h.log.Error("CreateOption failed", "error", err, "option_id", req.ID)
		RespondError(c, http.StatusInternalServerError, "create_option_failed", err)
		return
	}
	RespondOK(c, gin.H{"option": option})
}

type updateOptionRequest struct {
	OptionTitle    *string  `json:"option_title"`
	Description    *string  `json:"description"`
	Tag            *string  `json:"tag"`
	NextQuestionID *string  `json:"next_question_id"`
	Order          *int     `json:"order"`
	Services       []string `json:"services"`
}

func (h *BookingFlowHandler) UpdateOption(c *gin.Context) {
	id := c.Param("id")
	var req updateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	patch := services.OptionPatch{
		OptionTitle:    req.OptionTitle,
		Description:    req.Description,
		Tag:            req.Tag,
		NextQuestionID: req.NextQuestionID,
		Order:          req.Order,
		Services:       req.Services,
	}
	if err := h.flowService.UpdateOption(c.Request.Context(), id, patch); err != nil {
		h.log.Error("UpdateOption failed", "error", err, "option_id", id)
		RespondError(c, http.StatusInternalServerError, "update_option_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *BookingFlowHandler) DeleteOption(c *gin.Context) {
	id := c.Param("id")
	if err := h.flowService.DeleteOption(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteOption failed", "error", err, "option_id", id)
		RespondError(c, http.StatusInternalServerError, "delete_option_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *BookingFlowHandler) ListOptionServices(c *gin.Context) {
	id := c.Param("id")
	links, err := h.flowService.GetServicesForOption(c.Request.Context(), id)
	if err != nil {
		h.log.Error("ListOptionServices failed", "error", err, "option_id", id)
		RespondError(c, http.StatusInternalServerError, "load_option_services_failed", err)
		return
	}
	RespondOK(c, gin.H{"links": links})
}

type addOptionServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

func (h *BookingFlowHandler) AddOptionService(c *gin.Context) {
	id := c.Param("id")
	var req addOptionServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.flowService.AddServiceToOption(c.Request.Context(), id, req.ServiceID); err != nil {
		h.log.Error("AddOptionService failed", "error", err, "option_id", id)
		RespondError(c, http.StatusInternalServerError, "add_option_service_failed", err)
		return
	}
	RespondOK(c, gin.H{"added": true})
}

func (h *BookingFlowHandler) RemoveOptionService(c *gin.Context) {
	id := c.Param("id")
	serviceID := c.Param("serviceID")
	if err := h.flowService.RemoveServiceFromOption(c.Request.Context(), id, serviceID); err != nil {
		h.log.Error("RemoveOptionService failed", "error", err, "option_id", id)
		RespondError(c, http.StatusInternalServerError, "remove_option_service_failed", err)
		return
	}
	RespondOK(c, gin.H{"removed": true})
}
