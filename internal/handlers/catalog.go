package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	svcs, err := h.catalogService.GetServices(c.Request.Context())
	if err != nil {
		h.log.Error("ListServices failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_services_failed", err)
		return
	}
	RespondOK(c, gin.H{"services": svcs})
}

func (h *CatalogHandler) ListWebsiteServices(c *gin.Context) {
	svcs, err := h.catalogService.GetWebsiteServices(c.Request.Context())
	if err != nil {
		h.log.Error("ListWebsiteServices failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_services_failed", err)
		return
	}
	RespondOK(c, gin.H{"services": svcs})
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetService failed", "error", err, "service_id", id)
		RespondError(c, http.StatusInternalServerError, "load_service_failed", err)
		return
	}
	if svc == nil {
		RespondError(c, http.StatusNotFound, "service_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"service": svc})
}

type serviceRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	Price              int    `json:"price"`
	Duration           int    `json:"duration"`
	PreBufferMinutes   int    `json:"pre_buffer_minutes"`
	PostBufferMinutes  int    `json:"post_buffer_minutes"`
	OverridePreBuffer  bool   `json:"override_pre_buffer"`
	OverridePostBuffer bool   `json:"override_post_buffer"`
	ShowOnWebsite      bool   `json:"show_on_website"`
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	svc, err := h.catalogService.CreateService(c.Request.Context(), services.CreateServiceInput{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Duration:           req.Duration,
		PreBufferMinutes:   req.PreBufferMinutes,
		PostBufferMinutes:  req.PostBufferMinutes,
		OverridePreBuffer:  req.OverridePreBuffer,
		OverridePostBuffer: req.OverridePostBuffer,
		ShowOnWebsite:      req.ShowOnWebsite,
	})
	if err != nil {
		h.log.Error("CreateService failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_service_failed", err)
		return
	}
	RespondOK(c, gin.H{"service": svc})
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	err := h.catalogService.UpdateService(c.Request.Context(), id, services.UpdateServiceInput{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Duration:           req.Duration,
		PreBufferMinutes:   req.PreBufferMinutes,
		PostBufferMinutes:  req.PostBufferMinutes,
		OverridePreBuffer:  req.OverridePreBuffer,
		OverridePostBuffer: req.OverridePostBuffer,
		ShowOnWebsite:      req.ShowOnWebsite,
	})
	if err != nil {
		h.log.Error("UpdateService failed", "error", err, "service_id", id)
		RespondError(c, http.StatusInternalServerError, "update_service_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteService failed", "error", err, "service_id", id)
		RespondError(c, http.StatusInternalServerError, "delete_service_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
