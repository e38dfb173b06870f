package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type SettingsHandler struct {
	log             *logger.Logger
	settingsService services.SettingsService
}

func NewSettingsHandler(log *logger.Logger, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		log:             log.With("handler", "SettingsHandler"),
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		h.log.Error("GetSettings failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_settings_failed", err)
		return
	}
	RespondOK(c, gin.H{"settings": settings})
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req services.GeneralSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.settingsService.SaveSettings(c.Request.Context(), req); err != nil {
		h.log.Error("SaveSettings failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "save_settings_failed", err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}
