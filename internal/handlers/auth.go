package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/requestdata"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
		userService: userService,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := h.authService.RegisterUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.log.Warn("Register failed", "error", err)
		RespondError(c, http.StatusBadRequest, "register_failed", err)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, refreshToken, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("Login failed", "error", err)
		RespondError(c, http.StatusUnauthorized, "login_failed", err)
		return
	}
	RespondOK(c, gin.H{"access_token": accessToken, "refresh_token": refreshToken})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, refreshToken, err := h.authService.RefreshUser(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.log.Warn("Refresh failed", "error", err)
		RespondError(c, http.StatusUnauthorized, "refresh_failed", err)
		return
	}
	RespondOK(c, gin.H{"access_token": accessToken, "refresh_token": refreshToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.LogoutUser(c.Request.Context()); err != nil {
		h.log.Warn("Logout failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "logout_failed", err)
		return
	}
	RespondOK(c, gin.H{"logged_out": true})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Error("GetMe failed", "error", err, "user_id", rd.UserID)
		RespondError(c, http.StatusInternalServerError, "load_user_failed", err)
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"user": user})
}
