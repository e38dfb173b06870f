package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/services"
)

type ImageHandler struct {
	log          *logger.Logger
	imageService services.ImageService
}

func NewImageHandler(log *logger.Logger, imageService services.ImageService) *ImageHandler {
	return &ImageHandler{
		log:          log.With("handler", "ImageHandler"),
		imageService: imageService,
	}
}

func (h *ImageHandler) ListImages(c *gin.Context) {
	images, err := h.imageService.GetImages(c.Request.Context())
	if err != nil {
		h.log.Error("ListImages failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_images_failed", err)
		return
	}
	RespondOK(c, gin.H{"images": images})
}

type addImageRequest struct {
	URL string `json:"url" binding:"required"`
}

func (h *ImageHandler) AddImage(c *gin.Context) {
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	image, err := h.imageService.AddImage(c.Request.Context(), req.URL)
	if err != nil {
		h.log.Error("AddImage failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "add_image_failed", err)
		return
	}
	RespondOK(c, gin.H{"image": image})
}

func (h *ImageHandler) GetImageURL(c *gin.Context) {
	id := c.Param("id")
	url, err := h.imageService.GetImageURL(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetImageURL failed", "error", err, "image_id", id)
		RespondError(c, http.StatusNotFound, "image_not_found", err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.imageService.DeleteImage(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteImage failed", "error", err, "image_id", id)
		RespondError(c, http.StatusInternalServerError, "delete_image_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
