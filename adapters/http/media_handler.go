package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/application/service"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

const maxUploadBytes = 10 << 20

type MediaHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(uploader service.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, logger: log}
}

// Upload accepts a multipart "file" field and returns the stored URL and the
// key needed to remove it later.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("a 'file' field is required", err))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.NewInvalidInput("file exceeds the 10MB limit", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("could not read uploaded file", err))
		return
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.Request.Context(), file, "profile-images")
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type removeUploadRequest struct {
	Key string `json:"key" binding:"required"`
}

func (h *MediaHandler) Remove(c *gin.Context) {
	var req removeUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("a 'key' field is required", err))
		return
	}

	if err := h.uploader.Delete(c.Request.Context(), req.Key); err != nil {
		// A missing asset is not worth surfacing to the caller; the
		// outcome they asked for already holds.
		h.logger.Warn("media delete failed", zap.String("key", req.Key), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
