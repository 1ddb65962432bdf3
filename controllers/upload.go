package controllers

import (
	"errors"
	"net/http"
	"strings"

	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 8 << 20

type UploadController struct {
	// Uploader is nil when no image storage is configured.
	Uploader services.ImageUploader
	Logger   *zap.Logger
}

type RemoveUploadInput struct {
	Path string `json:"path" binding:"required"`
}

func (uc *UploadController) Upload(c *gin.Context) {
	folder := c.Param("folder")
	if !services.ValidFolder(folder) {
		utils.RespondWithError(c, http.StatusBadRequest, "Folder must be one of: "+strings.Join(services.UploadFolders, ", "))
		return
	}
	if uc.Uploader == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Image storage not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing file")
		return
	}
	if header.Size > maxUploadBytes {
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		utils.RespondWithError(c, http.StatusBadRequest, "Only images can be uploaded")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Unreadable file")
		return
	}
	defer file.Close()

	res, err := uc.Uploader.Upload(c.Request.Context(), folder, header.Filename, file)
	if err != nil {
		uc.Logger.Error("image upload failed", zap.String("folder", folder), zap.Error(err))
		utils.RespondWithError(c, http.StatusBadGateway, "Upload failed")
		return
	}
	uc.Logger.Info("image uploaded", zap.String("path", res.Path))
	c.JSON(http.StatusCreated, res)
}

func (uc *UploadController) Remove(c *gin.Context) {
	var input RemoveUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if uc.Uploader == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Image storage not configured")
		return
	}
	if err := uc.Uploader.Remove(c.Request.Context(), input.Path); err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Image storage not configured")
			return
		}
		uc.Logger.Error("image removal failed", zap.String("path", input.Path), zap.Error(err))
		utils.RespondWithError(c, http.StatusBadGateway, "Removal failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed"})
}
