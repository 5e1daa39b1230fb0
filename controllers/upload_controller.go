package controllers

import (
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/Chekwachibuike/ecommerce/aws"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxUploadBytes = 10 << 20
	presignExpiry  = 15 * time.Minute
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadController handles image uploads to S3.
type UploadController struct {
	uploader *aws.S3Uploader
}

func NewUploadController(uploader *aws.S3Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// PresignUploadRequest asks for a direct-to-bucket upload URL.
type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// UploadImage stores a multipart file under images/ and returns its URL.
func (uc *UploadController) UploadImage(c *gin.Context) {
	if uc.uploader == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Uploads are not configured", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "A file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.Error(c, http.StatusBadRequest, "File exceeds the 10MB limit", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		utils.Error(c, http.StatusBadRequest, "Unsupported file type", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Error("Failed to open uploaded file", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	url, err := uc.uploader.Upload(c.Request.Context(), "images", fileHeader.Filename, contentType, file)
	if err != nil {
		zap.L().Error("Failed to upload file", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to upload file", nil)
		return
	}

	utils.Success(c, http.StatusCreated, "File uploaded successfully", gin.H{"url": url})
}

// PresignUpload returns a short-lived URL a client can PUT the file to
// directly, avoiding the proxy path through this server. The returned key
// identifies the object once the upload completes.
func (uc *UploadController) PresignUpload(c *gin.Context) {
	if uc.uploader == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Uploads are not configured", nil)
		return
	}

	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	if !allowedImageTypes[req.ContentType] {
		utils.Error(c, http.StatusBadRequest, "Unsupported file type", nil)
		return
	}

	key := fmt.Sprintf("images/%s%s", uuid.NewString(), path.Ext(req.FileName))
	url, err := uc.uploader.PresignPut(c.Request.Context(), key, presignExpiry)
	if err != nil {
		zap.L().Error("Failed to presign upload", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to presign upload", nil)
		return
	}

	utils.Success(c, http.StatusOK, "Upload URL generated successfully", gin.H{"url": url, "key": key})
}
