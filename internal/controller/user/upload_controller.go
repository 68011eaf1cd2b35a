package user

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/storage"
	"gorm.io/gorm"
)

// UploadController handles resume upload, download and removal against S3.
type UploadController struct {
	store    *storage.S3
	userRepo repository.UserRepository
}

func NewUploadController(store *storage.S3, userRepo repository.UserRepository) *UploadController {
	return &UploadController{store: store, userRepo: userRepo}
}

// UploadResume godoc
// @Summary Upload or replace the authenticated user's resume
// @Description Accepts PDF, DOC or DOCX up to 5MB as multipart field "resume". A previous resume is replaced.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file, bad extension or file too large"
// @Failure 500 {object} dto.ErrorResponse "Upload failed"
// @Router /upload/resume [post]
func (c *UploadController) UploadResume(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Resume file is required (multipart field 'resume')"})
		return
	}
	if fileHeader.Size > storage.MaxResumeSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Resume must be 5MB or smaller"})
		return
	}
	if !storage.ValidateResumeFilename(fileHeader.Filename) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Only PDF, DOC and DOCX resumes are accepted"})
		return
	}

	user, err := c.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("UploadResume: Failed to load user")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to upload resume", Details: []string{err.Error()}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read uploaded file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	key := storage.ResumeKey(userID, uuid.NewString(), fileHeader.Filename)
	contentType := storage.ContentTypeForFilename(fileHeader.Filename)
	if err := c.store.Upload(ctx.Request.Context(), key, contentType, file, fileHeader.Size); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("key", key).Msg("UploadResume: S3 upload failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to upload resume", Details: []string{err.Error()}})
		return
	}

	// Best effort cleanup of the replaced object. The new key is already
	// durable at this point.
	if user.ResumeKey != "" && user.ResumeKey != key {
		if err := c.store.DeleteObject(ctx.Request.Context(), user.ResumeKey); err != nil {
			log.Warn().Err(err).Str("key", user.ResumeKey).Msg("UploadResume: Failed to delete previous resume object")
		}
	}

	if err := c.userRepo.UpdateResumeKey(userID, key); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UploadResume: Failed to persist resume key")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save resume reference", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", userID).Str("key", key).Int64("size", fileHeader.Size).Msg("Resume uploaded")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resume uploaded successfully"})
}

// DownloadResume godoc
// @Summary Download the authenticated user's resume
// @Tags Upload
// @Produce application/octet-stream
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "No resume uploaded"
// @Failure 500 {object} dto.ErrorResponse "Download failed"
// @Router /upload/resume [get]
func (c *UploadController) DownloadResume(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	user, err := c.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load user", Details: []string{err.Error()}})
		return
	}
	if user.ResumeKey == "" {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No resume uploaded"})
		return
	}

	body, contentType, contentLength, err := c.store.GetObjectStream(ctx.Request.Context(), user.ResumeKey)
	if err != nil {
		log.Error().Err(err).Str("key", user.ResumeKey).Msg("DownloadResume: S3 get failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to download resume", Details: []string{err.Error()}})
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = storage.ContentTypeForFilename(user.ResumeKey)
	}
	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", "resume"+path.Ext(user.ResumeKey)),
	}
	ctx.DataFromReader(http.StatusOK, contentLength, contentType, body, headers)
}

// DeleteResume godoc
// @Summary Delete the authenticated user's resume
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No resume uploaded"
// @Failure 500 {object} dto.ErrorResponse "Deletion failed"
// @Router /upload/resume [delete]
func (c *UploadController) DeleteResume(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	user, err := c.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load user", Details: []string{err.Error()}})
		return
	}
	if user.ResumeKey == "" {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No resume uploaded"})
		return
	}

	if err := c.store.DeleteObject(ctx.Request.Context(), user.ResumeKey); err != nil {
		log.Error().Err(err).Str("key", user.ResumeKey).Msg("DeleteResume: S3 delete failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete resume", Details: []string{err.Error()}})
		return
	}
	if err := c.userRepo.UpdateResumeKey(userID, ""); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("DeleteResume: Failed to clear resume key")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to clear resume reference", Details: []string{err.Error()}})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resume deleted"})
}
