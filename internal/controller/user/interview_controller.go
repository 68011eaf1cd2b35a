package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// ListMine godoc
// @Summary List the authenticated user's interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListMine(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	interviews, err := c.interviewService.ListByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListMine: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interviews", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// Create godoc
// @Summary Log a new interview
// @Description Records an interview with its experience details and bumps the user's interview count.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body dto.InterviewCreateDTO true "Interview details"
// @Success 201 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) Create(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Create interview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.UserID(ctx)
	interview, err := c.interviewService.Create(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Create interview: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}

// GetByID godoc
// @Summary Get one of the authenticated user's interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id} [get]
func (c *InterviewController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}

	userID := middleware.UserID(ctx)
	interview, err := c.interviewService.GetByID(userID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found"})
			return
		}
		log.Error().Err(err).Uint64("interviewID", id).Msg("GetByID interview: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interview)
}

// Update godoc
// @Summary Update one of the authenticated user's interviews
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Param interview body dto.InterviewCreateDTO true "Updated interview details"
// @Success 200 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id} [put]
func (c *InterviewController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}

	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.UserID(ctx)
	interview, err := c.interviewService.Update(userID, uint(id), req)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found"})
			return
		}
		log.Error().Err(err).Uint64("interviewID", id).Msg("Update interview: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interview)
}

// Delete godoc
// @Summary Delete one of the authenticated user's interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{id} [delete]
func (c *InterviewController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}

	userID := middleware.UserID(ctx)
	if err := c.interviewService.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found"})
			return
		}
		log.Error().Err(err).Uint64("interviewID", id).Msg("Delete interview: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Interview deleted"})
}

// PublicExperiences godoc
// @Summary Browse shared interview experiences
// @Description Anonymized interview experiences from all users, filterable by company, role and type.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param company query string false "Filter by company (substring match)"
// @Param role query string false "Filter by role (substring match)"
// @Param type query string false "Filter by interview type"
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} dto.PublicExperienceDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/public/experiences [get]
func (c *InterviewController) PublicExperiences(ctx *gin.Context) {
	filter := repository.PublicExperienceFilter{
		Company: ctx.Query("company"),
		Role:    ctx.Query("role"),
		Type:    ctx.Query("type"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	experiences, err := c.interviewService.ListPublic(filter)
	if err != nil {
		log.Error().Err(err).Msg("PublicExperiences: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve experiences", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, experiences)
}
