package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetMyReport godoc
// @Summary Get the authenticated user's progress report
// @Description Aggregated quiz and interview statistics with per-category averages and strong/weak areas.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReportSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/me [get]
func (c *ReportController) GetMyReport(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	summary, err := c.reportService.GetSummary(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetMyReport: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build report", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
