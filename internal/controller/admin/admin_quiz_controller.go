package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Description Creates a quiz and its question bank in one request. Each question must have at least two options and a valid correct answer index.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz definition including questions"
// @Success 201 {object} dto.QuizAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Str("title", req.Title).Str("category", req.Category).Int("questionCount", len(req.Questions)).Msg("Admin CreateQuiz: Received request")

	quiz, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}
