package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
)

type QuizController struct {
	catalogService    service.QuizCatalogService
	submissionService service.QuizSubmissionService
}

func NewQuizController(catalogService service.QuizCatalogService, submissionService service.QuizSubmissionService) *QuizController {
	return &QuizController{
		catalogService:    catalogService,
		submissionService: submissionService,
	}
}

// GetAllQuizzes godoc
// @Summary List available quizzes
// @Description Lists active quizzes, optionally filtered by category and difficulty. Questions are not included.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty (Easy, Medium, Hard)"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	category := ctx.Query("category")
	difficulty := ctx.Query("difficulty")

	quizzes, err := c.catalogService.GetAllQuizzes(category, difficulty)
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get a quiz with its questions
// @Description Returns the quiz and its questions for taking. Correct answers and explanations are never included.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	quiz, err := c.catalogService.GetQuizDetails(uint(quizID))
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuizDetails: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Scores the submission, records the attempt and updates the user's running average. Resubmitting the same quiz records a new independent attempt.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.QuizSubmitDTO true "Selected answers"
// @Success 200 {object} dto.QuizSubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or answer referencing an unknown question"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /quizzes/{quiz_id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.UserID(ctx)
	log.Info().Uint("userID", userID).Uint64("quizID", quizID).Int("answerCount", len(req.Answers)).Msg("Received quiz submission")

	result, err := c.submissionService.SubmitQuiz(userID, uint(quizID), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		case errors.Is(err, service.ErrNoAnswers), errors.Is(err, service.ErrQuizHasNoQuestions), errors.Is(err, service.ErrQuestionNotInQuiz):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission", Details: []string{err.Error()}})
		default:
			log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuiz: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit quiz", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyResults godoc
// @Summary List the authenticated user's quiz results
// @Description Returns all attempts newest first, each with its per-question answer breakdown.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/results/me [get]
func (c *QuizController) GetMyResults(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	results, err := c.submissionService.GetUserResults(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetMyResults: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
