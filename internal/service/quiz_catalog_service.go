package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

// QuizCatalogService serves the read side of the quiz catalog. Everything
// it returns is client-bound, so correct answers and explanations are
// stripped before anything leaves this layer.
type QuizCatalogService interface {
	GetAllQuizzes(category, difficulty string) ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error)
}

type quizCatalogService struct {
	quizRepo repository.QuizRepository
}

func NewQuizCatalogService(quizRepo repository.QuizRepository) QuizCatalogService {
	return &quizCatalogService{quizRepo: quizRepo}
}

func (s *quizCatalogService) GetAllQuizzes(category, difficulty string) ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllActive(category, difficulty)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			Title:         qwc.Quiz.Title,
			Description:   qwc.Quiz.Description,
			Category:      qwc.Quiz.Category,
			Difficulty:    qwc.Quiz.Difficulty,
			Duration:      qwc.Quiz.Duration,
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// GetQuizDetails returns a quiz with its questions in a redacted shape: the
// DTO simply has nowhere to put a correct-answer index, so it cannot leak.
func (s *quizCatalogService) GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, ErrQuizNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to load quiz details")
		return nil, fmt.Errorf("loading quiz %d: %w", quizID, err)
	}

	questions := make([]dto.QuestionPublicDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuestionPublicDTO{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			Topic:      q.Topic,
		})
	}

	return &dto.QuizDetailDTO{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Category:    quiz.Category,
		Difficulty:  quiz.Difficulty,
		Duration:    quiz.Duration,
		Questions:   questions,
	}, nil
}
