package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizAdminDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

// CreateQuiz validates and persists a quiz with its questions. This is the
// seeding path; quizzes are read-only afterwards from the submission
// workflow's perspective.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizAdminDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		if len(qDto.Options) < 2 {
			return nil, fmt.Errorf("question %d must have at least 2 options, got %d", i+1, len(qDto.Options))
		}
		if qDto.CorrectAnswer < 0 || qDto.CorrectAnswer >= len(qDto.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d is out of range [0, %d)", i+1, qDto.CorrectAnswer, len(qDto.Options))
		}
		difficulty := qDto.Difficulty
		if difficulty == "" {
			difficulty = model.DifficultyMedium
		}
		questions = append(questions, model.Question{
			Text:          qDto.Text,
			Options:       qDto.Options,
			CorrectAnswer: qDto.CorrectAnswer,
			Explanation:   qDto.Explanation,
			Difficulty:    difficulty,
			Topic:         qDto.Topic,
		})
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  difficulty,
		Duration:    req.Duration,
		Questions:   questions,
		IsActive:    true,
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: repository error")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	log.Info().Uint("quizID", quiz.ID).Str("title", quiz.Title).Int("questions", len(quiz.Questions)).Msg("Quiz created")
	return &dto.QuizAdminDTO{
		ID:            quiz.ID,
		Title:         quiz.Title,
		Category:      quiz.Category,
		Difficulty:    quiz.Difficulty,
		Duration:      quiz.Duration,
		QuestionCount: len(quiz.Questions),
		IsActive:      quiz.IsActive,
	}, nil
}
