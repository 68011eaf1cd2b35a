package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

// QuizSubmissionService orchestrates one quiz submission end-to-end:
// load quiz, score, persist the result and fold the percentage into the
// user's running aggregate.
type QuizSubmissionService interface {
	SubmitQuiz(userID, quizID uint, req dto.QuizSubmitDTO) (*dto.QuizSubmitResultDTO, error)
	GetUserResults(userID uint) ([]dto.QuizResultDTO, error)
}

type quizSubmissionService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.QuizResultRepository
	userRepo   repository.UserRepository
	scoring    ScoringService
	db         *gorm.DB // transaction scope for result-write + aggregate-update
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	resultRepo repository.QuizResultRepository,
	userRepo repository.UserRepository,
	scoring ScoringService,
	db *gorm.DB,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
		userRepo:   userRepo,
		scoring:    scoring,
		db:         db,
	}
}

// SubmitQuiz runs the submission workflow. The scoring engine runs before
// any write, so a bad submission leaves no partial state. The result insert
// and the aggregate update share one transaction: either both commit or
// neither does. There is deliberately no idempotency key; resubmitting the
// same quiz creates another independent result and counts again.
func (s *quizSubmissionService) SubmitQuiz(userID, quizID uint, req dto.QuizSubmitDTO) (*dto.QuizSubmitResultDTO, error) {
	if len(req.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, ErrQuizNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: failed to load quiz")
		return nil, fmt.Errorf("loading quiz %d: %w", quizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrQuizHasNoQuestions)
	}

	summary, err := s.scoring.ScoreQuiz(quiz, req.Answers)
	if err != nil {
		return nil, err
	}

	result := model.QuizResult{
		UserID:         userID,
		QuizID:         quiz.ID,
		Answers:        summary.Answers,
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		CorrectAnswers: summary.CorrectAnswers,
		Percentage:     summary.Percentage,
		TimeTaken:      req.TimeTaken,
		CompletedAt:    time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.CreateTx(tx, &result); err != nil {
			return fmt.Errorf("persisting quiz result: %w", err)
		}
		if err := s.userRepo.IncrementQuizStats(tx, userID, summary.Percentage); err != nil {
			return fmt.Errorf("updating user stats: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Uint("userID", userID).Msg("SubmitQuiz: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("quizID", quizID).
		Int("score", summary.Score).
		Int("percentage", summary.Percentage).
		Msg("Quiz submitted")

	return &dto.QuizSubmitResultDTO{
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		CorrectAnswers: summary.CorrectAnswers,
		Percentage:     summary.Percentage,
		TimeTaken:      req.TimeTaken,
	}, nil
}

// GetUserResults returns the caller's result history newest-first, with
// quiz metadata denormalized onto each entry.
func (s *quizSubmissionService) GetUserResults(userID uint) ([]dto.QuizResultDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserResults: repository error")
		return nil, fmt.Errorf("fetching results for user %d: %w", userID, err)
	}

	dtos := make([]dto.QuizResultDTO, 0, len(results))
	for _, result := range results {
		var entry dto.QuizResultDTO
		if err := copier.Copy(&entry, &result); err != nil {
			log.Error().Err(err).Uint("resultID", result.ID).Msg("GetUserResults: copy to DTO failed")
			continue
		}
		entry.QuizTitle = result.Quiz.Title
		entry.QuizCategory = result.Quiz.Category
		entry.QuizDifficulty = result.Quiz.Difficulty
		dtos = append(dtos, entry)
	}
	return dtos, nil
}
