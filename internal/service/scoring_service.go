package service

import (
	"fmt"
	"math"

	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
)

// ScoreSummary is the outcome of scoring one submission against a quiz
// snapshot.
type ScoreSummary struct {
	Answers        []model.ScoredAnswer
	Score          int
	TotalQuestions int
	CorrectAnswers int
	Percentage     int
}

// ScoringService is the pure scoring engine: no persistence, no side
// effects, deterministic over its inputs.
type ScoringService interface {
	ScoreQuiz(quiz *model.Quiz, answers []dto.SubmittedAnswerDTO) (*ScoreSummary, error)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// ScoreQuiz resolves each submitted answer against the quiz's own question
// set and counts matches against the authoritative correct-answer index.
//
// A question identity that does not resolve fails the whole submission with
// ErrQuestionNotInQuiz. A selected index outside the option range is simply
// not equal to the correct index, so it scores as incorrect without raising
// a validation error.
//
// The percentage denominator is the quiz's question count, not the number
// of submitted answers; unanswered questions therefore count against the
// caller.
func (s *scoringService) ScoreQuiz(quiz *model.Quiz, answers []dto.SubmittedAnswerDTO) (*ScoreSummary, error) {
	questionMap := make(map[uint]model.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionMap[q.ID] = q
	}

	scored := make([]model.ScoredAnswer, 0, len(answers))
	correct := 0
	for _, a := range answers {
		question, ok := questionMap[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("question %d: %w", a.QuestionID, ErrQuestionNotInQuiz)
		}
		isCorrect := a.SelectedAnswer == question.CorrectAnswer
		if isCorrect {
			correct++
		}
		scored = append(scored, model.ScoredAnswer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      isCorrect,
			TimeTaken:      a.TimeTaken,
		})
	}

	total := len(quiz.Questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) * 100 / float64(total)))
	}

	return &ScoreSummary{
		Answers:        scored,
		Score:          correct,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Percentage:     percentage,
	}, nil
}
