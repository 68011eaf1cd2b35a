package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
)

func scoringQuiz(questionIDs []uint, correctAnswers []int) *model.Quiz {
	questions := make([]model.Question, 0, len(questionIDs))
	for i, id := range questionIDs {
		questions = append(questions, model.Question{
			ID:            id,
			Text:          "Question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: correctAnswers[i],
		})
	}
	return &model.Quiz{ID: 1, Title: "Scoring Quiz", Questions: questions}
}

func TestScoreQuiz_AllCorrect(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1, 2, 3}, []int{0, 1, 2})

	summary, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 0},
		{QuestionID: 2, SelectedAnswer: 1},
		{QuestionID: 3, SelectedAnswer: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.CorrectAnswers)
	assert.Equal(t, 3, summary.TotalQuestions)
	assert.Equal(t, 100, summary.Percentage)
}

func TestScoreQuiz_AllWrong(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1, 2}, []int{0, 0})

	summary, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 1},
		{QuestionID: 2, SelectedAnswer: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CorrectAnswers)
	assert.Equal(t, 0, summary.Percentage)
}

func TestScoreQuiz_PercentageRounding(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1, 2, 3}, []int{0, 0, 0})

	// 1 of 3 correct rounds 33.33 down to 33.
	summary, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 0},
		{QuestionID: 2, SelectedAnswer: 1},
		{QuestionID: 3, SelectedAnswer: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 33, summary.Percentage)

	// 2 of 3 correct rounds 66.67 up to 67.
	summary, err = svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 0},
		{QuestionID: 2, SelectedAnswer: 0},
		{QuestionID: 3, SelectedAnswer: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 67, summary.Percentage)
}

func TestScoreQuiz_DenominatorIsQuestionCount(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1, 2, 3, 4}, []int{0, 0, 0, 0})

	// Answering only half the quiz caps the score at 50 even when every
	// submitted answer is right.
	summary, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 0},
		{QuestionID: 2, SelectedAnswer: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 4, summary.TotalQuestions)
	assert.Equal(t, 50, summary.Percentage)
}

func TestScoreQuiz_OutOfRangeSelectionIsIncorrect(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1}, []int{0})

	summary, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 99},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CorrectAnswers)
	require.Len(t, summary.Answers, 1)
	assert.False(t, summary.Answers[0].IsCorrect)
}

func TestScoreQuiz_UnknownQuestionFailsSubmission(t *testing.T) {
	svc := NewScoringService()
	quiz := scoringQuiz([]uint{1, 2}, []int{0, 0})

	_, err := svc.ScoreQuiz(quiz, []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedAnswer: 0},
		{QuestionID: 42, SelectedAnswer: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionNotInQuiz)
}

func TestScoreQuiz_NoQuestions(t *testing.T) {
	svc := NewScoringService()
	quiz := &model.Quiz{ID: 1, Title: "Empty"}

	summary, err := svc.ScoreQuiz(quiz, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalQuestions)
	assert.Equal(t, 0, summary.Percentage)
}
