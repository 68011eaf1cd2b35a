package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
)

func validQuizCreate() dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:    "Aptitude Basics",
		Category: model.CategoryAptitude,
		Duration: 20,
		Questions: []dto.QuestionCreateDTO{
			{Text: "2 + 2?", Options: []string{"3", "4"}, CorrectAnswer: 1, Topic: "Arithmetic"},
			{Text: "Capital of France?", Options: []string{"Paris", "Lyon", "Nice"}, CorrectAnswer: 0, Topic: "General"},
		},
	}
}

func TestCreateQuiz_PersistsQuizWithQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminQuizService(repository.NewQuizRepository(db))

	created, err := svc.CreateQuiz(validQuizCreate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 2, created.QuestionCount)
	assert.True(t, created.IsActive)
	assert.Equal(t, model.DifficultyMedium, created.Difficulty)

	var stored model.Quiz
	require.NoError(t, db.Preload("Questions").First(&stored, created.ID).Error)
	require.Len(t, stored.Questions, 2)
	assert.Equal(t, 1, stored.Questions[0].CorrectAnswer)
}

func TestCreateQuiz_RejectsTooFewOptions(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminQuizService(repository.NewQuizRepository(db))

	req := validQuizCreate()
	req.Questions[0].Options = []string{"only one"}
	_, err := svc.CreateQuiz(req)
	assert.Error(t, err)
}

func TestCreateQuiz_RejectsOutOfRangeCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminQuizService(repository.NewQuizRepository(db))

	req := validQuizCreate()
	req.Questions[1].CorrectAnswer = 3
	_, err := svc.CreateQuiz(req)
	assert.Error(t, err)

	req.Questions[1].CorrectAnswer = -1
	_, err = svc.CreateQuiz(req)
	assert.Error(t, err)
}
