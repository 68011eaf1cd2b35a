package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

func newSubmissionService(db *gorm.DB) QuizSubmissionService {
	return NewQuizSubmissionService(
		repository.NewQuizRepository(db),
		repository.NewQuizResultRepository(db),
		repository.NewUserRepository(db),
		NewScoringService(),
		db,
	)
}

func allCorrectAnswers(quiz *model.Quiz) []dto.SubmittedAnswerDTO {
	answers := make([]dto.SubmittedAnswerDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers = append(answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, SelectedAnswer: q.CorrectAnswer})
	}
	return answers
}

func TestSubmitQuiz_QuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "nf@example.com")

	_, err := svc.SubmitQuiz(user.ID, 999, dto.QuizSubmitDTO{
		Answers: []dto.SubmittedAnswerDTO{{QuestionID: 1, SelectedAnswer: 0}},
	})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitQuiz_EmptyAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "empty@example.com")
	quiz := createTestQuiz(t, db, model.CategoryAptitude, 3)

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{})
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestSubmitQuiz_RecordsResultAndUpdatesStats(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "stats@example.com")
	quiz := createTestQuiz(t, db, model.CategoryAptitude, 4)

	result, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{
		Answers:   allCorrectAnswers(quiz),
		TimeTaken: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, 4, result.CorrectAnswers)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 1, fresh.TotalQuizzes)
	assert.Equal(t, 100, fresh.AverageScore)

	var stored model.QuizResult
	require.NoError(t, db.Preload("Answers").Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, 120, stored.TimeTaken)
	assert.Len(t, stored.Answers, 4)
}

func TestSubmitQuiz_RunningAverage(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "avg@example.com")
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"total_quizzes": 2, "average_score": 50}).Error)

	quiz := createTestQuiz(t, db, model.CategoryCoding, 2)

	// ((50 * 2) + 100) / 3 = 66.67 which rounds to 67.
	_, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(quiz)})
	require.NoError(t, err)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 3, fresh.TotalQuizzes)
	assert.Equal(t, 67, fresh.AverageScore)
}

func TestSubmitQuiz_ResubmissionCountsAgain(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "resubmit@example.com")
	quiz := createTestQuiz(t, db, model.CategoryAptitude, 2)

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(quiz)})
	require.NoError(t, err)
	_, err = svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(quiz)})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.QuizResult{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 2, fresh.TotalQuizzes)
}

func TestSubmitQuiz_UnknownQuestionPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "badq@example.com")
	quiz := createTestQuiz(t, db, model.CategoryAptitude, 2)

	answers := allCorrectAnswers(quiz)
	answers = append(answers, dto.SubmittedAnswerDTO{QuestionID: 9999, SelectedAnswer: 0})

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{Answers: answers})
	assert.ErrorIs(t, err, ErrQuestionNotInQuiz)

	var count int64
	require.NoError(t, db.Model(&model.QuizResult{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 0, fresh.TotalQuizzes)
	assert.Equal(t, 0, fresh.AverageScore)
}

func TestSubmitQuiz_QuizWithoutQuestionsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "noq@example.com")
	quiz := model.Quiz{Title: "Empty", Category: model.CategoryHR, Duration: 10, IsActive: true}
	require.NoError(t, db.Create(&quiz).Error)

	_, err := svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{
		Answers: []dto.SubmittedAnswerDTO{{QuestionID: 1, SelectedAnswer: 0}},
	})
	assert.ErrorIs(t, err, ErrQuizHasNoQuestions)
}

func TestSubmitQuiz_ConcurrentSubmissionsAllCounted(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "concurrent@example.com")
	quiz := createTestQuiz(t, db, model.CategoryAptitude, 2)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitQuiz(user.ID, quiz.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(quiz)})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, workers, fresh.TotalQuizzes)
	assert.Equal(t, 100, fresh.AverageScore)
}

func TestGetUserResults_NewestFirstWithQuizMetadata(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db)
	user := createTestUser(t, db, "history@example.com")
	first := createTestQuiz(t, db, model.CategoryAptitude, 2)
	second := createTestQuiz(t, db, model.CategoryCoding, 2)

	_, err := svc.SubmitQuiz(user.ID, first.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(first)})
	require.NoError(t, err)
	_, err = svc.SubmitQuiz(user.ID, second.ID, dto.QuizSubmitDTO{Answers: allCorrectAnswers(second)})
	require.NoError(t, err)

	results, err := svc.GetUserResults(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, model.CategoryCoding, results[0].QuizCategory)
	assert.Equal(t, model.CategoryAptitude, results[1].QuizCategory)
	assert.Len(t, results[0].Answers, 2)
}
