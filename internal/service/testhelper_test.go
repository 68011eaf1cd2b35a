package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps concurrent test writers serialized the same
// way row locks do on the production database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizResult{},
		&model.ScoredAnswer{},
		&model.Interview{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createTestQuiz seeds a quiz where the correct answer to every question
// is option index 0.
func createTestQuiz(t *testing.T, db *gorm.DB, category string, questionCount int) *model.Quiz {
	t.Helper()
	questions := make([]model.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, model.Question{
			Text:          "Question",
			Options:       []string{"right", "wrong", "also wrong", "still wrong"},
			CorrectAnswer: 0,
			Difficulty:    model.DifficultyMedium,
		})
	}
	quiz := model.Quiz{
		Title:      "Sample Quiz",
		Category:   category,
		Difficulty: model.DifficultyMedium,
		Duration:   30,
		Questions:  questions,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}
