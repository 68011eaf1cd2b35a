package repository

import (
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllActive(category, difficulty string) ([]struct {
		model.Quiz
		QuestionCount int
	}, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the associated questions along with the quiz.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllActive(category, difficulty string) ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	var results []struct {
		model.Quiz
		QuestionCount int
	}
	query := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.is_active = ?", true).
		Where("quizzes.deleted_at IS NULL")
	if category != "" {
		query = query.Where("quizzes.category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("quizzes.difficulty = ?", difficulty)
	}
	err := query.Order("quizzes.created_at DESC").Scan(&results).Error
	return results, err
}
