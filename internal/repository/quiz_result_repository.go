package repository

import (
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"gorm.io/gorm"
)

// CategoryStat is one row of the per-category aggregation over a user's
// quiz results.
type CategoryStat struct {
	Category      string
	Attempts      int
	AvgPercentage float64
}

// ResultStats are whole-history aggregates for one user.
type ResultStats struct {
	BestScore        int
	TotalTimeSeconds int
}

type QuizResultRepository interface {
	// CreateTx persists a result inside the caller's transaction. The
	// submission workflow pairs it with the user aggregate update so both
	// commit or neither does.
	CreateTx(tx *gorm.DB, result *model.QuizResult) error
	FindAllByUser(userID uint) ([]model.QuizResult, error)
	CountByUser(userID uint) (int64, error)
	AggregateByCategory(userID uint) ([]CategoryStat, error)
	StatsByUser(userID uint) (*ResultStats, error)
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) CreateTx(tx *gorm.DB, result *model.QuizResult) error {
	// GORM creates the associated scored answers along with the result.
	return tx.Create(result).Error
}

func (r *quizResultRepository) FindAllByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.db.
		Preload("Quiz").
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (r *quizResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizResult{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *quizResultRepository) AggregateByCategory(userID uint) ([]CategoryStat, error) {
	var stats []CategoryStat
	err := r.db.Model(&model.QuizResult{}).
		Select("quizzes.category as category, COUNT(*) as attempts, AVG(quiz_results.percentage) as avg_percentage").
		Joins("JOIN quizzes ON quizzes.id = quiz_results.quiz_id").
		Where("quiz_results.user_id = ?", userID).
		Where("quiz_results.deleted_at IS NULL").
		Group("quizzes.category").
		Scan(&stats).Error
	return stats, err
}

func (r *quizResultRepository) StatsByUser(userID uint) (*ResultStats, error) {
	var stats ResultStats
	err := r.db.Model(&model.QuizResult{}).
		Select("COALESCE(MAX(percentage), 0) as best_score, COALESCE(SUM(time_taken), 0) as total_time_seconds").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
