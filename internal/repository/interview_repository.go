package repository

import (
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"gorm.io/gorm"
)

// PublicExperienceFilter narrows the shared experiences listing. Empty
// fields are ignored; company and role match case-insensitively.
type PublicExperienceFilter struct {
	Company string
	Role    string
	Type    string
	Limit   int
}

type InterviewRepository interface {
	CreateTx(tx *gorm.DB, interview *model.Interview) error
	FindAllByUser(userID uint) ([]model.Interview, error)
	FindByIDAndUser(id, userID uint) (*model.Interview, error)
	Update(interview *model.Interview) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
	FindPublic(filter PublicExperienceFilter) ([]model.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) CreateTx(tx *gorm.DB, interview *model.Interview) error {
	return tx.Create(interview).Error
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindByIDAndUser(id, userID uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Interview{})
	return res.RowsAffected, res.Error
}

func (r *interviewRepository) FindPublic(filter PublicExperienceFilter) ([]model.Interview, error) {
	query := r.db.Model(&model.Interview{})
	if filter.Company != "" {
		query = query.Where("LOWER(company) LIKE LOWER(?)", "%"+filter.Company+"%")
	}
	if filter.Role != "" {
		query = query.Where("LOWER(role) LIKE LOWER(?)", "%"+filter.Role+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	var interviews []model.Interview
	err := query.Order("date DESC").Limit(limit).Find(&interviews).Error
	return interviews, err
}
