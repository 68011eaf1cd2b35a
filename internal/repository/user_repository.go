package repository

import (
	"time"

	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	// IncrementQuizStats bumps the quiz counter and folds a new percentage
	// into the running average in one UPDATE. tx may be a transaction handle
	// or the plain DB.
	IncrementQuizStats(tx *gorm.DB, userID uint, percentage int) error
	IncrementInterviewStats(tx *gorm.DB, userID uint) error
	UpdateResumeKey(userID uint, key string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// IncrementQuizStats keeps the running average exact:
// newAverage = round((oldAverage*oldCount + percentage) / (oldCount+1)).
// Every column reference on the right-hand side reads the pre-update row,
// so concurrent submissions cannot lose an increment the way a
// read-modify-write in Go would.
func (r *userRepository) IncrementQuizStats(tx *gorm.DB, userID uint, percentage int) error {
	res := tx.Exec(
		`UPDATE users
		 SET average_score = ROUND((average_score * total_quizzes + ?) / (total_quizzes + 1.0)),
		     total_quizzes = total_quizzes + 1,
		     updated_at = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		percentage, time.Now(), userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) IncrementInterviewStats(tx *gorm.DB, userID uint) error {
	res := tx.Exec(
		`UPDATE users SET total_interviews = total_interviews + 1, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now(), userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdateResumeKey(userID uint, key string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("resume_key", key).Error
}
