package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is the immutable record of one submission attempt. It is
// created exactly once per submission and never updated or deleted by the
// submission workflow. Resubmitting the same quiz produces another
// independent QuizResult.
type QuizResult struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Answers        []ScoredAnswer `json:"answers,omitempty" gorm:"foreignKey:QuizResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	Percentage     int            `json:"percentage" gorm:"not null"`
	TimeTaken      int            `json:"time_taken" gorm:"not null"` // total seconds, client-supplied
	CompletedAt    time.Time      `json:"completed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type ScoredAnswer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuizResultID   uint           `json:"quiz_result_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null"`
	SelectedAnswer int            `json:"selected_answer" gorm:"not null"`
	IsCorrect      bool           `json:"is_correct" gorm:"not null"`
	TimeTaken      int            `json:"time_taken" gorm:"not null;default:0"` // seconds on this question
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
