package model

import (
	"time"

	"gorm.io/gorm"
)

// Question belongs to exactly one Quiz. CorrectAnswer is a 0-based index
// into Options and must never be serialized into a client-bound quiz read;
// only the scoring path may see it.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	Text          string         `json:"question" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json;not null"`
	CorrectAnswer int            `json:"correct_answer" gorm:"not null"`
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
	Difficulty    string         `json:"difficulty" gorm:"not null;default:'Medium'"`
	Topic         string         `json:"topic" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
