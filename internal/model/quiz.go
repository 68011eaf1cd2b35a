package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz categories as exposed to clients.
const (
	CategoryAptitude     = "Aptitude Test"
	CategoryCoding       = "Coding Challenge"
	CategoryHR           = "HR & Behavioral"
	CategorySystemDesign = "System Design"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category" gorm:"not null;index"` // one of the Category* constants
	Difficulty  string         `json:"difficulty" gorm:"not null;default:'Medium'"`
	Duration    int            `json:"duration" gorm:"not null"` // minutes
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
