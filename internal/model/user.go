package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint     `gorm:"primarykey" json:"id"`
	Name         string   `json:"name" gorm:"not null"`
	Email        string   `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string   `json:"-" gorm:"not null"`
	College      string   `json:"college,omitempty"`
	Branch       string   `json:"branch,omitempty"`
	GradYear     int      `json:"grad_year,omitempty"`
	Skills       []string `json:"skills,omitempty" gorm:"serializer:json"`
	ResumeKey    string   `json:"-"`

	// Running aggregates. TotalQuizzes and AverageScore are mutated only via
	// UserRepository.IncrementQuizStats; TotalInterviews only via
	// IncrementInterviewStats. Both are single atomic UPDATE statements.
	TotalQuizzes    int `json:"total_quizzes" gorm:"not null;default:0"`
	AverageScore    int `json:"average_score" gorm:"not null;default:0"`
	TotalInterviews int `json:"total_interviews" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
