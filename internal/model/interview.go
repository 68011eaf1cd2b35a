package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewTypeTechnical  = "Technical"
	InterviewTypeHR         = "HR"
	InterviewTypeManagerial = "Managerial"
	InterviewTypeGD         = "Group Discussion"
)

const (
	InterviewStatusScheduled = "Scheduled"
	InterviewStatusCompleted = "Completed"
	InterviewStatusCancelled = "Cancelled"
	InterviewStatusSelected  = "Selected"
	InterviewStatusRejected  = "Rejected"
)

type InterviewExperience struct {
	Difficulty string   `json:"difficulty"`
	Questions  []string `json:"questions,omitempty" gorm:"serializer:json"`
	Tips       []string `json:"tips,omitempty" gorm:"serializer:json"`
	Overall    string   `json:"overall,omitempty" gorm:"type:text"`
}

type InterviewFeedback struct {
	Rating   int    `json:"rating,omitempty"`
	Comments string `json:"comments,omitempty" gorm:"type:text"`
}

type Interview struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	UserID     uint                `json:"user_id" gorm:"not null;index"`
	Company    string              `json:"company" gorm:"not null"`
	Role       string              `json:"role" gorm:"not null"`
	Type       string              `json:"type" gorm:"not null"`
	Date       time.Time           `json:"date" gorm:"not null"`
	Duration   int                 `json:"duration,omitempty"` // minutes
	Package    string              `json:"package" gorm:"not null"`
	Status     string              `json:"status" gorm:"not null;default:'Scheduled'"`
	Experience InterviewExperience `json:"experience" gorm:"embedded;embeddedPrefix:experience_"`
	Feedback   InterviewFeedback   `json:"feedback" gorm:"embedded;embeddedPrefix:feedback_"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`
}
