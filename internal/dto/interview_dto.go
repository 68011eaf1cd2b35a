package dto

import "time"

type InterviewExperienceDTO struct {
	Difficulty string   `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Questions  []string `json:"questions"`
	Tips       []string `json:"tips"`
	Overall    string   `json:"overall"`
}

type InterviewFeedbackDTO struct {
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comments string `json:"comments"`
}

type InterviewCreateDTO struct {
	Company    string                 `json:"company" binding:"required"`
	Role       string                 `json:"role" binding:"required"`
	Type       string                 `json:"type" binding:"required,oneof=Technical HR Managerial 'Group Discussion'"`
	Date       time.Time              `json:"date" binding:"required"`
	Duration   int                    `json:"duration"`
	Package    string                 `json:"package" binding:"required"`
	Status     string                 `json:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled Selected Rejected"`
	Experience InterviewExperienceDTO `json:"experience" binding:"required"`
	Feedback   InterviewFeedbackDTO   `json:"feedback"`
}

type InterviewDTO struct {
	ID         uint                   `json:"id"`
	Company    string                 `json:"company"`
	Role       string                 `json:"role"`
	Type       string                 `json:"type"`
	Date       time.Time              `json:"date"`
	Duration   int                    `json:"duration,omitempty"`
	Package    string                 `json:"package"`
	Status     string                 `json:"status"`
	Experience InterviewExperienceDTO `json:"experience"`
	Feedback   InterviewFeedbackDTO   `json:"feedback"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PublicExperienceDTO is the anonymized shape served on the shared
// experiences listing. It intentionally carries no user identity.
type PublicExperienceDTO struct {
	Company    string                 `json:"company"`
	Role       string                 `json:"role"`
	Type       string                 `json:"type"`
	Date       time.Time              `json:"date"`
	Package    string                 `json:"package"`
	Experience InterviewExperienceDTO `json:"experience"`
	Feedback   InterviewFeedbackDTO   `json:"feedback"`
}
