package dto

// RegisterDTO is the request body for user registration.
type RegisterDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the client-facing representation of a user and their running
// statistics. The password hash and resume storage key never appear here.
type UserDTO struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	College         string   `json:"college,omitempty"`
	Branch          string   `json:"branch,omitempty"`
	GradYear        int      `json:"grad_year,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	HasResume       bool     `json:"has_resume"`
	TotalQuizzes    int      `json:"total_quizzes"`
	AverageScore    int      `json:"average_score"`
	TotalInterviews int      `json:"total_interviews"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ProfileUpdateDTO carries the editable profile fields. Zero values are
// written as-is; clients send the full profile.
type ProfileUpdateDTO struct {
	Name     string   `json:"name" binding:"required"`
	College  string   `json:"college"`
	Branch   string   `json:"branch"`
	GradYear int      `json:"grad_year"`
	Skills   []string `json:"skills"`
}
