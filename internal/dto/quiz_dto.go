package dto

import "time"

// QuizSummaryDTO is used for listing quizzes. Question bodies are never
// included in listings.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	Duration      int       `json:"duration"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionPublicDTO is the client-bound shape of a question. It has no
// correct-answer or explanation field at all, so the redaction contract
// holds by construction rather than by field clearing.
type QuestionPublicDTO struct {
	ID         uint     `json:"id"`
	Text       string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	Topic      string   `json:"topic"`
}

// QuizDetailDTO is the full quiz a client sees before taking it.
type QuizDetailDTO struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Category    string              `json:"category"`
	Difficulty  string              `json:"difficulty"`
	Duration    int                 `json:"duration"`
	Questions   []QuestionPublicDTO `json:"questions"`
}

// SubmittedAnswerDTO is one client-selected answer within a submission.
// TimeTaken is optional and defaults to 0.
type SubmittedAnswerDTO struct {
	QuestionID     uint `json:"question_id" binding:"required"`
	SelectedAnswer int  `json:"selected_answer"`
	TimeTaken      int  `json:"time_taken"`
}

type QuizSubmitDTO struct {
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
	TimeTaken int                  `json:"time_taken"`
}

// QuizSubmitResultDTO is the summary returned right after a submission.
// The per-answer breakdown is persisted but not returned here; it is
// available later through the results history.
type QuizSubmitResultDTO struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
	CorrectAnswers int `json:"correct_answers"`
	Percentage     int `json:"percentage"`
	TimeTaken      int `json:"time_taken"`
}

type ScoredAnswerDTO struct {
	QuestionID     uint `json:"question_id"`
	SelectedAnswer int  `json:"selected_answer"`
	IsCorrect      bool `json:"is_correct"`
	TimeTaken      int  `json:"time_taken"`
}

// QuizResultDTO is one entry of the results history, with quiz metadata
// denormalized onto it.
type QuizResultDTO struct {
	ID             uint              `json:"id"`
	QuizID         uint              `json:"quiz_id"`
	QuizTitle      string            `json:"quiz_title"`
	QuizCategory   string            `json:"quiz_category"`
	QuizDifficulty string            `json:"quiz_difficulty"`
	Answers        []ScoredAnswerDTO `json:"answers,omitempty"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	CorrectAnswers int               `json:"correct_answers"`
	Percentage     int               `json:"percentage"`
	TimeTaken      int               `json:"time_taken"`
	CompletedAt    time.Time         `json:"completed_at"`
}
