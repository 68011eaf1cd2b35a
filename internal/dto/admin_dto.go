package dto

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz creation.
type QuestionCreateDTO struct {
	Text          string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer int      `json:"correct_answer" binding:"min=0"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Topic         string   `json:"topic" binding:"required"`
}

// QuizCreateDTO is for the administrative/seeding process to create a quiz
// with all of its questions in one request.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category" binding:"required,oneof='Aptitude Test' 'Coding Challenge' 'HR & Behavioral' 'System Design'"`
	Difficulty  string              `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Duration    int                 `json:"duration" binding:"required,gt=0"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuizAdminDTO echoes a created quiz back to the admin, correct answers
// included. It is never served on a user-facing route.
type QuizAdminDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Duration      int    `json:"duration"`
	QuestionCount int    `json:"question_count"`
	IsActive      bool   `json:"is_active"`
}
