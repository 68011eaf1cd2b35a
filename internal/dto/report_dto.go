package dto

type CategoryStatDTO struct {
	Category     string `json:"category"`
	Attempts     int    `json:"attempts"`
	AverageScore int    `json:"average_score"`
}

// ReportSummaryDTO aggregates a user's progress across quizzes and
// interviews. AverageScore and the counters come from the user aggregate
// row; the rest is derived from the persisted results.
type ReportSummaryDTO struct {
	TotalQuizzes      int               `json:"total_quizzes"`
	AverageScore      int               `json:"average_score"`
	TotalInterviews   int               `json:"total_interviews"`
	BestScore         int               `json:"best_score"`
	TotalTimeMinutes  int               `json:"total_time_minutes"`
	CategoryBreakdown []CategoryStatDTO `json:"category_breakdown"`
	StrongAreas       []string          `json:"strong_areas"`
	WeakAreas         []string          `json:"weak_areas"`
}
