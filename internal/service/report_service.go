package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

// Category averages at or above this mark count as a strength, below the
// lower mark as a weakness.
const (
	strongAreaThreshold = 70
	weakAreaThreshold   = 50
)

type ReportService interface {
	GetSummary(userID uint) (*dto.ReportSummaryDTO, error)
}

type reportService struct {
	userRepo   repository.UserRepository
	resultRepo repository.QuizResultRepository
}

func NewReportService(userRepo repository.UserRepository, resultRepo repository.QuizResultRepository) ReportService {
	return &reportService{userRepo: userRepo, resultRepo: resultRepo}
}

// GetSummary assembles the progress report for a user from the denormalized
// counters on the user row plus per-category aggregates over quiz results.
func (s *reportService) GetSummary(userID uint) (*dto.ReportSummaryDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	stats, err := s.resultRepo.StatsByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetSummary: result stats query failed")
		return nil, fmt.Errorf("aggregating results for user %d: %w", userID, err)
	}

	categories, err := s.resultRepo.AggregateByCategory(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetSummary: category aggregate failed")
		return nil, fmt.Errorf("aggregating categories for user %d: %w", userID, err)
	}

	summary := dto.ReportSummaryDTO{
		TotalQuizzes:      user.TotalQuizzes,
		AverageScore:      user.AverageScore,
		TotalInterviews:   user.TotalInterviews,
		BestScore:         stats.BestScore,
		TotalTimeMinutes:  stats.TotalTimeSeconds / 60,
		CategoryBreakdown: make([]dto.CategoryStatDTO, 0, len(categories)),
		StrongAreas:       []string{},
		WeakAreas:         []string{},
	}

	for _, cat := range categories {
		avg := int(math.Round(cat.AvgPercentage))
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, dto.CategoryStatDTO{
			Category:     cat.Category,
			Attempts:     cat.Attempts,
			AverageScore: avg,
		})
		switch {
		case avg >= strongAreaThreshold:
			summary.StrongAreas = append(summary.StrongAreas, cat.Category)
		case avg < weakAreaThreshold:
			summary.WeakAreas = append(summary.WeakAreas, cat.Category)
		}
	}

	return &summary, nil
}
