package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

// InterviewService manages a user's logged interview experiences. All reads
// and writes except the public listing are scoped to the owning user.
type InterviewService interface {
	ListByUser(userID uint) ([]dto.InterviewDTO, error)
	Create(userID uint, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error)
	GetByID(userID, id uint) (*dto.InterviewDTO, error)
	Update(userID, id uint, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error)
	Delete(userID, id uint) error
	ListPublic(filter repository.PublicExperienceFilter) ([]dto.PublicExperienceDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	userRepo      repository.UserRepository
	db            *gorm.DB
}

func NewInterviewService(interviewRepo repository.InterviewRepository, userRepo repository.UserRepository, db *gorm.DB) InterviewService {
	return &interviewService{interviewRepo: interviewRepo, userRepo: userRepo, db: db}
}

func (s *interviewService) ListByUser(userID uint) ([]dto.InterviewDTO, error) {
	interviews, err := s.interviewRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListByUser: repository error")
		return nil, fmt.Errorf("fetching interviews for user %d: %w", userID, err)
	}

	dtos := make([]dto.InterviewDTO, 0, len(interviews))
	for _, interview := range interviews {
		var entry dto.InterviewDTO
		if err := copier.Copy(&entry, &interview); err != nil {
			log.Error().Err(err).Uint("interviewID", interview.ID).Msg("ListByUser: copy to DTO failed")
			continue
		}
		dtos = append(dtos, entry)
	}
	return dtos, nil
}

// Create persists the interview and bumps the owner's interview counter in
// the same transaction.
func (s *interviewService) Create(userID uint, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error) {
	interview := model.Interview{UserID: userID}
	if err := copier.Copy(&interview, &req); err != nil {
		return nil, fmt.Errorf("preparing interview: %w", err)
	}
	if interview.Status == "" {
		interview.Status = model.InterviewStatusScheduled
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interviewRepo.CreateTx(tx, &interview); err != nil {
			return fmt.Errorf("persisting interview: %w", err)
		}
		return s.userRepo.IncrementInterviewStats(tx, userID)
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Create interview: transaction failed")
		return nil, err
	}

	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, &interview); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	log.Info().Uint("userID", userID).Uint("interviewID", interview.ID).Str("company", interview.Company).Msg("Interview logged")
	return &resp, nil
}

func (s *interviewService) GetByID(userID, id uint) (*dto.InterviewDTO, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("loading interview %d: %w", id, err)
	}
	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) Update(userID, id uint, req dto.InterviewCreateDTO) (*dto.InterviewDTO, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("loading interview %d: %w", id, err)
	}

	previousStatus := interview.Status
	if err := copier.Copy(interview, &req); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}
	if interview.Status == "" {
		interview.Status = previousStatus
	}
	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("Update interview: repository error")
		return nil, fmt.Errorf("saving interview %d: %w", id, err)
	}

	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) Delete(userID, id uint) error {
	affected, err := s.interviewRepo.DeleteByIDAndUser(id, userID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("Delete interview: repository error")
		return fmt.Errorf("deleting interview %d: %w", id, err)
	}
	if affected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// ListPublic returns shared experiences with the owner stripped out.
func (s *interviewService) ListPublic(filter repository.PublicExperienceFilter) ([]dto.PublicExperienceDTO, error) {
	interviews, err := s.interviewRepo.FindPublic(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListPublic: repository error")
		return nil, fmt.Errorf("fetching public experiences: %w", err)
	}

	dtos := make([]dto.PublicExperienceDTO, 0, len(interviews))
	for _, interview := range interviews {
		var entry dto.PublicExperienceDTO
		if err := copier.Copy(&entry, &interview); err != nil {
			continue
		}
		dtos = append(dtos, entry)
	}
	return dtos, nil
}
