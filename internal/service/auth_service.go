package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/auth"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error)
	GetProfile(userID uint) (*dto.UserDTO, error)
	UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return &dto.AuthResponseDTO{Token: token, User: toUserDTO(&user)}, nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &dto.AuthResponseDTO{Token: token, User: toUserDTO(user)}, nil
}

func (s *authService) GetProfile(userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}
	userDTO := toUserDTO(user)
	return &userDTO, nil
}

func (s *authService) UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	user.Name = req.Name
	user.College = req.College
	user.Branch = req.Branch
	user.GradYear = req.GradYear
	user.Skills = req.Skills
	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: failed to save user")
		return nil, fmt.Errorf("saving user %d: %w", userID, err)
	}

	userDTO := toUserDTO(user)
	return &userDTO, nil
}

func toUserDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		College:         user.College,
		Branch:          user.Branch,
		GradYear:        user.GradYear,
		Skills:          user.Skills,
		HasResume:       user.ResumeKey != "",
		TotalQuizzes:    user.TotalQuizzes,
		AverageScore:    user.AverageScore,
		TotalInterviews: user.TotalInterviews,
	}
}
