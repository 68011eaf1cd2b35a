package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user account
// @Description Create an account with name, email and password. Returns a JWT and the new profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration_data body dto.RegisterDTO true "Registration details"
// @Success 201 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Email is already registered"})
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Register: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register user", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login credentials"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid email or password"})
			return
		}
		log.Error().Err(err).Msg("Login: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	profile, err := c.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Me: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Updates name, college, branch, graduation year and skills. Email and password are not changed here.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateDTO true "Profile fields"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.authService.UpdateProfile(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
