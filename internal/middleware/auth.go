package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/auth"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
)

const (
	// ContextUserID is the gin context key for the authenticated user's ID.
	ContextUserID = "user_id"
	// ContextUserEmail is the gin context key for the authenticated user's email.
	ContextUserEmail = "user_email"
)

// Auth validates the Bearer token and stores the caller's identity in the
// gin context for downstream handlers.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid authorization header"})
			return
		}
		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the gin context. It must
// only be called on routes behind Auth.
func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}
