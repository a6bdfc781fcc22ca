package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pos-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "user_id"

type AuthMiddleware struct {
	verifier commands.TokenVerifier
}

func NewAuthMiddleware(verifier commands.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// RequireAuth verifies the bearer token before any handler runs. All
// authentication failures are 401 with a short message; the reason is only
// logged server-side.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, err := m.verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("Token verification failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": authErrorMessage(err),
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, commands.ErrTokenMalformed):
		return "Invalid token"
	default:
		return "Invalid or expired token"
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}
