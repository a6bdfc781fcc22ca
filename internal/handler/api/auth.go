package api

import (
	"net/http"
	"strings"

	resdto "pos-api/internal/handler/dto/response"
	"pos-api/internal/handler/httperr"
	"pos-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessionCommands commands.SessionCommands
}

func NewAuthHandler(sessionCommands commands.SessionCommands) *AuthHandler {
	return &AuthHandler{
		sessionCommands: sessionCommands,
	}
}

// @Summary Start an anonymous session
// @Description Generates a user ID and issues a bearer token for it
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.StartSessionResponse
// @Failure 500 {object} httperr.Response
// @Router /auth/start [post]
func (h *AuthHandler) StartSession(c *gin.Context) {
	result, err := h.sessionCommands.StartSession()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.StartSessionResponse{
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
	})
}

// @Summary Revoke the current session token
// @Description Removes the presented token from the live-token registry
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/revoke [post]
func (h *AuthHandler) RevokeSession(c *gin.Context) {
	// RequireAuth has already verified this header
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	h.sessionCommands.RevokeToken(token)
	c.Status(http.StatusNoContent)
}
