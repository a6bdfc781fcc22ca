//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-api/internal/handler/api"
	resdto "pos-api/internal/handler/dto/response"
	"pos-api/internal/pkg/errs"
	"pos-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubSessionCommands struct {
	startResult  *commands.StartSessionResult
	startErr     error
	revokedToken string
	revokeResult bool
}

func (s *stubSessionCommands) StartSession() (*commands.StartSessionResult, error) {
	return s.startResult, s.startErr
}

func (s *stubSessionCommands) VerifyToken(_ string) (string, error) {
	return "", commands.ErrUnauthenticated
}

func (s *stubSessionCommands) RevokeToken(token string) bool {
	s.revokedToken = token
	return s.revokeResult
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	sessions *stubSessionCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.sessions = &stubSessionCommands{}
	handler := api.NewAuthHandler(s.sessions)

	s.router.POST("/auth/start", handler.StartSession)
	s.router.POST("/auth/revoke", handler.RevokeSession)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestStartSession() {
	s.Run("success: returns user id and bearer token", func() {
		s.sessions.startResult = &commands.StartSessionResult{
			UserID:      "11111111-2222-3333-4444-555555555555",
			AccessToken: "signed-token",
		}
		s.sessions.startErr = nil

		req := httptest.NewRequest(http.MethodPost, "/auth/start", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.StartSessionResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("11111111-2222-3333-4444-555555555555", resp.UserID)
		s.Equal("signed-token", resp.AccessToken)
		s.Equal("bearer", resp.TokenType)
	})

	s.Run("error: token generation failure returns 500 with a short message", func() {
		s.sessions.startResult = nil
		s.sessions.startErr = errs.Mark(errs.New("hmac broke"), commands.ErrTokenGeneration)

		req := httptest.NewRequest(http.MethodPost, "/auth/start", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Internal server error")
		s.NotContains(rec.Body.String(), "hmac")
	})
}

func (s *AuthHandlerTestSuite) TestRevokeSession() {
	s.sessions.revokeResult = true

	req := httptest.NewRequest(http.MethodPost, "/auth/revoke", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("live-token", s.sessions.revokedToken)
}
