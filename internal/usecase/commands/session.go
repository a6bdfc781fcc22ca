package commands

import (
	"errors"
	"time"

	"pos-api/internal/pkg/clock"
	"pos-api/internal/pkg/errs"
	"pos-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errs.New("unauthenticated")
	ErrTokenExpired    = errs.New("token expired")
	ErrTokenMalformed  = errs.New("token malformed")
	ErrTokenGeneration = errs.New("token generation failed")
)

// Session is the server-side record of one issued token. The token itself is
// self-describing, but validity is additionally gated by presence here, which
// is what makes revocation possible.
type Session struct {
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type TokenStore interface {
	Put(token string, sess Session)
	Get(token string) (Session, bool)
	Delete(token string) bool
}

type StartSessionResult struct {
	UserID      string
	AccessToken string
}

type SessionCommands interface {
	StartSession() (*StartSessionResult, error)
	VerifyToken(token string) (string, error)
	RevokeToken(token string) bool
}

// TokenVerifier is the slice of SessionCommands the auth middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type sessionUseCaseImpl struct {
	store      TokenStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewSessionUseCase(store TokenStore, jwtService *jwt.Service, clk clock.Clock) SessionCommands {
	return &sessionUseCaseImpl{
		store:      store,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (s *sessionUseCaseImpl) StartSession() (*StartSessionResult, error) {
	userID := uuid.NewString()
	now := s.clock.Now()

	token, err := s.jwtService.GenerateToken(userID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	s.store.Put(token, Session{
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtService.Duration()),
	})

	return &StartSessionResult{
		UserID:      userID,
		AccessToken: token,
	}, nil
}

// VerifyToken checks the registry first, then the signature, then the stored
// expiry. Expired entries it encounters are evicted on the spot; there is no
// sliding expiration.
func (s *sessionUseCaseImpl) VerifyToken(token string) (string, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return "", ErrUnauthenticated
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			s.store.Delete(token)
			return "", errs.Mark(err, ErrTokenExpired)
		}
		return "", errs.Mark(err, ErrTokenMalformed)
	}

	if claims.UserID == "" {
		return "", ErrTokenMalformed
	}

	if s.clock.Now().After(sess.ExpiresAt) {
		s.store.Delete(token)
		return "", ErrTokenExpired
	}

	return sess.UserID, nil
}

func (s *sessionUseCaseImpl) RevokeToken(token string) bool {
	return s.store.Delete(token)
}
