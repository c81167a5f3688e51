package auth

import (
	"context"
	"errors"
	"time"

	"github.com/kweenDev/alx-files-manager/internal/session"
	"github.com/kweenDev/alx-files-manager/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

// Service owns the session-token lifecycle: it validates credentials,
// issues tokens, revokes them, and resolves a token back to its user.
type Service struct {
	users    *user.Service
	sessions session.Store
}

func NewService(users *user.Service, sessions session.Store) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

// SignIn validates a Basic Authorization header and issues a session
// token with a fixed TTL. Every failure mode reports ErrUnauthorized;
// the caller learns nothing about which check rejected the attempt.
func (s *Service) SignIn(ctx context.Context, authHeader string) (string, error) {
	email, password, ok := decodeBasic(authHeader)
	if !ok {
		return "", ErrUnauthorized
	}

	userID, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	token, err := session.GenerateToken()
	if err != nil {
		return "", err
	}

	err = s.sessions.Create(ctx, session.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(session.TTL),
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// SignOut revokes the session immediately. A token that is missing,
// expired, or already revoked reports ErrUnauthorized.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrUnauthorized
	}

	return s.sessions.Delete(ctx, token)
}

// Resolve returns the user id a token was issued to.
// Used by every protected endpoint as a precondition.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", ErrUnauthorized
	}

	return sess.UserID, nil
}
