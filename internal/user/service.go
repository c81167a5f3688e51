package user

import (
	"context"
	"errors"
)

var (
	ErrMissingEmail       = errors.New("missing email")
	ErrMissingPassword    = errors.New("missing password")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new user with a hashed password.
// The email must not already be taken.
func (s *Service) Register(
	ctx context.Context,
	email string,
	password string,
) (*User, error) {

	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:    email,
		Password: hash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate checks an email/password pair against the stored hash
// and returns the matching user id. Lookup and hash failures are
// indistinguishable to the caller.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (string, error) {

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		// hide whether user exists or not
		return "", ErrInvalidCredentials
	}

	if err := VerifyPassword(u.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.ID.Hex(), nil
}

// GetByID returns the user owning the given identifier.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
