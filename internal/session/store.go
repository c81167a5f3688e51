package session

import (
	"context"
	"time"
)

// TTL is how long an issued token stays valid without an explicit sign-out.
const TTL = 24 * time.Hour

// Session maps an opaque token to the user holding it.
// It intentionally stores identity pointers only, not auth state.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
// Expiry is delegated to the backing store's TTL support.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
