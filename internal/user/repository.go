package user

import "context"

// Repository persists user records in the document store.
// Lookups return (nil, nil) when no matching record exists.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
