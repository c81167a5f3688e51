package user_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kweenDev/alx-files-manager/internal/user"
)

type fakeRepo struct {
	byEmail map[string]*user.User
	byID    map[string]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[string]*user.User),
	}
}

func (r *fakeRepo) Create(ctx context.Context, u *user.User) error {
	u.ID = primitive.NewObjectID()
	r.byEmail[u.Email] = u
	r.byID[u.ID.Hex()] = u
	return nil
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.byID[id], nil
}

func TestService_Register(t *testing.T) {
	testCases := []struct {
		name     string
		seed     []string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "happy path",
			email:    "alice@example.com",
			password: "pw123",
		},
		{
			name:     "missing email",
			password: "pw123",
			wantErr:  user.ErrMissingEmail,
		},
		{
			name:    "missing password",
			email:   "alice@example.com",
			wantErr: user.ErrMissingPassword,
		},
		{
			name:     "duplicate email",
			seed:     []string{"alice@example.com"},
			email:    "alice@example.com",
			password: "pw123",
			wantErr:  user.ErrAlreadyExists,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := user.NewService(repo)

			for _, email := range tt.seed {
				if _, err := svc.Register(context.Background(), email, "seed-pw"); err != nil {
					t.Fatalf("seeding %s failed: %v", email, err)
				}
			}

			u, err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() failed unexpectedly: %v", err)
			}
			if u.ID.IsZero() {
				t.Error("Register() returned a zero id")
			}
			if u.Email != tt.email {
				t.Errorf("Register() email = %q, want %q", u.Email, tt.email)
			}
			if u.Password == tt.password {
				t.Error("Register() stored the plaintext password")
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	repo := newFakeRepo()
	svc := user.NewService(repo)

	registered, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		id, err := svc.Authenticate(context.Background(), "alice@example.com", "pw123")
		if err != nil {
			t.Fatalf("Authenticate() failed: %v", err)
		}
		if id != registered.ID.Hex() {
			t.Errorf("Authenticate() id = %q, want %q", id, registered.ID.Hex())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice@example.com", "nope")
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Fatalf("Authenticate() error = %v, want %v", err, user.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "bob@example.com", "pw123")
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Fatalf("Authenticate() error = %v, want %v", err, user.ErrInvalidCredentials)
		}
	})
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := user.NewService(repo)

	registered, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), registered.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("GetByID() email = %q", got.Email)
	}

	if _, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want %v", err, user.ErrNotFound)
	}
}
