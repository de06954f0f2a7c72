package ports

import (
	"context"

	"github.com/flexfit/fitness-buddy/internal/core/domain"
)

// AuthRepository defines the credential store.
type AuthRepository interface {
	// FindByUsername returns domain.ErrUserNotFound for unknown usernames.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrUserExists when the username is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// PasswordHasher produces and checks password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
