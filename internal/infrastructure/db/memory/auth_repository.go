// Package memory holds process-lifetime stores. Nothing here survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/flexfit/fitness-buddy/internal/core/domain"
)

// AuthRepository keeps users in a map keyed by username.
type AuthRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{users: make(map[string]domain.User)}
}

func (r *AuthRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Username] = *user

	created := *user
	return &created, nil
}

func (r *AuthRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	u, ok := r.users[username]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}
