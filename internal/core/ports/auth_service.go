package ports

import (
	"context"
	"time"

	"github.com/flexfit/fitness-buddy/internal/core/domain"
)

// Token is a signed bearer token handed to API clients.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	IssueToken(ctx context.Context, username, password string) (*Token, error)
	ParseToken(token string) (string, error)
}
