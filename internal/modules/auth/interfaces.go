package auth

import (
	"context"
	"time"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/pkg/token"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// SessionStore — persistence contract for login sessions. The production
// implementation is repository.SessionRepository; tests use an in-memory one.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// UpdateRefreshToken must be an atomic compare-and-set on currentToken so
	// concurrent rotations cannot both succeed.
	UpdateRefreshToken(ctx context.Context, id, currentToken, newToken string, newExpiresAt time.Time) error
	Revoke(ctx context.Context, id string) error
}

type tokenCodec interface {
	CreateAccessToken(username string, userID int64, roles []string) (string, error)
	CreateRefreshToken(sessionID string, userID int64, expiresAt time.Time) (string, error)
	TryParseRefreshToken(raw string) (token.RefreshClaims, bool)
}
