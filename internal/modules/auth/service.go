package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the business logic for accounts and the token lifecycle.
type Service struct {
	users      UserRepositoryInterface
	sessions   *SessionService
	codec      tokenCodec
	sessionTTL time.Duration
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func NewService(users UserRepositoryInterface, sessions *SessionService, codec tokenCodec, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		codec:      codec,
		sessionTTL: sessionTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleBeekeeper,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials, starts a session, and mints the token pair.
// The refresh token is handed back as a value; cookie delivery is the
// handler's job.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(s.sessionTTL)

	refreshToken, err := s.codec.CreateRefreshToken(sessionID, user.ID, expiresAt)
	if err != nil {
		return nil, err
	}
	accessToken, err := s.codec.CreateAccessToken(user.Username, user.ID, user.RoleList())
	if err != nil {
		return nil, err
	}

	if err := s.sessions.CreateSession(ctx, sessionID, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Refresh rotates the session's refresh token and issues a fresh access token.
//
// The presented token is validated against the stored session before any of
// its claims are acted on, and the rotation itself is a compare-and-set, so a
// replayed pre-rotation token fails here no matter how well-formed it is.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*RefreshResult, error) {
	claims, ok := s.codec.TryParseRefreshToken(refreshRaw)
	if !ok {
		return nil, ErrUnauthorized
	}

	valid, err := s.sessions.IsSessionValid(ctx, claims.SessionID, refreshRaw)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	newExpiresAt := time.Now().Add(s.sessionTTL)
	newRefresh, err := s.codec.CreateRefreshToken(claims.SessionID, user.ID, newExpiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.ExtendSession(ctx, claims.SessionID, refreshRaw, newRefresh, newExpiresAt); err != nil {
		if errors.Is(err, repository.ErrTokenMismatch) || errors.Is(err, repository.ErrSessionNotFound) {
			// Lost a rotation race, or the session vanished underneath us.
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	accessToken, err := s.codec.CreateAccessToken(user.Username, user.ID, user.RoleList())
	if err != nil {
		return nil, err
	}

	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresAt:    newExpiresAt,
	}, nil
}

// Logout invalidates the session named by the token, even when the token is
// stale relative to the last rotation: logout intent does not require holding
// the newest token. An unparseable token is treated as success; there is
// nothing trustworthy to invalidate.
func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	claims, ok := s.codec.TryParseRefreshToken(refreshRaw)
	if !ok {
		return nil
	}
	return s.sessions.InvalidateSession(ctx, claims.SessionID)
}

// ListUsers returns every account. Admin-only; the route guard lives in the
// middleware, not here.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
