package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/repository"
)

// SessionService owns the session state machine: Active -> Expired or
// Active -> Revoked, both terminal. It is the only writer of session records.
// Lifetime policy (how long a session lives) belongs to the caller; this
// service only enforces the stored expiry.
type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) CreateSession(ctx context.Context, sessionID string, userID int64, refreshToken string, expiresAt time.Time) error {
	return s.store.Create(ctx, &domain.Session{
		ID:               sessionID,
		UserID:           userID,
		LastRefreshToken: refreshToken,
		InitiatedAt:      time.Now().UTC(),
		ExpiresAt:        expiresAt,
	})
}

// IsSessionValid reports whether the presented refresh token is the current
// token of a live session. It is checked before any claim inside the token is
// trusted: a valid signature only proves the token was issued at some point,
// not that it is still the latest one.
//
// A missing session and a garbage session id are indistinguishable from an
// expired one: all come back (false, nil). Only store faults surface as errors.
func (s *SessionService) IsSessionValid(ctx context.Context, sessionID, presentedToken string) (bool, error) {
	sess, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if sess.Revoked {
		return false, nil
	}
	if sess.IsExpired(time.Now()) {
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(sess.LastRefreshToken), []byte(presentedToken)) != 1 {
		// Stale or replayed token from before the last rotation.
		return false, nil
	}
	return true, nil
}

// ExtendSession is the rotation step. It overwrites the stored refresh token
// and expiry in one compare-and-set keyed on currentToken; the moment it
// succeeds, currentToken is permanently unusable even though it has not
// expired. A concurrent rotation that lost the race gets
// repository.ErrTokenMismatch.
func (s *SessionService) ExtendSession(ctx context.Context, sessionID, currentToken, newToken string, newExpiresAt time.Time) error {
	return s.store.UpdateRefreshToken(ctx, sessionID, currentToken, newToken, newExpiresAt)
}

// InvalidateSession revokes the session unconditionally. Terminal; no token
// value makes the session valid again.
func (s *SessionService) InvalidateSession(ctx context.Context, sessionID string) error {
	return s.store.Revoke(ctx, sessionID)
}
