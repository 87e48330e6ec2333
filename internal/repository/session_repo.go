package repository

import (
	"context"
	"errors"
	"time"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

var (
	// ErrSessionExists signals a duplicate session id on create. Session ids are
	// random, so hitting this means either an id collision or a caller bug; it is
	// an operational fault, not an authentication failure.
	ErrSessionExists = errors.New("session already exists")

	ErrSessionNotFound = errors.New("session not found")

	// ErrTokenMismatch means the equality-checked rotation update matched no row:
	// the presented refresh token is no longer the latest one for the session.
	ErrTokenMismatch = errors.New("refresh token mismatch")
)

// SessionRepository provides DB access for login sessions.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if err == nil {
		return nil
	}
	// Dialects report PK violations differently; probe for the row instead.
	var existing domain.Session
	if probeErr := r.db.WithContext(ctx).Select("id").Where("id = ?", s.ID).First(&existing).Error; probeErr == nil {
		return ErrSessionExists
	}
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateRefreshToken rotates the stored refresh token with a single
// equality-checked UPDATE. The WHERE clause pins the current token, so of two
// concurrent rotations carrying the same stale token exactly one can win; the
// loser gets ErrTokenMismatch.
func (r *SessionRepository) UpdateRefreshToken(ctx context.Context, id, currentToken, newToken string, newExpiresAt time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ? AND last_refresh_token = ? AND revoked = ?", id, currentToken, false).
		Updates(map[string]any{
			"last_refresh_token": newToken,
			"expires_at":         newExpiresAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrTokenMismatch
	}
	return nil
}

// Revoke marks the session revoked. Revoking an already-revoked or missing
// session is a no-op success; logout must not fail on stale state.
func (r *SessionRepository) Revoke(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}

// DeleteExpired removes sessions past their expiry. Used by the cleanup binary.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}

// DeleteRevokedBefore removes revoked sessions initiated before the cutoff.
func (r *SessionRepository) DeleteRevokedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("revoked = ? AND initiated_at < ?", true, cutoff).
		Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}
