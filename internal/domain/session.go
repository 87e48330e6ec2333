package domain

import "time"

// Session anchors a refresh-token lineage to a user.
//
// Security notes:
//   - LastRefreshToken always holds the most recently issued refresh token for
//     this session. A presented token that does not match it is rejected even if
//     its signature and expiry are fine; that is how replays of rotated tokens
//     are caught.
//   - Revoked is terminal. Nothing ever flips it back to false.
type Session struct {
	ID               string    `json:"id" gorm:"primaryKey;size:36"`
	UserID           int64     `json:"user_id" gorm:"index;not null"`
	User             User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LastRefreshToken string    `json:"-" gorm:"not null"`
	InitiatedAt      time.Time `json:"initiated_at"`
	ExpiresAt        time.Time `json:"expires_at" gorm:"index;not null"`
	Revoked          bool      `json:"revoked" gorm:"not null;default:false"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
