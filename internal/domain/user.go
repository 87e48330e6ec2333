package domain

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleBeekeeper UserRole = "beekeeper"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	Role         UserRole  `json:"role" gorm:"size:32;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleList expands the stored role into the role claims carried by access tokens.
// Admins also hold the beekeeper role, so admin tokens pass beekeeper-level guards.
func (u *User) RoleList() []string {
	if u.Role == RoleAdmin {
		return []string{string(RoleAdmin), string(RoleBeekeeper)}
	}
	return []string{string(u.Role)}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
