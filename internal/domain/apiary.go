package domain

import "time"

type Apiary struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Location    string    `json:"location" gorm:"size:100"`
	Description string    `json:"description" gorm:"size:100"`
	UserID      int64     `json:"user_id" gorm:"index;not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
