package domain

import "time"

type Inspection struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"size:100"`
	HiveID    int64     `json:"hive_id" gorm:"index;not null"`
	Hive      Hive      `json:"-" gorm:"foreignKey:HiveID;constraint:OnDelete:CASCADE"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
