package domain

import "time"

type Hive struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:100"`
	ApiaryID    int64     `json:"apiary_id" gorm:"index;not null"`
	Apiary      Apiary    `json:"-" gorm:"foreignKey:ApiaryID;constraint:OnDelete:CASCADE"`
	UserID      int64     `json:"user_id" gorm:"index;not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
