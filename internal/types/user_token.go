package types

import (
	"time"
)

type UserToken struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	UserID       string    `gorm:"column:user_id;not null;index" json:"user_id"`
	AccessToken  string    `gorm:"column:access_token;not null" json:"-"`
	RefreshToken string    `gorm:"column:refresh_token;not null;index" json:"-"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserToken) TableName() string { return "user_token" }
