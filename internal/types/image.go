package types

import (
	"time"
)

type Image struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Image) TableName() string { return "image" }
