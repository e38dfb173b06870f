package types

import (
	"time"
)

type Review struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Comment    string    `gorm:"column:comment;not null" json:"comment"`
	IsApproved bool      `gorm:"column:is_approved;not null;default:false" json:"is_approved"`
	ReviewDate time.Time `gorm:"column:review_date" json:"review_date"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Review) TableName() string { return "review" }
