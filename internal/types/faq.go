package types

import (
	"time"
)

type FAQ struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Question  string    `gorm:"column:question;not null" json:"question"`
	Answer    string    `gorm:"column:answer;not null" json:"answer"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (FAQ) TableName() string { return "faq" }
