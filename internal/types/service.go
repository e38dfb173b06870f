package types

import (
	"time"
)

type Service struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	Name               string    `gorm:"column:name;not null" json:"name"`
	Description        string    `gorm:"column:description" json:"description"`
	Price              int       `gorm:"column:price;not null;default:0" json:"price"`
	Duration           int       `gorm:"column:duration;not null;default:0" json:"duration"`
	PreBufferMinutes   int       `gorm:"column:pre_buffer_minutes;not null;default:0" json:"pre_buffer_minutes"`
	PostBufferMinutes  int       `gorm:"column:post_buffer_minutes;not null;default:0" json:"post_buffer_minutes"`
	OverridePreBuffer  bool      `gorm:"column:override_pre_buffer;not null;default:false" json:"override_pre_buffer"`
	OverridePostBuffer bool      `gorm:"column:override_post_buffer;not null;default:false" json:"override_post_buffer"`
	ShowOnWebsite      bool      `gorm:"column:show_on_website;not null;default:false" json:"show_on_website"`
	CreatedAt          time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Service) TableName() string { return "service" }
