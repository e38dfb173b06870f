package types

import (
	"time"
)

// StartQuestionID is the reserved entry point of the booking flow. The row is
// synthesized on first read if an operator has not created it.
const StartQuestionID = "start"

type BookingFlowQuestion struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (BookingFlowQuestion) TableName() string { return "booking_flow_question" }
