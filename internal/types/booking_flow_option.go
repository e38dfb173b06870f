package types

import (
	"time"
)

// BookingFlowOption is a directed edge of the flow graph. A nil NextQuestionID
// means the customer's path ends after picking this option. No foreign key is
// declared on NextQuestionID: deleting a question leaves inbound references
// dangling and the assembly tolerates them.
type BookingFlowOption struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	QuestionID     string    `gorm:"column:question_id;not null;index" json:"question_id"`
	OptionTitle    string    `gorm:"column:option_title;not null" json:"option_title"`
	Description    string    `gorm:"column:description" json:"description"`
	Tag            string    `gorm:"column:tag" json:"tag"`
	NextQuestionID *string   `gorm:"column:next_question_id" json:"next_question_id"`
	Order          int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (BookingFlowOption) TableName() string { return "booking_flow_option" }
