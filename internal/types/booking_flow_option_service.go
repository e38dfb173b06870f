package types

// BookingFlowOptionService links an option to one of the services it books.
// The pair is the whole identity; link replacement keeps at most one row per
// (option, service) pair.
type BookingFlowOptionService struct {
	OptionID  string `gorm:"primaryKey;column:option_id" json:"option_id"`
	ServiceID string `gorm:"primaryKey;column:service_id" json:"service_id"`
}

func (BookingFlowOptionService) TableName() string { return "booking_flow_option_service" }
