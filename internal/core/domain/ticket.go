package domain

import "time"

// ServiceTicket is a unit of shop work on a vehicle. Mechanics and Parts
// carry the current association rows, loaded with explicit join queries.
type ServiceTicket struct {
	ID          int64      `json:"id"`
	VIN         string     `json:"vin" validate:"required,max=50"`
	ServiceDate time.Time  `json:"service_date" validate:"required"`
	ServiceDesc string     `json:"service_desc" validate:"required,max=255"`
	CustomerID  int64      `json:"customer_id" validate:"required,min=1"`
	Mechanics   []Mechanic `json:"mechanics"`
	Parts       []Part     `json:"parts"`
}
