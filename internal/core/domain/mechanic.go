package domain

type Mechanic struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name" validate:"required,max=50"`
	Email  string  `json:"email" validate:"required,email,max=100"`
	Phone  string  `json:"phone" validate:"required,max=15"`
	Salary float64 `json:"salary"`
}

// MechanicRank pairs a mechanic with the number of tickets currently
// linked to them, for the most-active ranking.
type MechanicRank struct {
	Mechanic    Mechanic `json:"mechanic"`
	TicketCount int64    `json:"ticket_count"`
}
