package domain

// Part is a stocked inventory item that can be attached to service tickets.
type Part struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name" validate:"required,max=120"`
	Price float64 `json:"price"`
}
