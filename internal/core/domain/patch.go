package domain

// Patch types carry partial updates. Nil fields keep the stored value;
// set fields overwrite it, including explicit empty strings.

type CustomerPatch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Password *string `json:"password,omitempty" validate:"omitempty,max=255"`
}

type MechanicPatch struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,max=50"`
	Email  *string  `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone  *string  `json:"phone,omitempty" validate:"omitempty,max=15"`
	Salary *float64 `json:"salary,omitempty"`
}

type PartPatch struct {
	Name  *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	Price *float64 `json:"price,omitempty"`
}
