package domain

// Customer owns zero or more service tickets. The password is stored and
// compared as an opaque exact-match credential.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"required,max=15"`
	Password string `json:"-" validate:"required,max=255"`
}
