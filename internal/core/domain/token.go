package domain

// TokenPayload is the verified content of a bearer token. The subject is
// always a customer id; mechanics have no login of their own.
type TokenPayload struct {
	CustomerID int64
}
