package user

// Principal is the authenticated identity attached to a request after token
// introspection.
type Principal struct {
	UserID string
	Email  string
}
