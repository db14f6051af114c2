package identity

import "context"

// User is the authenticated principal resolved from an access token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier resolves an access token to its user. Implemented by Client;
// declared as an interface so handlers and middleware can be tested without
// a live identity provider.
type Verifier interface {
	GetUser(ctx context.Context, accessToken string) (*User, error)
}

// Ensure Client implements Verifier
var _ Verifier = (*Client)(nil)
