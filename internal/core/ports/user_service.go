package ports

import "context"

// Registration is the inbound payload for creating a user account.
type Registration struct {
	Username string
	Password string
	Email    string
}

type UserService interface {
	// Register hashes the password and persists the new account. A missing or
	// empty required field yields a *domain.ValidationError naming it.
	Register(ctx context.Context, r Registration) error
	// Authenticate reports whether the credentials match a stored account.
	// An unknown username and a wrong password are indistinguishable: both
	// return (false, nil).
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
