package domain

import "errors"

// RoleUser is the role assigned to every freshly created session. Roles are a
// single flat string; there is no hierarchy behind them.
const RoleUser = "user"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// User models a registered account. PasswordHash holds the salted bcrypt
// output; the plaintext password is never persisted anywhere.
type User struct {
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Email        string `bson:"email" json:"email"`
}
