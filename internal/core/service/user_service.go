package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/core/ports"
)

// UserService implements registration and credential verification.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new account. The password is run through bcrypt with a
// fresh random salt; only the hash is handed to the repository.
func (s *UserService) Register(ctx context.Context, r ports.Registration) error {
	required := []struct {
		key   string
		value string
	}{
		{"username", r.Username},
		{"password", r.Password},
		{"email", r.Email},
	}
	for _, f := range required {
		if f.value == "" {
			return &domain.ValidationError{Field: f.key}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username:     r.Username,
		PasswordHash: string(hash),
		Email:        r.Email,
	}
	return s.users.Save(ctx, user)
}

// Authenticate verifies the supplied password against the stored hash. An
// unknown username returns (false, nil) so callers cannot tell absence from
// a wrong password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}
