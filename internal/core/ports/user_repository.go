package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// UserRepository defines the persistence contract for user credentials.
// FindByUsername returns (nil, nil) when no such user exists; absence is not
// an error.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
