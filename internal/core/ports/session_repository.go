package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// SessionRepository defines the persistence contract for login sessions.
type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// Remove deletes the session matching the token. Removing a token that
	// does not exist is a no-op, not an error.
	Remove(ctx context.Context, token string) error
	// ApplyIndexes establishes the store-side TTL expiry on expireAt.
	ApplyIndexes(ctx context.Context) error
}
