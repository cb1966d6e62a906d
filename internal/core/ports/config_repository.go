package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// ConfigRepository defines the persistence contract for operational settings.
type ConfigRepository interface {
	Save(ctx context.Context, entry domain.ConfigEntry) error
	// Value returns the stored value for key, or "" when no entry exists.
	Value(ctx context.Context, key string) (string, error)
}
