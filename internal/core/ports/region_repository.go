package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// RegionRepository defines the persistence contract for static region data.
type RegionRepository interface {
	Save(ctx context.Context, region domain.Region) error
	FindByID(ctx context.Context, regionID int) (*domain.Region, error)
	// HasAny reports whether at least one region record exists. It gates the
	// bootstrap import: a populated collection is never re-imported unless
	// forced.
	HasAny(ctx context.Context) (bool, error)
}
