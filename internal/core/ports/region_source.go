package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// RegionSource is the external authoritative origin of region reference data.
type RegionSource interface {
	RegionIDs(ctx context.Context) ([]int, error)
	RegionDetails(ctx context.Context, regionID int) (*domain.Region, error)
}
