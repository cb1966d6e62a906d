package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/core/ports"
)

// BootstrapService coordinates one-time data-store preparation: session TTL
// indexes and the initial region import.
type BootstrapService struct {
	regions  ports.RegionRepository
	source   ports.RegionSource
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewBootstrapService(
	regions ports.RegionRepository,
	source ports.RegionSource,
	sessions ports.SessionRepository,
	log zerolog.Logger,
) *BootstrapService {
	return &BootstrapService{
		regions:  regions,
		source:   source,
		sessions: sessions,
		log:      log,
	}
}

// ApplyIndexes delegates to the session repository's TTL index setup.
func (s *BootstrapService) ApplyIndexes(ctx context.Context) error {
	return s.sessions.ApplyIndexes(ctx)
}

// PopulateRegions imports region reference data from the external source.
// The import is presence-gated: any existing record short-circuits it unless
// force is set. Regions are fetched and saved one by one, so a failure part
// way through leaves the earlier saves in place; re-running with force=true
// upserts them again by regionId.
func (s *BootstrapService) PopulateRegions(ctx context.Context, force bool) (int, error) {
	if !force {
		populated, err := s.regions.HasAny(ctx)
		if err != nil {
			return 0, fmt.Errorf("check regions: %w", err)
		}
		if populated {
			s.log.Debug().Msg("regions already populated, skipping import")
			return 0, nil
		}
	}

	ids, err := s.source.RegionIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list regions: %w", err)
	}

	imported := 0
	for _, id := range ids {
		region, err := s.source.RegionDetails(ctx, id)
		if err != nil {
			return imported, fmt.Errorf("fetch region %d: %w", id, err)
		}
		if err := s.regions.Save(ctx, *region); err != nil {
			return imported, fmt.Errorf("save region %d: %w", id, err)
		}
		imported++
	}

	s.log.Info().Int("regions", imported).Msg("region import complete")
	return imported, nil
}
