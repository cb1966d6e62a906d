package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/core/domain"
)

type stubRegionRepo struct {
	regions map[int]domain.Region
	saveErr map[int]error
}

func newStubRegionRepo() *stubRegionRepo {
	return &stubRegionRepo{regions: make(map[int]domain.Region), saveErr: make(map[int]error)}
}

func (r *stubRegionRepo) Save(_ context.Context, region domain.Region) error {
	if err := r.saveErr[region.RegionID]; err != nil {
		return err
	}
	r.regions[region.RegionID] = region
	return nil
}

func (r *stubRegionRepo) FindByID(_ context.Context, regionID int) (*domain.Region, error) {
	region, ok := r.regions[regionID]
	if !ok {
		return nil, nil
	}
	return &region, nil
}

func (r *stubRegionRepo) HasAny(_ context.Context) (bool, error) {
	return len(r.regions) > 0, nil
}

type stubRegionSource struct {
	ids        []int
	idsErr     error
	detailErr  map[int]error
	listCalls  int
	fetchCalls int
}

func newStubRegionSource(ids ...int) *stubRegionSource {
	return &stubRegionSource{ids: ids, detailErr: make(map[int]error)}
}

func (s *stubRegionSource) RegionIDs(_ context.Context) ([]int, error) {
	s.listCalls++
	if s.idsErr != nil {
		return nil, s.idsErr
	}
	return s.ids, nil
}

func (s *stubRegionSource) RegionDetails(_ context.Context, regionID int) (*domain.Region, error) {
	s.fetchCalls++
	if err := s.detailErr[regionID]; err != nil {
		return nil, err
	}
	return &domain.Region{RegionID: regionID, Name: "region", Constellations: []int{regionID * 10}}, nil
}

func newBootstrap(regions *stubRegionRepo, source *stubRegionSource, sessions *stubSessionRepo) *BootstrapService {
	return NewBootstrapService(regions, source, sessions, zerolog.Nop())
}

func TestBootstrapService_ApplyIndexes(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := newBootstrap(newStubRegionRepo(), newStubRegionSource(), sessions)

	if err := svc.ApplyIndexes(context.Background()); err != nil {
		t.Fatalf("ApplyIndexes returned error: %v", err)
	}
	if !sessions.indexApplied {
		t.Fatalf("expected TTL index to be applied on the session repository")
	}
}

func TestBootstrapService_PopulateRegions_EmptyStore(t *testing.T) {
	regions := newStubRegionRepo()
	source := newStubRegionSource(1, 2, 3)
	svc := newBootstrap(regions, source, newStubSessionRepo())

	n, err := svc.PopulateRegions(context.Background(), false)
	if err != nil {
		t.Fatalf("PopulateRegions returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imports, got %d", n)
	}
	if source.listCalls != 1 {
		t.Fatalf("expected one id-list call, got %d", source.listCalls)
	}
	if source.fetchCalls != 3 {
		t.Fatalf("expected one detail fetch per id, got %d", source.fetchCalls)
	}
	if len(regions.regions) != 3 {
		t.Fatalf("expected 3 persisted regions, got %d", len(regions.regions))
	}
}

func TestBootstrapService_PopulateRegions_SkipsWhenPopulated(t *testing.T) {
	regions := newStubRegionRepo()
	regions.regions[42] = domain.Region{RegionID: 42, Name: "existing"}
	source := newStubRegionSource(1, 2)
	svc := newBootstrap(regions, source, newStubSessionRepo())

	n, err := svc.PopulateRegions(context.Background(), false)
	if err != nil {
		t.Fatalf("PopulateRegions returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected zero imports, got %d", n)
	}
	if source.listCalls != 0 || source.fetchCalls != 0 {
		t.Fatalf("expected zero external calls, got list=%d fetch=%d", source.listCalls, source.fetchCalls)
	}
}

func TestBootstrapService_PopulateRegions_ForceBypassesGate(t *testing.T) {
	regions := newStubRegionRepo()
	regions.regions[42] = domain.Region{RegionID: 42, Name: "existing"}
	source := newStubRegionSource(1, 2)
	svc := newBootstrap(regions, source, newStubSessionRepo())

	n, err := svc.PopulateRegions(context.Background(), true)
	if err != nil {
		t.Fatalf("PopulateRegions returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imports, got %d", n)
	}
	if source.listCalls != 1 {
		t.Fatalf("expected id list to be fetched despite existing records")
	}
}

func TestBootstrapService_PopulateRegions_PartialFailureKeepsEarlierSaves(t *testing.T) {
	regions := newStubRegionRepo()
	source := newStubRegionSource(1, 2, 3)
	source.detailErr[2] = errors.New("upstream exploded")
	svc := newBootstrap(regions, source, newStubSessionRepo())

	n, err := svc.PopulateRegions(context.Background(), false)
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	if n != 1 {
		t.Fatalf("expected 1 region imported before failure, got %d", n)
	}
	if _, ok := regions.regions[1]; !ok {
		t.Fatalf("expected region 1 to remain saved")
	}
	if _, ok := regions.regions[3]; ok {
		t.Fatalf("expected import to stop at the failing region")
	}
}
