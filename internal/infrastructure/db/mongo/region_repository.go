package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corphq/api/internal/core/domain"
)

const regionCollection = "regions"

// RegionRepository persists static region reference data, keyed by regionId.
// It lives in the static-data database, not the application database.
type RegionRepository struct {
	repo *Repository[domain.Region]
}

func NewRegionRepository(db *mongo.Database) *RegionRepository {
	return &RegionRepository{
		repo: NewRepository[domain.Region](db, Settings{
			Collection: regionCollection,
			Keys:       []string{"regionId"},
		}),
	}
}

func (r *RegionRepository) Save(ctx context.Context, region domain.Region) error {
	return r.repo.Save(ctx, region)
}

func (r *RegionRepository) FindByID(ctx context.Context, regionID int) (*domain.Region, error) {
	return r.repo.FindByKeys(ctx, bson.M{"regionId": regionID})
}

func (r *RegionRepository) HasAny(ctx context.Context) (bool, error) {
	return r.repo.HasAny(ctx)
}
