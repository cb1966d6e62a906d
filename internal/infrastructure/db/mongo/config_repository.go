package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corphq/api/internal/core/domain"
)

const configCollection = "config"

// ConfigRepository persists operational key/value settings.
type ConfigRepository struct {
	repo *Repository[domain.ConfigEntry]
}

func NewConfigRepository(db *mongo.Database) *ConfigRepository {
	return &ConfigRepository{
		repo: NewRepository[domain.ConfigEntry](db, Settings{
			Collection: configCollection,
			Keys:       []string{"key"},
		}),
	}
}

func (r *ConfigRepository) Save(ctx context.Context, entry domain.ConfigEntry) error {
	return r.repo.Save(ctx, entry)
}

// Value returns the stored value for key, or "" when no entry exists.
func (r *ConfigRepository) Value(ctx context.Context, key string) (string, error) {
	entry, err := r.repo.FindByKeys(ctx, bson.M{"key": key})
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", nil
	}
	return entry.Value, nil
}
