package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corphq/api/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists user credentials, keyed by username.
type UserRepository struct {
	repo *Repository[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		repo: NewRepository[domain.User](db, Settings{
			Collection: userCollection,
			Keys:       []string{"username"},
		}),
	}
}

func (r *UserRepository) Save(ctx context.Context, user domain.User) error {
	return r.repo.Save(ctx, user)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.repo.FindByKeys(ctx, bson.M{"username": username})
}
