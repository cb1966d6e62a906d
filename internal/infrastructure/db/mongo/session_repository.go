package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corphq/api/internal/core/domain"
)

const sessionCollection = "sessions"

// SessionRepository persists login sessions, keyed by token.
type SessionRepository struct {
	repo *Repository[domain.Session]
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{
		repo: NewRepository[domain.Session](db, Settings{
			Collection: sessionCollection,
			Keys:       []string{"token"},
		}),
	}
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	return r.repo.Save(ctx, session)
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	return r.repo.FindByKeys(ctx, bson.M{"token": token})
}

func (r *SessionRepository) Remove(ctx context.Context, token string) error {
	return r.repo.Remove(ctx, domain.Session{Token: token})
}

// ApplyIndexes creates the TTL index on expireAt. Mongo's TTL monitor deletes
// a session within about a minute of its expiry; the 1-second threshold keeps
// the removal as close to the timestamp as the store allows.
func (r *SessionRepository) ApplyIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "expireAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(1),
	}
	if _, err := r.repo.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}
