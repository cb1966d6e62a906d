package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corphq/api/internal/core/domain"
)

// Settings declares the identity of a repository: the collection it owns and
// the document fields that uniquely key a record within it.
type Settings struct {
	Collection string
	Keys       []string
}

// Repository implements generic key-validated CRUD over one collection. Each
// entity wraps it with its own Settings instead of subclassing anything; the
// key-field list drives both validation and filter construction.
type Repository[T any] struct {
	coll *mongo.Collection
	keys []string
}

func NewRepository[T any](db *mongo.Database, s Settings) *Repository[T] {
	return &Repository[T]{coll: db.Collection(s.Collection), keys: s.Keys}
}

// Save upserts item: the existing record matching the key fields is replaced,
// or a new one inserted when none matches. Every declared key field must be
// present in the document.
func (r *Repository[T]) Save(ctx context.Context, item T) error {
	doc, err := toDocument(item)
	if err != nil {
		return err
	}
	filter, err := keyFilter(doc, r.keys)
	if err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, item, opts); err != nil {
		return fmt.Errorf("upsert %s: %w", r.coll.Name(), err)
	}
	return nil
}

// FindByKeys loads the record matching keys, which must cover every declared
// key field. Absence is reported as (nil, nil).
func (r *Repository[T]) FindByKeys(ctx context.Context, keys bson.M) (*T, error) {
	filter, err := keyFilter(keys, r.keys)
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	return &out, nil
}

// Remove deletes the record matching item's key fields. Non-key fields are
// ignored for the delete filter, and deleting a missing record succeeds.
func (r *Repository[T]) Remove(ctx context.Context, item T) error {
	doc, err := toDocument(item)
	if err != nil {
		return err
	}
	filter, err := keyFilter(doc, r.keys)
	if err != nil {
		return err
	}

	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	return nil
}

// HasAny reports whether the collection holds at least one record.
func (r *Repository[T]) HasAny(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", r.coll.Name(), err)
	}
	return n > 0, nil
}

// toDocument round-trips item through bson so key fields can be inspected by
// their wire names.
func toDocument(item any) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

// keyFilter builds the identity filter from doc, failing with a
// MissingKeyError naming the first declared key that is absent.
func keyFilter(doc bson.M, keys []string) (bson.M, error) {
	filter := bson.M{}
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			return nil, &domain.MissingKeyError{Key: key}
		}
		filter[key] = value
	}
	return filter, nil
}
