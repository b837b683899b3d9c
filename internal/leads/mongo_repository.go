package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// namespace is the database/collection pair a category persists into. The
// names match the site's existing data, one database per lead category.
type namespace struct {
	database   string
	collection string
}

var namespaces = map[Category]namespace{
	CategoryCallback:    {database: "callback_requests", collection: "requests"},
	CategoryROIEmail:    {database: "roi_requests", collection: "emails"},
	CategoryAuditReport: {database: "website_audits", collection: "report_requests"},
}

// MongoRepository stores leads in the hosted document store. The client is
// injected and pooled; it is never opened or closed per call.
type MongoRepository struct {
	client *mongo.Client
}

// NewMongoRepository initializes a repo backed by a connected mongo client.
func NewMongoRepository(client *mongo.Client) *MongoRepository {
	if client == nil {
		panic("leads: mongo client required")
	}
	return &MongoRepository{client: client}
}

// EnsureIndexes creates the unique index that enforces at-most-one roi_email
// lead per address. Concurrent submissions with the same email race past the
// handler's pre-check; the index is what actually holds the invariant.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	coll := r.collection(CategoryROIEmail)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("leads: create unique email index: %w", err)
	}
	return nil
}

// Insert persists one document, assigning createdAt server-side.
func (r *MongoRepository) Insert(ctx context.Context, category Category, lead *Lead) (string, error) {
	coll := r.collection(category)
	lead.CreatedAt = time.Now().UTC()

	res, err := coll.InsertOne(ctx, lead)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("%w: insert: %v", ErrStoreUnavailable, err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", ErrStoreUnavailable, res.InsertedID)
	}
	lead.ID = id.Hex()
	return lead.ID, nil
}

// ExistsByEmail checks for a prior lead with this email in the category.
func (r *MongoRepository) ExistsByEmail(ctx context.Context, category Category, email string) (bool, error) {
	coll := r.collection(category)
	err := coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("%w: find: %v", ErrStoreUnavailable, err)
	}
}

func (r *MongoRepository) collection(category Category) *mongo.Collection {
	ns := namespaces[category]
	return r.client.Database(ns.database).Collection(ns.collection)
}
