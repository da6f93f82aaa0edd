// internal/app/store/leads/leadstore.go
package leadstore

import (
	"context"
	"time"

	"github.com/sovramarkets/sovrasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the leads collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new lead store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("leads")}
}

// Insert persists a new lead. ID, status, and creation time are assigned
// here; callers fill in the rest.
func (s *Store) Insert(ctx context.Context, lead models.Lead) (models.Lead, error) {
	lead.ID = primitive.NewObjectID()
	lead.Status = models.LeadStatusNew
	lead.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, lead); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// MarkForwarded records that the lead reached the form processor.
func (s *Store) MarkForwarded(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"forwarded": true}}
	_, err := s.c.UpdateOne(ctx, filter, update)
	return err
}

// GetByReference returns the lead with the given public reference.
func (s *Store) GetByReference(ctx context.Context, reference string) (models.Lead, error) {
	var lead models.Lead
	err := s.c.FindOne(ctx, bson.M{"reference": reference}).Decode(&lead)
	if err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// ListRecent returns the newest leads, most recent first.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var leads []models.Lead
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// CountSince returns how many leads arrived at or after the given time.
// Used by the health/status surface and by ops tooling.
func (s *Store) CountSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": since}}
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates the indexes the store relies on. Called from
// bootstrap's schema hook.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
