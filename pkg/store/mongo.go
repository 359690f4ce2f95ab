package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/manifest"
)

const manifestCollection = "manifests"

// MongoStore persists manifests in a MongoDB collection, one document per
// event, replaced wholesale on each save.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies the connection, and ensures
// the event-id index.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "pinging mongodb")
	}

	col := client.Database(database).Collection(manifestCollection)
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "creating event_id index")
	}

	return &MongoStore{client: client, col: col}, nil
}

// Save upserts the manifest under its event id.
func (s *MongoStore) Save(ctx context.Context, m *manifest.Manifest) error {
	if m == nil || m.EventID == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest requires an event id to be saved")
	}
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"event_id": m.EventID},
		m,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "saving manifest %s", m.EventID)
	}
	return nil
}

// Load returns the manifest for the event.
func (s *MongoStore) Load(ctx context.Context, eventID string) (*manifest.Manifest, error) {
	var m manifest.Manifest
	err := s.col.FindOne(ctx, bson.M{"event_id": eventID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "no manifest for event %s", eventID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "loading manifest %s", eventID)
	}
	return &m, nil
}

// List returns up to limit summaries, most recently updated first.
func (s *MongoStore) List(ctx context.Context, limit int) ([]Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "update_time", Value: -1}}).
		SetProjection(bson.M{"place_ids": 0, "places": 0})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "listing manifests")
	}
	defer cur.Close(ctx)

	var out []Summary
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decoding manifest summaries")
	}
	return out, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
