package services

import (
	"context"
	"fmt"
	"time"

	"restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// menuDocument is one item in the menu_items collection. Amounts are stored
// as decimal strings so they round-trip exactly.
type menuDocument struct {
	Name     string `bson:"_id"`
	Price    string `bson:"price"`
	Tax      string `bson:"tax"`
	Tip      string `bson:"tip"`
	Category string `bson:"category"`
}

// MongoStore keeps the catalog in a MongoDB collection, one document per item.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection("menu_items"),
		timeout:    10 * time.Second,
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) (map[string]models.MenuEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find menu_items: %w", ErrStorageIO, err)
	}
	defer cursor.Close(ctx)

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode menu_items: %w", ErrStorageParse, err)
	}

	items := make(map[string]models.MenuEntry, len(docs))
	for _, d := range docs {
		entry, err := parseEntry(d.Price, d.Tax, d.Tip, d.Category)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", d.Name, err)
		}
		items[d.Name] = entry
	}
	return items, nil
}

func (s *MongoStore) Save(ctx context.Context, items map[string]models.MenuEntry) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("%w: clear menu_items: %w", ErrStorageIO, err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(items))
	for name, e := range items {
		docs = append(docs, menuDocument{
			Name:     name,
			Price:    e.Price.String(),
			Tax:      e.Tax.String(),
			Tip:      e.Tip.String(),
			Category: e.Category,
		})
	}
	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: insert menu_items: %w", ErrStorageIO, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
