package services

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wiskoro-bot/models"
)

// InitMongoDB initializes MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")

	return client, nil
}

// ExchangeStore appends chat exchanges to MongoDB. A nil store disables
// logging entirely; every method is nil-safe.
type ExchangeStore struct {
	collection *mongo.Collection
}

// NewExchangeStore creates the store over the chat_exchanges collection.
func NewExchangeStore(client *mongo.Client, databaseName string) *ExchangeStore {
	return &ExchangeStore{
		collection: client.Database(databaseName).Collection("chat_exchanges"),
	}
}

// EnsureIndexes creates the timestamp index used by retention queries.
func (s *ExchangeStore) EnsureIndexes(ctx context.Context) error {
	if s == nil {
		return nil
	}

	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}

// LogExchange inserts one exchange row. Rows are append-only.
func (s *ExchangeStore) LogExchange(ctx context.Context, exchange *models.ChatExchange) error {
	if s == nil {
		return nil
	}

	_, err := s.collection.InsertOne(ctx, exchange)
	return err
}

// Ping verifies the datastore is reachable, for the health endpoint.
func (s *ExchangeStore) Ping(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.collection.Database().Client().Ping(ctx, nil)
}
