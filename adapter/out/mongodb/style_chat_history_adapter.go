package mongodb

import (
	"context"
	"fmt"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionChatHistory = "chat_history"

// ChatHistoryAdapter implements out.ChatHistoryRepository using MongoDB.
type ChatHistoryAdapter struct {
	collection *mongo.Collection
}

// NewChatHistoryAdapter creates a new MongoDB chat history adapter.
func NewChatHistoryAdapter(db *mongo.Database) *ChatHistoryAdapter {
	return &ChatHistoryAdapter{collection: db.Collection(collectionChatHistory)}
}

var _ out.ChatHistoryRepository = (*ChatHistoryAdapter)(nil)

// EnsureIndexes creates necessary indexes for the collection.
func (a *ChatHistoryAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	return err
}

// chatDocument represents the MongoDB document structure.
type chatDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    int64              `bson:"user_id"`
	Message   string             `bson:"message"`
	Response  string             `bson:"response"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *chatDocument) toDomain() domain.ChatExchange {
	return domain.ChatExchange{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Message:   d.Message,
		Response:  d.Response,
		Timestamp: d.CreatedAt,
	}
}

func (a *ChatHistoryAdapter) Append(ctx context.Context, exchange *domain.ChatExchange) error {
	if exchange.Timestamp.IsZero() {
		exchange.Timestamp = time.Now().UTC()
	}

	doc := chatDocument{
		ID:        primitive.NewObjectID(),
		UserID:    exchange.UserID,
		Message:   exchange.Message,
		Response:  exchange.Response,
		CreatedAt: exchange.Timestamp,
	}
	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert chat exchange: %w", err)
	}

	exchange.ID = doc.ID.Hex()
	return nil
}

// ListByUser returns the newest exchanges first.
func (a *ChatHistoryAdapter) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := a.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find chat history: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []chatDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode chat history: %w", err)
	}

	exchanges := make([]domain.ChatExchange, len(docs))
	for i := range docs {
		exchanges[i] = docs[i].toDomain()
	}
	return exchanges, nil
}
