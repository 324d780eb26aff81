package mongodb

import (
	"context"
	"testing"
	"time"

	"style_server/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestChatHistoryAdapter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("append sets id", func(mt *mtest.T) {
		repo := NewChatHistoryAdapter(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		ex := &domain.ChatExchange{UserID: 1, Message: "What shoes?", Response: "White sneakers."}
		if err := repo.Append(context.Background(), ex); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(ex.ID); err != nil {
			t.Errorf("ID %q is not an ObjectID", ex.ID)
		}
		if ex.Timestamp.IsZero() {
			t.Error("Append() should stamp the exchange")
		}
	})

	mt.Run("list decodes newest first", func(mt *mtest.T) {
		repo := NewChatHistoryAdapter(mt.DB)
		ns := mt.DB.Name() + "." + collectionChatHistory

		newer := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
		older := newer.Add(-5 * time.Minute)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "user_id", Value: int64(1)},
				{Key: "message", Value: "second"},
				{Key: "response", Value: "re: second"},
				{Key: "created_at", Value: newer},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "user_id", Value: int64(1)},
				{Key: "message", Value: "first"},
				{Key: "response", Value: "re: first"},
				{Key: "created_at", Value: older},
			},
		))

		got, err := repo.ListByUser(context.Background(), 1, 50)
		if err != nil {
			t.Fatalf("ListByUser() error = %v", err)
		}
		if len(got) != 2 || got[0].Message != "second" || got[1].Message != "first" {
			t.Fatalf("got %+v", got)
		}
		if !got[0].Timestamp.Equal(newer) {
			t.Errorf("Timestamp = %v, want %v", got[0].Timestamp, newer)
		}
	})
}
