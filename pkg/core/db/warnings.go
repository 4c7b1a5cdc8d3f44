package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Warning is an immutable strike record. The count for a (user, chat) pair is
// always derived by counting matching records, never stored.
type Warning struct {
	UserID    int64     `bson:"user_id"`
	ChatID    int64     `bson:"chat_id"`
	WarnerID  int64     `bson:"warner_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// AddWarning appends a warning record and returns the new total warning count
// for the warned user in that chat.
func (db *Database) AddWarning(ctx context.Context, userID, chatID, warnerID int64) (int64, error) {
	_, err := db.WarnDB.InsertOne(ctx, Warning{
		UserID:    userID,
		ChatID:    chatID,
		WarnerID:  warnerID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return 0, err
	}

	return db.WarnDB.CountDocuments(ctx, bson.M{"user_id": userID, "chat_id": chatID})
}

// GetWarningCount returns the number of warnings recorded for a (user, chat) pair.
func (db *Database) GetWarningCount(ctx context.Context, userID, chatID int64) (int64, error) {
	return db.WarnDB.CountDocuments(ctx, bson.M{"user_id": userID, "chat_id": chatID})
}
