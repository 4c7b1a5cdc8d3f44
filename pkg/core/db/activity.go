package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityEntry is one user's message counter in one chat.
type ActivityEntry struct {
	ChatID       int64     `bson:"chat_id"`
	UserID       int64     `bson:"user_id"`
	MessageCount int64     `bson:"message_count"`
	LastMessage  time.Time `bson:"last_message"`
}

// LogActivity increments a user's message counter for a chat. The increment is
// a single upsert statement so concurrent messages from the same user never
// lose updates.
func (db *Database) LogActivity(ctx context.Context, chatID, userID int64) error {
	_, err := db.ActivityDB.UpdateOne(ctx,
		bson.M{"chat_id": chatID, "user_id": userID},
		bson.M{
			"$inc": bson.M{"message_count": 1},
			"$set": bson.M{"last_message": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetTopUsers returns the most active users of a chat, ordered by message count.
func (db *Database) GetTopUsers(ctx context.Context, chatID int64, limit int64) ([]ActivityEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "message_count", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.ActivityDB.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []ActivityEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetTotalMessages returns the total message count recorded for a chat.
func (db *Database) GetTotalMessages(ctx context.Context, chatID int64) (int64, error) {
	cursor, err := db.ActivityDB.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"chat_id": chatID}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$message_count"}}},
	})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
