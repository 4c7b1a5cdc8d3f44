package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter reply kinds.
const (
	FilterText    = "text"
	FilterSticker = "sticker"
	FilterPhoto   = "photo"
)

// Filter is a per-chat trigger-word to auto-reply mapping.
type Filter struct {
	ChatID    int64  `bson:"chat_id"`
	Name      string `bson:"name"`
	ReplyText string `bson:"reply_text,omitempty"`
	ReplyType string `bson:"reply_type"`
	FileID    string `bson:"file_id,omitempty"`
}

// AddFilter stores a filter for a chat, overwriting any filter with the same trigger.
func (db *Database) AddFilter(ctx context.Context, f Filter) error {
	_, err := db.FilterDB.UpdateOne(ctx,
		bson.M{"chat_id": f.ChatID, "name": f.Name},
		bson.M{"$set": bson.M{
			"reply_text": f.ReplyText,
			"reply_type": f.ReplyType,
			"file_id":    f.FileID,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// RemoveFilter deletes a filter from a chat by its trigger word. It reports
// whether a filter was actually removed.
func (db *Database) RemoveFilter(ctx context.Context, chatID int64, name string) (bool, error) {
	res, err := db.FilterDB.DeleteOne(ctx, bson.M{"chat_id": chatID, "name": name})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// GetFilters retrieves all filters stored for a chat.
func (db *Database) GetFilters(ctx context.Context, chatID int64) ([]Filter, error) {
	cursor, err := db.FilterDB.Find(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var filters []Filter
	if err := cursor.All(ctx, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}
