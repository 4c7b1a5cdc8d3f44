package db

import (
	"context"
	"errors"

	"github.com/Laky-64/gologging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Lock types accepted by SetLock.
const (
	LockMedia = "media"
	LockLinks = "links"
	LockAll   = "all"
)

// Locks holds the per-chat content lock flags.
type Locks struct {
	Media bool `bson:"media"`
	Links bool `bson:"links"`
	All   bool `bson:"all"`
}

// ChatConfig is the per-chat settings document. It is written only through
// its dedicated setters; enforcement handlers read it.
type ChatConfig struct {
	Locks       Locks    `bson:"locks"`
	BannedNames []string `bson:"banned_names"`
}

// chatDoc is the stored shape of a chat.
type chatDoc struct {
	ID     int64      `bson:"_id"`
	Title  string     `bson:"title,omitempty"`
	Config ChatConfig `bson:"config"`
}

// AddChat adds a chat to the database if it does not already exist.
// An existing chat keeps its configuration; only the title is refreshed.
func (db *Database) AddChat(ctx context.Context, chatID int64, title string) error {
	_, err := db.ChatDB.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{
			"$set":         bson.M{"title": title},
			"$setOnInsert": bson.M{"config": ChatConfig{BannedNames: []string{}}},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetChatConfig retrieves a chat's configuration from the cache or database.
// A missing chat yields the zero configuration.
func (db *Database) GetChatConfig(ctx context.Context, chatID int64) (ChatConfig, error) {
	key := toKey(chatID)
	if cached, ok := db.ChatCache.Get(key); ok {
		return cached, nil
	}

	var doc chatDoc
	err := db.ChatDB.FindOne(ctx, bson.M{"_id": chatID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ChatConfig{}, nil
	} else if err != nil {
		gologging.WarnF("[DB] An error occurred while getting the chat config: %v", err)
		return ChatConfig{}, err
	}

	db.ChatCache.Set(key, doc.Config)
	return doc.Config, nil
}

// SetLock sets one lock flag for a chat. Locking "all" also locks media and
// links, so unlocking a single category later behaves predictably.
func (db *Database) SetLock(ctx context.Context, chatID int64, lockType string, status bool) error {
	fields := bson.M{"config.locks." + lockType: status}
	if lockType == LockAll {
		fields["config.locks."+LockMedia] = status
		fields["config.locks."+LockLinks] = status
	}

	_, err := db.ChatDB.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	db.ChatCache.Delete(toKey(chatID))
	return nil
}

// AddBannedName appends a pattern to a chat's banned-name list.
func (db *Database) AddBannedName(ctx context.Context, chatID int64, pattern string) error {
	_, err := db.ChatDB.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{"$addToSet": bson.M{"config.banned_names": pattern}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	db.ChatCache.Delete(toKey(chatID))
	return nil
}

// RemoveBannedName removes a pattern from a chat's banned-name list.
func (db *Database) RemoveBannedName(ctx context.Context, chatID int64, pattern string) error {
	_, err := db.ChatDB.UpdateOne(ctx,
		bson.M{"_id": chatID},
		bson.M{"$pull": bson.M{"config.banned_names": pattern}},
	)
	if err != nil {
		return err
	}

	db.ChatCache.Delete(toKey(chatID))
	return nil
}

// GetBannedNames retrieves the ordered banned-name pattern list for a chat.
func (db *Database) GetBannedNames(ctx context.Context, chatID int64) ([]string, error) {
	cfg, err := db.GetChatConfig(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return cfg.BannedNames, nil
}

// GetAllChats retrieves a list of all chat IDs from the database.
func (db *Database) GetAllChats(ctx context.Context) ([]int64, error) {
	cursor, err := db.ChatDB.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chats []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID int64 `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		chats = append(chats, doc.ID)
	}
	return chats, cursor.Err()
}
