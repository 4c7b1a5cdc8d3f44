package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// User is the stored identity of a Telegram user. Users are created on first
// observed activity and never deleted by the core.
type User struct {
	ID        int64  `bson:"_id"`
	FirstName string `bson:"first_name"`
	Username  string `bson:"username,omitempty"`
	IsBot     bool   `bson:"is_bot"`
}

// AddUser adds a user to the database if they do not already exist.
// An existing user's identity fields are left untouched.
func (db *Database) AddUser(ctx context.Context, u User) error {
	key := toKey(u.ID)
	if _, ok := db.UserCache.Get(key); ok {
		return nil
	}

	_, err := db.UserDB.UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$setOnInsert": bson.M{
			"first_name": u.FirstName,
			"username":   u.Username,
			"is_bot":     u.IsBot,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	db.UserCache.Set(key, struct{}{})
	return nil
}

// GetUser retrieves a user by ID. It returns nil without an error when the
// user is unknown.
func (db *Database) GetUser(ctx context.Context, userID int64) (*User, error) {
	var u User
	err := db.UserDB.FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsers returns the number of users the bot has seen.
func (db *Database) CountUsers(ctx context.Context) (int64, error) {
	return db.UserDB.CountDocuments(ctx, bson.M{})
}

// IsUserExist checks if a user exists in the database.
func (db *Database) IsUserExist(ctx context.Context, userID int64) (bool, error) {
	key := toKey(userID)
	if _, ok := db.UserCache.Get(key); ok {
		return true, nil
	}

	var result bson.M
	err := db.UserDB.FindOne(ctx, bson.M{"_id": userID}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	db.UserCache.Set(key, struct{}{})
	return true, nil
}
