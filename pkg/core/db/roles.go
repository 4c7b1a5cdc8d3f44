package db

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Role is an ordered privilege label scoped to one (user, chat) pair.
// The ordering is total and fixed; authorization is "role value >= required value".
type Role int

const (
	RoleNone Role = iota
	RoleAssistant
	RoleAdmin
	RoleManager
	RoleOwner
)

// String returns the lowercase storage name of the role.
func (r Role) String() string {
	switch r {
	case RoleAssistant:
		return "assistant"
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleOwner:
		return "owner"
	default:
		return "none"
	}
}

// Title returns the capitalized display name of the role.
func (r Role) Title() string {
	s := r.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseRole maps a stored role name back to its Role value.
// Unknown names map to RoleNone.
func ParseRole(s string) Role {
	switch strings.ToLower(s) {
	case "assistant":
		return RoleAssistant
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "owner":
		return RoleOwner
	default:
		return RoleNone
	}
}

// SetRole stores a role for a (user, chat) pair, overwriting any prior role.
func (db *Database) SetRole(ctx context.Context, userID, chatID int64, role Role) error {
	_, err := db.RoleDB.UpdateOne(ctx,
		bson.M{"user_id": userID, "chat_id": chatID},
		bson.M{"$set": bson.M{"role": role.String()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetRole retrieves the stored role for a (user, chat) pair.
// Absence of a stored role yields RoleNone and ok=false.
func (db *Database) GetRole(ctx context.Context, userID, chatID int64) (Role, bool, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	err := db.RoleDB.FindOne(ctx, bson.M{"user_id": userID, "chat_id": chatID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return RoleNone, false, nil
	} else if err != nil {
		return RoleNone, false, err
	}
	return ParseRole(doc.Role), true, nil
}

// RemoveRole clears the stored role for a (user, chat) pair.
func (db *Database) RemoveRole(ctx context.Context, userID, chatID int64) error {
	_, err := db.RoleDB.DeleteOne(ctx, bson.M{"user_id": userID, "chat_id": chatID})
	return err
}
