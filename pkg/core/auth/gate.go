package auth

import (
	"context"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// RoleLookup resolves the stored role for a (user, chat) pair.
// ok is false when no role is stored.
type RoleLookup func(ctx context.Context, userID, chatID int64) (db.Role, bool, error)

// Gate decides whether a user may perform a privileged action in a chat.
// The configured bot owner bypasses every check; everyone else is compared
// against their stored role, failing closed when none is stored.
type Gate struct {
	OwnerID int64
	Lookup  RoleLookup
}

// Allow reports whether the user holds at least the required role in the chat.
// A lookup failure denies the action.
func (g *Gate) Allow(ctx context.Context, userID, chatID int64, required db.Role) (bool, error) {
	if userID == g.OwnerID {
		return true, nil
	}

	role, ok, err := g.Lookup(ctx, userID, chatID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return role >= required, nil
}
