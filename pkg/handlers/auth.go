package handlers

import (
	"context"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/config"
	"github.com/zuchzub/GroupGuard/pkg/core/auth"
	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

const permissionDenied = "❌ You don't have enough permissions to use this command."

var gate = &auth.Gate{
	Lookup: func(ctx context.Context, userID, chatID int64) (db.Role, bool, error) {
		return db.Instance.GetRole(ctx, userID, chatID)
	},
}

// setupGate binds the owner bypass to the gate. It runs once, from
// LoadModules, before any handler can fire; handlers only read the gate.
func setupGate(ownerID int64) {
	gate.OwnerID = ownerID
}

// requireRole wraps a command handler with a role check against the per-chat
// role store. The bot owner always passes; everyone else needs a stored role
// at least as high as required.
func requireRole(required db.Role, next func(*telegram.NewMessage) error) func(*telegram.NewMessage) error {
	return func(m *telegram.NewMessage) error {
		if !m.IsGroup() {
			m.Reply("This command only works in groups.")
			return nil
		}

		chatID, err := getPeerId(m.Client, m.ChatID())
		if err != nil {
			return nil
		}

		ctx, cancel := db.Ctx()
		defer cancel()

		ok, err := gate.Allow(ctx, m.SenderID(), chatID, required)
		if err != nil {
			gologging.WarnF("role lookup failed for %d in %d: %v", m.SenderID(), chatID, err)
		}
		if !ok {
			m.Reply(permissionDenied)
			return nil
		}
		return next(m)
	}
}

// isDev checks if the user is a developer.
func isDev(m *telegram.NewMessage) bool {
	for _, dev := range config.Conf.DEVS {
		if dev == m.SenderID() {
			return true
		}
	}
	return false
}
