package handlers

import (
	"fmt"
	"strings"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

func isValidLock(name string) bool {
	switch name {
	case db.LockMedia, db.LockLinks, db.LockAll:
		return true
	}
	return false
}

// setLockState is the shared body of /lock and /unlock.
func setLockState(m *telegram.NewMessage, locked bool) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	name := strings.ToLower(strings.TrimSpace(m.Args()))
	if !isValidLock(name) {
		_, err := m.Reply("Usage: /lock | /unlock <media | links | all>")
		return err
	}

	ensureKnown(m, chatID)
	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.SetLock(ctx, chatID, name, locked); err != nil {
		_, err = m.Reply("❌ Failed to update the lock: " + err.Error())
		return err
	}

	if locked {
		_, err := m.Reply(fmt.Sprintf("🔒 <b>%s</b> messages are now locked in this group.", name))
		return err
	}
	_, err := m.Reply(fmt.Sprintf("🔓 <b>%s</b> messages are now allowed in this group.", name))
	return err
}

// lockHandler handles the /lock command.
func lockHandler(m *telegram.NewMessage) error {
	return setLockState(m, true)
}

// unlockHandler handles the /unlock command.
func unlockHandler(m *telegram.NewMessage) error {
	return setLockState(m, false)
}
