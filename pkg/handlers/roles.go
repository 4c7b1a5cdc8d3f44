package handlers

import (
	"fmt"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// setRoleHandler builds a handler that grants the given role to the sender
// of the replied-to message.
func setRoleHandler(role db.Role) func(*telegram.NewMessage) error {
	return func(m *telegram.NewMessage) error {
		chatID, _ := getPeerId(m.Client, m.ChatID())
		target, err := getReplyUser(m)
		if err != nil {
			_, err = m.Reply("🙍‍♂️ " + err.Error())
			return err
		}
		if target.Bot {
			_, err = m.Reply("🤖 Bots cannot hold roles.")
			return err
		}

		ensureKnown(m, chatID, target, m.Sender)
		ctx, cancel := db.Ctx()
		defer cancel()

		if err := db.Instance.SetRole(ctx, target.ID, chatID, role); err != nil {
			_, err = m.Reply("❌ Failed to save the role: " + err.Error())
			return err
		}

		_, err = m.Reply(fmt.Sprintf("🎖 %s is now a <b>%s</b> of this group.", mention(target), role.Title()))
		return err
	}
}

// demoteHandler handles the /demote command, removing any stored role from
// the target user.
func demoteHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.RemoveRole(ctx, target.ID, chatID); err != nil {
		_, err = m.Reply("❌ Failed to remove the role: " + err.Error())
		return err
	}

	_, err = m.Reply(fmt.Sprintf("📉 %s no longer holds a role in this group.", mention(target)))
	return err
}
