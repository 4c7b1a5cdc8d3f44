package handlers

import (
	"fmt"
	"strings"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// addBanNameHandler handles the /addbanname command. The argument is kept
// verbatim: it is tried as a regular expression at join time first, with a
// plain substring match as fallback.
func addBanNameHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	pattern := strings.TrimSpace(m.Args())
	if pattern == "" {
		_, err := m.Reply("Usage: /addbanname <pattern>")
		return err
	}

	ensureKnown(m, chatID)
	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.AddBannedName(ctx, chatID, strings.ToLower(pattern)); err != nil {
		_, err = m.Reply("❌ Failed to save the pattern: " + err.Error())
		return err
	}

	_, err := m.Reply(fmt.Sprintf("🛡 New members whose name matches <code>%s</code> will be removed.", pattern))
	return err
}

// delBanNameHandler handles the /delbanname command.
func delBanNameHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	pattern := strings.TrimSpace(m.Args())
	if pattern == "" {
		_, err := m.Reply("Usage: /delbanname <pattern>")
		return err
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.RemoveBannedName(ctx, chatID, strings.ToLower(pattern)); err != nil {
		_, err = m.Reply("❌ Failed to remove the pattern: " + err.Error())
		return err
	}

	_, err := m.Reply(fmt.Sprintf("🗑 Removed <code>%s</code> from the banned name list.", pattern))
	return err
}

// banNamesHandler handles the /bannednames command, listing the patterns
// enforced on new members.
func banNamesHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())

	ctx, cancel := db.Ctx()
	defer cancel()

	patterns, err := db.Instance.GetBannedNames(ctx, chatID)
	if err != nil {
		_, err = m.Reply("❌ Failed to load the list: " + err.Error())
		return err
	}
	if len(patterns) == 0 {
		_, err = m.Reply("This group has no banned name patterns.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("<b>🛡 Banned name patterns:</b>\n\n")
	for i, p := range patterns {
		sb.WriteString(fmt.Sprintf("%d. <code>%s</code>\n", i+1, p))
	}

	_, err = m.Reply(sb.String())
	return err
}
