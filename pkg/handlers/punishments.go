package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core"
	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// warnLimit is the number of warnings that triggers an automatic ban.
const warnLimit = 3

// ensureKnown records the chat and the users touched by a moderation action
// so later lookups (top users, warning counts) have names to show.
func ensureKnown(m *telegram.NewMessage, chatID int64, users ...*telegram.UserObj) {
	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.AddChat(ctx, chatID, chatTitle(m)); err != nil {
		gologging.WarnF("failed to record chat %d: %v", chatID, err)
	}
	for _, u := range users {
		if u == nil {
			continue
		}
		if err := db.Instance.AddUser(ctx, db.User{ID: u.ID, FirstName: u.FirstName, Username: u.Username, IsBot: u.Bot}); err != nil {
			gologging.WarnF("failed to record user %d: %v", u.ID, err)
		}
	}
}

// parseDurationArg extracts an optional restriction duration from the
// command arguments. Returns zero when no duration was given.
func parseDurationArg(args string) (time.Duration, string) {
	args = strings.TrimSpace(args)
	if args == "" {
		return 0, "permanently"
	}
	if d, ok := core.ParseRestrictionDuration(args); ok {
		return d, "for " + args
	}
	return 0, "permanently"
}

// scheduleLift lifts a restriction after the given duration. Timers are
// in-process and do not survive a restart.
func scheduleLift(c *telegram.Client, chatID, userID int64, d time.Duration, opts *telegram.BannedOptions) {
	if d <= 0 {
		return
	}
	time.AfterFunc(d, func() {
		if _, err := c.EditBanned(chatID, userID, opts); err != nil {
			gologging.WarnF("failed to lift restriction for %d in %d: %v", userID, chatID, err)
		}
	})
}

// muteHandler handles the /mute command.
func muteHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	ensureKnown(m, chatID, target, m.Sender)
	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Mute: true}); err != nil {
		_, err = m.Reply("❌ Failed to mute the user: " + err.Error())
		return err
	}

	dur, label := parseDurationArg(m.Args())
	scheduleLift(m.Client, chatID, target.ID, dur, &telegram.BannedOptions{Unmute: true})

	_, err = m.Reply(fmt.Sprintf("🔇 %s has been muted %s.", mention(target), label))
	return err
}

// unmuteHandler handles the /unmute command.
func unmuteHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Unmute: true}); err != nil {
		_, err = m.Reply("❌ Failed to unmute the user: " + err.Error())
		return err
	}

	_, err = m.Reply(fmt.Sprintf("🔊 %s can speak again.", mention(target)))
	return err
}

// banHandler handles the /ban command.
func banHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	ensureKnown(m, chatID, target, m.Sender)
	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Ban: true}); err != nil {
		_, err = m.Reply("❌ Failed to ban the user: " + err.Error())
		return err
	}

	dur, label := parseDurationArg(m.Args())
	scheduleLift(m.Client, chatID, target.ID, dur, &telegram.BannedOptions{Unban: true})

	_, err = m.Reply(fmt.Sprintf("🔨 %s has been banned %s.", mention(target), label))
	return err
}

// unbanHandler handles the /unban command. Since the banned user is no
// longer in the group, the target comes from an ID or @username argument.
func unbanHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	arg := strings.TrimSpace(m.Args())
	if arg == "" {
		_, err := m.Reply("Usage: /unban <user id or @username>")
		return err
	}

	userID, err := resolveUserArg(m.Client, arg)
	if err != nil {
		_, err = m.Reply("❌ Could not find that user: " + err.Error())
		return err
	}

	if _, err := m.Client.EditBanned(chatID, userID, &telegram.BannedOptions{Unban: true}); err != nil {
		_, err = m.Reply("❌ Failed to unban the user: " + err.Error())
		return err
	}

	_, err = m.Reply(fmt.Sprintf("✅ User <code>%d</code> has been unbanned.", userID))
	return err
}

// kickHandler handles the /kick command. A kick is a ban followed by an
// unban, so the user can rejoin.
func kickHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	ensureKnown(m, chatID, target, m.Sender)
	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Ban: true}); err != nil {
		_, err = m.Reply("❌ Failed to kick the user: " + err.Error())
		return err
	}
	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Unban: true}); err != nil {
		gologging.WarnF("failed to lift kick-ban for %d in %d: %v", target.ID, chatID, err)
	}

	_, err = m.Reply(fmt.Sprintf("👢 %s has been kicked from the group.", mention(target)))
	return err
}

// warnOutcome decides what a warning total means for the warned user: below
// the limit it is a counted warning, at or above it the user is banned.
func warnOutcome(target string, count int64) (banned bool, report string) {
	if count < warnLimit {
		return false, fmt.Sprintf("⚠️ %s has been warned (%d/%d).", target, count, warnLimit)
	}
	return true, fmt.Sprintf("🔨 %s reached %d/%d warnings and has been banned.", target, count, warnLimit)
}

// warnHandler handles the /warn command. Warnings accumulate per user per
// chat; reaching the limit bans the user. The warning record stays even if
// the ban itself fails.
func warnHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	target, err := getReplyUser(m)
	if err != nil {
		_, err = m.Reply("🙍‍♂️ " + err.Error())
		return err
	}

	ensureKnown(m, chatID, target, m.Sender)
	ctx, cancel := db.Ctx()
	defer cancel()

	count, err := db.Instance.AddWarning(ctx, target.ID, chatID, m.SenderID())
	if err != nil {
		_, err = m.Reply("❌ Failed to record the warning: " + err.Error())
		return err
	}

	banned, report := warnOutcome(mention(target), count)
	if !banned {
		_, err = m.Reply(report)
		return err
	}

	if _, err := m.Client.EditBanned(chatID, target.ID, &telegram.BannedOptions{Ban: true}); err != nil {
		_, err = m.Reply(fmt.Sprintf("⚠️ %s reached %d warnings but the ban failed: %s", mention(target), count, err.Error()))
		return err
	}

	_, err = m.Reply(report)
	return err
}
