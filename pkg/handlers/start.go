package handlers

import (
	"fmt"
	"time"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core"
	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

const helpText = `<b>🛡 GroupGuard — commands</b>

<b>Moderation</b>
/warn — warn the replied user (3 warnings = ban)
/mute /unmute — silence the replied user, optional duration like <code>1d2h30m</code>
/ban /kick — remove the replied user, /ban takes an optional duration
/unban — lift a ban by user ID or @username

<b>Roles</b> (group owner only)
/setassistant /setadmin /setmanager /setowner — grant a role to the replied user
/demote — remove the replied user's role

<b>Group settings</b>
/lock /unlock <code>media | links | all</code> — content locks
/addfilter <code>trigger</code> — save the replied message as an auto-reply
/delfilter /filters — manage auto-replies
/addbanname /delbanname /bannednames — name patterns kicked on join

<b>Stats</b>
/stats — group totals  •  /topusers — most active members

<b>Music</b>
/play <code>song name or link</code> — queue a track
/skip /stop /queue — control playback`

// pingHandler handles the /ping command.
func pingHandler(m *telegram.NewMessage) error {
	start := time.Now()
	msg, err := m.Reply("⏱️ Pinging...")
	if err != nil {
		return err
	}
	latency := time.Since(start).Milliseconds()
	uptime := time.Since(startTime).Truncate(time.Second)

	_, err = msg.Edit(fmt.Sprintf("🏓 <b>Pong!</b> <code>%dms</code>\n⏳ Uptime: <code>%s</code>", latency, uptime))
	return err
}

// startHandler handles the /start command.
func startHandler(m *telegram.NewMessage) error {
	bot := m.Client.Me()
	chatID, _ := getPeerId(m.Client, m.ChatID())

	go func() {
		ctx, cancel := db.Ctx()
		defer cancel()
		if m.IsPrivate() {
			_ = db.Instance.AddUser(ctx, db.User{ID: chatID, FirstName: m.Sender.FirstName, Username: m.Sender.Username})
		} else {
			_ = db.Instance.AddChat(ctx, chatID, chatTitle(m))
		}
	}()

	response := fmt.Sprintf("👋 Hi %s!\n\nI am <b>%s</b>. I keep groups clean: locks, warnings, anti-bot name checks, auto-replies and activity stats — plus a music queue.\n\nSend /help for the full command list.", m.Sender.FirstName, bot.FirstName)
	_, err := m.Reply(response, telegram.SendOptions{
		ReplyMarkup: core.AddMeMarkup(bot.Username),
	})
	return err
}

// helpHandler handles the /help command.
func helpHandler(m *telegram.NewMessage) error {
	_, err := m.Reply(helpText, telegram.SendOptions{LinkPreview: false})
	return err
}
