package pipeline

import (
	"strings"

	"github.com/zuchzub/GroupGuard/pkg/config"
	"github.com/zuchzub/GroupGuard/pkg/core/db"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

// MessageContent is the snapshot of a message that lock decisions are made on.
type MessageContent struct {
	Text     string // Text is the message text or media caption.
	HasMedia bool   // HasMedia is set for photo, video, document, and sticker content.
}

// ShouldDelete evaluates the lock flags against a message snapshot.
// The "all" lock wins over everything; then links, then media. The decision is
// deterministic for a given configuration and message.
func ShouldDelete(locks db.Locks, c MessageContent) bool {
	if locks.All {
		return true
	}
	if locks.Links && ContainsLink(c.Text) {
		return true
	}
	if locks.Media && c.HasMedia {
		return true
	}
	return false
}

// ContainsLink reports whether the text carries an http(s) URL or a t.me reference.
func ContainsLink(text string) bool {
	return strings.Contains(text, "http://") ||
		strings.Contains(text, "https://") ||
		strings.Contains(text, "t.me")
}

// Immune reports whether a sender is exempt from lock enforcement: the bot
// owner always is, as is any member holding Admin or higher.
func Immune(senderID, ownerID int64, role db.Role, hasRole bool) bool {
	if senderID == ownerID {
		return true
	}
	return hasRole && role >= db.RoleAdmin
}

// enforcementDecision maps the outcome of a delete attempt to a chain
// decision. Only a message that was actually removed short-circuits the
// chain; one that survived is still logged and filter-matched.
func enforcementDecision(deleteErr error) Decision {
	if deleteErr != nil {
		return Continue
	}
	return Stop
}

// LockEnforcer deletes messages that violate the chat's lock configuration.
// It runs first in the chain: only supergroups are enforced, and the owner and
// any member holding Admin or higher are immune.
type LockEnforcer struct{}

func (*LockEnforcer) Name() string { return "locks" }

func (*LockEnforcer) Handle(m *telegram.NewMessage) (Decision, error) {
	if !m.IsGroup() || m.Sender == nil {
		return Continue, nil
	}

	chatID, err := resolveChatID(m)
	if err != nil {
		return Continue, err
	}
	// Basic groups are not enforced, only supergroup-style channel peers.
	if chatID > -1000000000000 {
		return Continue, nil
	}

	senderID := m.SenderID()
	ctx, cancel := db.Ctx()
	defer cancel()

	role, ok, err := db.Instance.GetRole(ctx, senderID, chatID)
	if err != nil {
		ok = false
	}
	if Immune(senderID, config.Conf.OwnerId, role, ok) {
		return Continue, nil
	}

	cfg, err := db.Instance.GetChatConfig(ctx, chatID)
	if err != nil {
		return Continue, err
	}

	content := MessageContent{
		Text:     m.Text(),
		HasMedia: m.Photo() != nil || m.Video() != nil || m.Document() != nil || m.Sticker() != nil,
	}
	if !ShouldDelete(cfg.Locks, content) {
		return Continue, nil
	}

	_, err = m.Delete()
	if err != nil {
		gologging.WarnF("[pipeline] Failed to delete a locked message in chat %d: %v", chatID, err)
	}
	return enforcementDecision(err), nil
}
