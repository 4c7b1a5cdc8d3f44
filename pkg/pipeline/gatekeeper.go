package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zuchzub/GroupGuard/pkg/core/db"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

// MatchBannedName tests a member's full name against the stored patterns in
// order and returns the first match. Patterns are regular expressions; one
// that fails to compile falls back to a plain substring test so a bad pattern
// never disables the gate.
func MatchBannedName(patterns []string, firstName, lastName string) (string, bool) {
	fullName := strings.ToLower(strings.TrimSpace(firstName + " " + lastName))
	for _, p := range patterns {
		pattern := strings.ToLower(p)
		if re, err := regexp.Compile(pattern); err == nil {
			if re.MatchString(fullName) {
				return p, true
			}
		} else if strings.Contains(fullName, pattern) {
			return p, true
		}
	}
	return "", false
}

// NameGate screens newly joined members against the chat's banned-name
// patterns. The first matching pattern kicks the member (ban then immediate
// unban) and stops pattern evaluation for that member; each joining member is
// evaluated independently.
type NameGate struct{}

// HandleJoin processes one participant update.
func (*NameGate) HandleJoin(pu *telegram.ParticipantUpdate) error {
	if !pu.IsJoined() && !pu.IsAdded() {
		return nil
	}
	if pu.User == nil {
		return nil
	}

	chatID := pu.ChannelID()
	ctx, cancel := db.Ctx()
	defer cancel()

	patterns, err := db.Instance.GetBannedNames(ctx, chatID)
	if err != nil || len(patterns) == 0 {
		return err
	}

	pattern, ok := MatchBannedName(patterns, pu.User.FirstName, pu.User.LastName)
	if !ok {
		return nil
	}

	client := pu.Client
	if _, err := client.EditBanned(chatID, pu.User.ID, &telegram.BannedOptions{Ban: true}); err != nil {
		_, _ = client.SendMessage(chatID, fmt.Sprintf("Error kicking the new member: %s", err.Error()))
		return nil
	}
	if _, err := client.EditBanned(chatID, pu.User.ID, &telegram.BannedOptions{Unban: true}); err != nil {
		gologging.WarnF("[pipeline] Failed to lift the kick ban for user %d in chat %d: %v", pu.User.ID, chatID, err)
	}

	gologging.InfoF("[pipeline] Kicked user %d from chat %d for a banned name (pattern %q).", pu.User.ID, chatID, pattern)
	_, _ = client.SendMessage(chatID, fmt.Sprintf(
		"👢 Kicked %s for having a suspicious name.",
		mention(pu.User),
	))
	return nil
}

// mention builds an HTML mention link for a user.
func mention(u *telegram.UserObj) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, u.FirstName)
}
