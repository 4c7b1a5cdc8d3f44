package pipeline

import (
	"strings"

	"github.com/zuchzub/GroupGuard/pkg/core/db"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

// MatchTrigger returns the first filter whose trigger word appears as a whole
// word in the text, or nil. Both sides are lowercased and padded with boundary
// spaces, so "hi" fires on "hi there" but not on "history".
func MatchTrigger(filters []db.Filter, text string) *db.Filter {
	padded := " " + strings.ToLower(text) + " "
	for i := range filters {
		if strings.Contains(padded, " "+strings.ToLower(filters[i].Name)+" ") {
			return &filters[i]
		}
	}
	return nil
}

// FilterResponder answers plain-text group messages that contain a stored
// trigger word. Commands are skipped; the first matching filter wins and
// later filters are not evaluated. The chain itself continues.
type FilterResponder struct{}

func (*FilterResponder) Name() string { return "filters" }

func (*FilterResponder) Handle(m *telegram.NewMessage) (Decision, error) {
	if !m.IsGroup() || m.IsMedia() {
		return Continue, nil
	}

	text := m.Text()
	if text == "" || strings.HasPrefix(text, "/") {
		return Continue, nil
	}

	chatID, err := resolveChatID(m)
	if err != nil {
		return Continue, err
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	filters, err := db.Instance.GetFilters(ctx, chatID)
	if err != nil {
		return Continue, err
	}

	matched := MatchTrigger(filters, text)
	if matched == nil {
		return Continue, nil
	}

	if err := sendFilterReply(m, chatID, matched); err != nil {
		gologging.WarnF("[pipeline] Failed to send the filter reply %q in chat %d: %v", matched.Name, chatID, err)
	}
	return Continue, nil
}

// sendFilterReply delivers a filter's stored response to the chat.
func sendFilterReply(m *telegram.NewMessage, chatID int64, f *db.Filter) error {
	switch f.ReplyType {
	case db.FilterSticker, db.FilterPhoto:
		media, err := telegram.ResolveBotFileID(f.FileID)
		if err != nil {
			return err
		}
		opts := &telegram.MediaOptions{}
		if f.ReplyType == db.FilterPhoto {
			opts.Caption = f.ReplyText
		}
		_, err = m.Client.SendMedia(chatID, media, opts)
		return err
	default:
		_, err := m.Client.SendMessage(chatID, f.ReplyText)
		return err
	}
}
