package handlers

import (
	"fmt"
	"strings"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// classifyReply inspects the replied-to message and builds the stored reply
// payload for a filter. Stickers and photos keep their file ID so the bot
// can resend the same media; anything else is stored as text.
func classifyReply(reply *telegram.NewMessage) (replyType, replyText, fileID string, err error) {
	if reply.IsMedia() {
		switch media := reply.Media().(type) {
		case *telegram.MessageMediaPhoto:
			return db.FilterPhoto, reply.Text(), reply.File.FileID, nil
		case *telegram.MessageMediaDocument:
			if doc, ok := media.Document.(*telegram.DocumentObj); ok {
				for _, attr := range doc.Attributes {
					if _, isSticker := attr.(*telegram.DocumentAttributeSticker); isSticker {
						return db.FilterSticker, "", reply.File.FileID, nil
					}
				}
			}
			return "", "", "", fmt.Errorf("only text, sticker and photo replies are supported")
		default:
			return "", "", "", fmt.Errorf("only text, sticker and photo replies are supported")
		}
	}

	text := strings.TrimSpace(reply.Text())
	if text == "" {
		return "", "", "", fmt.Errorf("the replied message has no content to save")
	}
	return db.FilterText, text, "", nil
}

// addFilterHandler handles the /addfilter command. The trigger word comes
// from the argument and the reply payload from the replied-to message.
func addFilterHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	trigger := strings.ToLower(strings.TrimSpace(m.Args()))
	if trigger == "" {
		_, err := m.Reply("Usage: reply to a message with /addfilter <trigger>")
		return err
	}
	if !m.IsReply() {
		_, err := m.Reply("Reply to the message the bot should send for this trigger.")
		return err
	}

	reply, err := m.GetReplyMessage()
	if err != nil {
		_, err = m.Reply("❌ Could not read the replied message: " + err.Error())
		return err
	}

	replyType, replyText, fileID, err := classifyReply(reply)
	if err != nil {
		_, err = m.Reply("❌ " + err.Error())
		return err
	}

	ensureKnown(m, chatID)
	ctx, cancel := db.Ctx()
	defer cancel()

	filter := db.Filter{
		ChatID:    chatID,
		Name:      trigger,
		ReplyText: replyText,
		ReplyType: replyType,
		FileID:    fileID,
	}
	if err := db.Instance.AddFilter(ctx, filter); err != nil {
		_, err = m.Reply("❌ Failed to save the filter: " + err.Error())
		return err
	}

	_, err = m.Reply(fmt.Sprintf("💬 Saved filter <code>%s</code> (%s reply).", trigger, replyType))
	return err
}

// delFilterHandler handles the /delfilter command.
func delFilterHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	trigger := strings.ToLower(strings.TrimSpace(m.Args()))
	if trigger == "" {
		_, err := m.Reply("Usage: /delfilter <trigger>")
		return err
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	removed, err := db.Instance.RemoveFilter(ctx, chatID, trigger)
	if err != nil {
		_, err = m.Reply("❌ Failed to remove the filter: " + err.Error())
		return err
	}
	if !removed {
		_, err = m.Reply(fmt.Sprintf("There is no filter named <code>%s</code> here.", trigger))
		return err
	}

	_, err = m.Reply(fmt.Sprintf("🗑 Filter <code>%s</code> removed.", trigger))
	return err
}

// listFiltersHandler handles the /filters command.
func listFiltersHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())

	ctx, cancel := db.Ctx()
	defer cancel()

	filters, err := db.Instance.GetFilters(ctx, chatID)
	if err != nil {
		_, err = m.Reply("❌ Failed to load filters: " + err.Error())
		return err
	}
	if len(filters) == 0 {
		_, err = m.Reply("This group has no filters yet.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("<b>💬 Filters in this group:</b>\n\n")
	for i, f := range filters {
		sb.WriteString(fmt.Sprintf("%d. <code>%s</code> (%s)\n", i+1, f.Name, f.ReplyType))
	}

	_, err = m.Reply(sb.String())
	return err
}
