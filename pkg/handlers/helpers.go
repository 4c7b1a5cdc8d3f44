package handlers

import (
	"fmt"
	"strconv"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

// getPeerId gets the marked peer ID from a chat ID.
func getPeerId(c *telegram.Client, chatId any) (int64, error) {
	peer, err := c.ResolvePeer(chatId)
	if err != nil {
		gologging.WarnF("failed to resolve Peer for %v", chatId)
		return 0, err
	}

	switch p := peer.(type) {
	case *telegram.InputPeerUser:
		return p.UserID, nil
	case *telegram.InputPeerChat:
		return -p.ChatID, nil
	case *telegram.InputPeerChannel:
		return -1000000000000 - p.ChannelID, nil
	default:
		return 0, fmt.Errorf("unsupported peer type %T", p)
	}
}

// getReplyUser returns the sender of the replied-to message.
// Every reply-targeted moderation command resolves its target through here.
func getReplyUser(m *telegram.NewMessage) (*telegram.UserObj, error) {
	if !m.IsReply() {
		return nil, fmt.Errorf("please reply to a user's message")
	}

	reply, err := m.GetReplyMessage()
	if err != nil {
		return nil, err
	}
	if reply.Sender == nil {
		return nil, fmt.Errorf("could not identify the user in that message")
	}
	return reply.Sender, nil
}

// resolveUserArg resolves a user from a numeric ID or an @username argument.
func resolveUserArg(c *telegram.Client, arg string) (int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return id, nil
	}

	user, err := c.ResolveUsername(arg)
	if err != nil {
		return 0, err
	}
	ux, ok := user.(*telegram.UserObj)
	if !ok {
		return 0, fmt.Errorf("user not found")
	}
	return ux.ID, nil
}

// mention builds an HTML mention link for a user.
func mention(u *telegram.UserObj) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, u.FirstName)
}

// chatTitle returns the title of the chat a message was sent in.
func chatTitle(m *telegram.NewMessage) string {
	if m.Channel != nil {
		return m.Channel.Title
	}
	if m.Chat != nil {
		return m.Chat.Title
	}
	return ""
}
