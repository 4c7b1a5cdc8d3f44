package pipeline

import (
	"github.com/zuchzub/GroupGuard/pkg/core/db"

	"github.com/amarnathcjd/gogram/telegram"
)

// ActivityRecorder counts every surviving group message from a non-bot sender.
// It is a pure side-effect recorder: it never blocks or deletes, and a storage
// failure only surfaces as a chain log line.
type ActivityRecorder struct{}

func (*ActivityRecorder) Name() string { return "activity" }

func (*ActivityRecorder) Handle(m *telegram.NewMessage) (Decision, error) {
	if !m.IsGroup() || m.Sender == nil || m.Sender.Bot {
		return Continue, nil
	}

	chatID, err := resolveChatID(m)
	if err != nil {
		return Continue, err
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	if err := db.Instance.AddUser(ctx, db.User{
		ID:        m.Sender.ID,
		FirstName: m.Sender.FirstName,
		Username:  m.Sender.Username,
		IsBot:     m.Sender.Bot,
	}); err != nil {
		return Continue, err
	}

	if err := db.Instance.LogActivity(ctx, chatID, m.Sender.ID); err != nil {
		return Continue, err
	}
	return Continue, nil
}
