package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/core/cache"
	"github.com/zuchzub/GroupGuard/pkg/core/dl"
	"github.com/zuchzub/GroupGuard/pkg/vc"
)

const resolveTimeout = 30 * time.Second

// playHandler handles the /play command. The query is resolved through the
// API gateway and the resulting track is queued on the chat's player.
func playHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	query := strings.TrimSpace(m.Args())
	if query == "" {
		_, err := m.Reply("Usage: /play <song name or link>")
		return err
	}

	status, err := m.Reply("🔍 Searching...")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	info, err := dl.NewResolver(query).Resolve(ctx)
	if err != nil {
		_, err = status.Edit("❌ " + err.Error())
		return err
	}

	track := &cache.Track{
		Query:     query,
		Name:      info.Name,
		TrackID:   info.Key,
		CdnURL:    info.CdnURL,
		Requester: m.Sender.FirstName,
		Duration:  info.Duration,
	}

	pos, err := vc.Player.Play(chatID, track)
	if err != nil {
		_, err = status.Edit("❌ " + err.Error())
		return err
	}

	if pos > 0 {
		_, err = status.Edit(fmt.Sprintf("📃 <b>%s</b> queued at position <code>%d</code>.", track.Name, pos))
		return err
	}
	_, err = status.Edit(fmt.Sprintf("🎧 Starting playback of <b>%s</b>...", track.Name))
	return err
}

// skipHandler handles the /skip command.
func skipHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	if !vc.Player.Skip(chatID) {
		_, err := m.Reply("⏸ There is no track currently playing.")
		return err
	}

	_, err := m.Reply(fmt.Sprintf("⏭ Playback skipped by %s.", m.Sender.FirstName))
	return err
}

// stopHandler handles the /stop command.
func stopHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	if !vc.Player.Stop(chatID) {
		_, err := m.Reply("⏸ There is no track currently playing.")
		return err
	}

	_, err := m.Reply(fmt.Sprintf("⏹ Playback stopped by %s. The queue has been cleared.", m.Sender.FirstName))
	return err
}

// queueHandler handles the /queue command, listing the pending tracks.
func queueHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())
	tracks := cache.Queues.Snapshot(chatID)
	if len(tracks) == 0 {
		_, err := m.Reply("📭 The queue is empty.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("<b>📃 Queue:</b>\n\n")
	for i, t := range tracks {
		marker := fmt.Sprintf("%d.", i)
		if i == 0 {
			marker = "▶️"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s) — %s\n", marker, t.Name, cache.SecToMin(t.Duration), t.Requester))
	}

	_, err := m.Reply(sb.String())
	return err
}
