package cache

import (
	"os"
	"sync"
)

// Track is a single pending entry in a chat's music queue.
type Track struct {
	Query     string // Query is the original search text or URL.
	Name      string // Name is the resolved track title.
	TrackID   string // TrackID identifies the track on its platform.
	CdnURL    string // CdnURL is where the audio is downloaded from.
	Requester string // Requester is the display name of the user who queued it.
	FilePath  string // FilePath is the local file once the track is downloaded.
	Duration  int    // Duration is the track length in seconds.
}

// chatQueue holds the playback state for one chat.
type chatQueue struct {
	active bool
	tracks []*Track
}

// QueueTable manages the music queues for all chats behind a single lock.
// Each chat owns an independent FIFO; concurrent /play invocations on the
// same chat are serialized here.
type QueueTable struct {
	mu     sync.RWMutex
	queues map[int64]*chatQueue
}

// NewQueueTable initializes and returns an empty QueueTable.
func NewQueueTable() *QueueTable {
	return &QueueTable{queues: make(map[int64]*chatQueue)}
}

// Enqueue appends a track to a chat's queue, creating the queue if needed.
// It returns the position of the track in the queue (0 = playing next).
func (q *QueueTable) Enqueue(chatID int64, t *Track) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, ok := q.queues[chatID]
	if !ok {
		data = &chatQueue{}
		q.queues[chatID] = data
	}
	data.tracks = append(data.tracks, t)
	return len(data.tracks) - 1
}

// Current returns the track at the head of a chat's queue, or nil if the queue is empty.
func (q *QueueTable) Current(chatID int64) *Track {
	q.mu.RLock()
	defer q.mu.RUnlock()

	data, ok := q.queues[chatID]
	if !ok || len(data.tracks) == 0 {
		return nil
	}
	return data.tracks[0]
}

// Advance removes the head of a chat's queue and returns the new head.
// When diskClear is set, the removed track's file is deleted from disk.
func (q *QueueTable) Advance(chatID int64, diskClear bool) *Track {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, ok := q.queues[chatID]
	if !ok || len(data.tracks) == 0 {
		return nil
	}

	removed := data.tracks[0]
	data.tracks = data.tracks[1:]
	if diskClear && removed.FilePath != "" {
		_ = os.Remove(removed.FilePath)
	}

	if len(data.tracks) == 0 {
		return nil
	}
	return data.tracks[0]
}

// IsActive reports whether playback is currently running in a chat.
func (q *QueueTable) IsActive(chatID int64) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	data, ok := q.queues[chatID]
	return ok && data.active
}

// SetActive updates the playback state for a chat.
func (q *QueueTable) SetActive(chatID int64, active bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, ok := q.queues[chatID]
	if !ok {
		data = &chatQueue{}
		q.queues[chatID] = data
	}
	data.active = active
}

// Clear removes all tracks for a chat and optionally deletes their files from disk.
func (q *QueueTable) Clear(chatID int64, diskClear bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, ok := q.queues[chatID]
	if !ok {
		return
	}

	if diskClear {
		for _, t := range data.tracks {
			if t.FilePath != "" {
				_ = os.Remove(t.FilePath)
			}
		}
	}
	delete(q.queues, chatID)
}

// Len returns the number of tracks queued for a chat.
func (q *QueueTable) Len(chatID int64) int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	data, ok := q.queues[chatID]
	if !ok {
		return 0
	}
	return len(data.tracks)
}

// Snapshot returns a copy of a chat's queue in order.
func (q *QueueTable) Snapshot(chatID int64) []*Track {
	q.mu.RLock()
	defer q.mu.RUnlock()

	data, ok := q.queues[chatID]
	if !ok {
		return nil
	}
	return append([]*Track(nil), data.tracks...)
}

// ActiveChats returns the IDs of every chat with running playback.
func (q *QueueTable) ActiveChats() []int64 {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var active []int64
	for chatID, data := range q.queues {
		if data.active {
			active = append(active, chatID)
		}
	}
	return active
}

// Queues is the global queue table.
var Queues = NewQueueTable()
