package vc

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/config"
	"github.com/zuchzub/GroupGuard/pkg/core/cache"
	"github.com/zuchzub/GroupGuard/pkg/core/dl"
)

// worker is the playback goroutine state for one chat.
type worker struct {
	skip chan struct{}
	stop chan struct{}
}

// Engine drives per-chat music playback. Each chat with a non-empty queue
// owns one worker goroutine that downloads the head track, delivers it to
// the chat and holds the slot for the track's duration before advancing.
type Engine struct {
	mu      sync.Mutex
	bot     *telegram.Client
	workers map[int64]*worker
	wg      sync.WaitGroup
	closed  bool
}

// Player is the global playback engine.
var Player = &Engine{workers: make(map[int64]*worker)}

// Attach binds the engine to the logged-in bot client. It must be called
// before any playback starts.
func (e *Engine) Attach(c *telegram.Client) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bot = c
}

// Play queues a track for a chat and starts a worker if none is running.
// It returns the track's queue position (0 = plays immediately).
func (e *Engine) Play(chatID int64, t *cache.Track) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bot == nil {
		return 0, fmt.Errorf("the playback engine is not attached to a client")
	}
	if e.closed {
		return 0, fmt.Errorf("the playback engine is shutting down")
	}

	pos := cache.Queues.Enqueue(chatID, t)
	if _, running := e.workers[chatID]; !running {
		w := &worker{skip: make(chan struct{}, 1), stop: make(chan struct{}, 1)}
		e.workers[chatID] = w
		cache.Queues.SetActive(chatID, true)
		e.wg.Add(1)
		go e.run(chatID, w)
	}
	return pos, nil
}

// Skip moves a chat's playback to the next queued track.
func (e *Engine) Skip(chatID int64) bool {
	e.mu.Lock()
	w, ok := e.workers[chatID]
	e.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case w.skip <- struct{}{}:
	default:
	}
	return true
}

// Stop ends playback for a chat and drops its queue.
func (e *Engine) Stop(chatID int64) bool {
	e.mu.Lock()
	w, ok := e.workers[chatID]
	e.mu.Unlock()
	if !ok {
		cache.Queues.Clear(chatID, true)
		return false
	}

	select {
	case w.stop <- struct{}{}:
	default:
	}
	return true
}

// Shutdown stops every chat's playback and waits for the workers to exit.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	e.closed = true
	workers := make(map[int64]*worker, len(e.workers))
	for chatID, w := range e.workers {
		workers[chatID] = w
	}
	e.mu.Unlock()

	for _, w := range workers {
		select {
		case w.stop <- struct{}{}:
		default:
		}
	}
	e.wg.Wait()
}

// run is the per-chat playback loop.
func (e *Engine) run(chatID int64, w *worker) {
	defer e.wg.Done()
	defer func() {
		e.mu.Lock()
		delete(e.workers, chatID)
		// A track may have been enqueued between the queue draining and
		// this cleanup; hand it to a fresh worker instead of stranding it.
		if !e.closed && cache.Queues.Len(chatID) > 0 {
			nw := &worker{skip: make(chan struct{}, 1), stop: make(chan struct{}, 1)}
			e.workers[chatID] = nw
			e.wg.Add(1)
			go e.run(chatID, nw)
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()
		cache.Queues.SetActive(chatID, false)
	}()

	for {
		t := cache.Queues.Current(chatID)
		if t == nil {
			return
		}

		stopped := false
		if err := e.deliver(chatID, t); err != nil {
			gologging.WarnF("playback failed for %q in %d: %v", t.Name, chatID, err)
			e.announce(chatID, fmt.Sprintf("❌ Could not play <b>%s</b>: %s", t.Name, err.Error()))
		} else {
			stopped = e.hold(t, w)
		}

		if stopped {
			cache.Queues.Clear(chatID, true)
			return
		}
		cache.Queues.Advance(chatID, true)
	}
}

// hold keeps the playback slot occupied for the track's duration. It returns
// true when playback was stopped outright rather than skipped or finished.
func (e *Engine) hold(t *cache.Track, w *worker) bool {
	if t.Duration <= 0 {
		select {
		case <-w.stop:
			return true
		case <-w.skip:
		default:
		}
		return false
	}

	timer := time.NewTimer(time.Duration(t.Duration) * time.Second)
	defer timer.Stop()

	select {
	case <-timer.C:
		return false
	case <-w.skip:
		return false
	case <-w.stop:
		return true
	}
}

// deliver downloads the track if needed and sends it into the chat.
func (e *Engine) deliver(chatID int64, t *cache.Track) error {
	if t.FilePath == "" {
		path, err := dl.DownloadFile(context.Background(), t.CdnURL, "", false)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		if fi, err := os.Stat(path); err == nil && config.Conf.MaxFileSize > 0 && fi.Size() > config.Conf.MaxFileSize {
			_ = os.Remove(path)
			return fmt.Errorf("the track exceeds the configured size limit")
		}
		t.FilePath = path
	}

	caption := fmt.Sprintf("🎵 <b>Now playing:</b> %s\n‣ <b>Duration:</b> %s\n‣ <b>Requested by:</b> %s",
		t.Name, cache.SecToMin(t.Duration), t.Requester)
	_, err := e.bot.SendMedia(chatID, t.FilePath, &telegram.MediaOptions{Caption: caption})
	return err
}

// announce sends a plain status message to the chat, swallowing errors.
func (e *Engine) announce(chatID int64, text string) {
	if _, err := e.bot.SendMessage(chatID, text); err != nil {
		gologging.WarnF("failed to announce in %d: %v", chatID, err)
	}
}
