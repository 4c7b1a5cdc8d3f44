package vc

import (
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/core/cache"
)

func newTestEngine() *Engine {
	return &Engine{workers: make(map[int64]*worker)}
}

func TestPlayRequiresAttachedClient(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Play(-1001, &cache.Track{Name: "x"}); err == nil {
		t.Fatal("expected an error when no client is attached")
	}
}

func TestSkipWithoutPlayback(t *testing.T) {
	e := newTestEngine()
	if e.Skip(-1001) {
		t.Error("Skip should report false when nothing is playing")
	}
}

func TestStopWithoutPlayback(t *testing.T) {
	e := newTestEngine()
	if e.Stop(-1001) {
		t.Error("Stop should report false when nothing is playing")
	}
}

func TestShutdownIsIdempotentWhenIdle(t *testing.T) {
	e := newTestEngine()
	e.Shutdown()
	e.Shutdown()

	if _, err := e.Play(-1001, &cache.Track{Name: "x"}); err == nil {
		t.Error("Play should fail after shutdown")
	}
}
