package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestQueueTable_FIFOOrder(t *testing.T) {
	q := NewQueueTable()
	chatID := int64(-100123)

	for i := 0; i < 3; i++ {
		pos := q.Enqueue(chatID, &Track{Name: fmt.Sprintf("track%d", i)})
		if pos != i {
			t.Errorf("Enqueue returned position %d, want %d", pos, i)
		}
	}

	if got := q.Current(chatID); got == nil || got.Name != "track0" {
		t.Fatalf("Current = %+v, want track0", got)
	}

	next := q.Advance(chatID, false)
	if next == nil || next.Name != "track1" {
		t.Errorf("Advance = %+v, want track1", next)
	}
	if q.Len(chatID) != 2 {
		t.Errorf("Len = %d, want 2", q.Len(chatID))
	}
}

func TestQueueTable_AdvanceOnEmpty(t *testing.T) {
	q := NewQueueTable()
	if q.Advance(-1, false) != nil {
		t.Error("Advance on an empty queue must return nil")
	}
	if q.Current(-1) != nil {
		t.Error("Current on an unknown chat must return nil")
	}
}

func TestQueueTable_ChatsAreIndependent(t *testing.T) {
	q := NewQueueTable()
	q.Enqueue(-1, &Track{Name: "a"})
	q.Enqueue(-2, &Track{Name: "b"})

	q.Clear(-1, false)

	if q.Len(-1) != 0 {
		t.Error("cleared chat must have an empty queue")
	}
	if got := q.Current(-2); got == nil || got.Name != "b" {
		t.Error("clearing one chat must not touch another")
	}
}

func TestQueueTable_ActiveState(t *testing.T) {
	q := NewQueueTable()

	if q.IsActive(-1) {
		t.Error("an unknown chat must not be active")
	}

	q.SetActive(-1, true)
	if !q.IsActive(-1) {
		t.Error("SetActive(true) must mark the chat active")
	}

	chats := q.ActiveChats()
	if len(chats) != 1 || chats[0] != -1 {
		t.Errorf("ActiveChats = %v, want [-1]", chats)
	}

	q.SetActive(-1, false)
	if q.IsActive(-1) {
		t.Error("SetActive(false) must mark the chat idle")
	}
}

func TestQueueTable_ConcurrentEnqueue(t *testing.T) {
	q := NewQueueTable()
	chatID := int64(-100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q.Enqueue(chatID, &Track{Name: fmt.Sprintf("t%d", n)})
		}(i)
	}
	wg.Wait()

	if q.Len(chatID) != 50 {
		t.Errorf("Len = %d after concurrent enqueues, want 50", q.Len(chatID))
	}
}
