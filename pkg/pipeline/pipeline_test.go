package pipeline

import (
	"errors"
	"testing"

	"github.com/amarnathcjd/gogram/telegram"
)

type stubStage struct {
	name     string
	decision Decision
	err      error
	calls    *[]string
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Handle(_ *telegram.NewMessage) (Decision, error) {
	*s.calls = append(*s.calls, s.name)
	return s.decision, s.err
}

func TestChain_RunsStagesInOrder(t *testing.T) {
	var calls []string
	chain := NewChain(
		&stubStage{name: "first", calls: &calls},
		&stubStage{name: "second", calls: &calls},
		&stubStage{name: "third", calls: &calls},
	)

	if err := chain.Handle(nil); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("got %d stage calls, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("stage %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestChain_StopShortCircuits(t *testing.T) {
	var calls []string
	chain := NewChain(
		&stubStage{name: "locks", decision: Stop, calls: &calls},
		&stubStage{name: "activity", calls: &calls},
		&stubStage{name: "filters", calls: &calls},
	)

	if err := chain.Handle(nil); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(calls) != 1 || calls[0] != "locks" {
		t.Errorf("later stages observed a stopped message: calls = %v", calls)
	}
}

func TestChain_StageErrorDoesNotBlockLaterStages(t *testing.T) {
	var calls []string
	chain := NewChain(
		&stubStage{name: "broken", err: errors.New("boom"), calls: &calls},
		&stubStage{name: "next", calls: &calls},
	)

	if err := chain.Handle(nil); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(calls) != 2 {
		t.Errorf("a failing stage should not stop the chain: calls = %v", calls)
	}
}
