package pipeline

import (
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

func TestMatchTrigger_WholeWordOnly(t *testing.T) {
	filters := []db.Filter{{Name: "hi", ReplyText: "hello!"}}

	if MatchTrigger(filters, "hi there") == nil {
		t.Error(`"hi" must fire on "hi there"`)
	}
	if MatchTrigger(filters, "there hi") == nil {
		t.Error(`"hi" must fire at the end of a message`)
	}
	if MatchTrigger(filters, "history lesson") != nil {
		t.Error(`"hi" must not fire on "history"`)
	}
	if MatchTrigger(filters, "this is hilarious") != nil {
		t.Error(`"hi" must not fire inside "hilarious"`)
	}
}

func TestMatchTrigger_CaseInsensitive(t *testing.T) {
	filters := []db.Filter{{Name: "rules", ReplyText: "read the rules"}}

	if MatchTrigger(filters, "What are the RULES here") == nil {
		t.Error("trigger matching must be case-insensitive")
	}
}

func TestMatchTrigger_FirstMatchWins(t *testing.T) {
	filters := []db.Filter{
		{Name: "hello", ReplyText: "first"},
		{Name: "world", ReplyText: "second"},
	}

	got := MatchTrigger(filters, "hello world")
	if got == nil || got.ReplyText != "first" {
		t.Errorf("the first stored filter must win, got %+v", got)
	}
}

func TestMatchTrigger_NoFilters(t *testing.T) {
	if MatchTrigger(nil, "anything at all") != nil {
		t.Error("no filters must mean no match")
	}
}
