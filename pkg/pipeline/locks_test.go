package pipeline

import (
	"errors"
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

func TestShouldDelete_AllLockWins(t *testing.T) {
	locks := db.Locks{All: true}

	cases := []MessageContent{
		{Text: "hello"},
		{Text: "https://example.com"},
		{HasMedia: true},
		{},
	}
	for _, c := range cases {
		if !ShouldDelete(locks, c) {
			t.Errorf("the all lock must delete %+v", c)
		}
	}
}

func TestShouldDelete_LinksLock(t *testing.T) {
	locks := db.Locks{Links: true}

	tests := []struct {
		text string
		want bool
	}{
		{"check https://x.com", true},
		{"http://insecure.example", true},
		{"join t.me/somegroup", true},
		{"no links here", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ShouldDelete(locks, MessageContent{Text: tt.text}); got != tt.want {
			t.Errorf("ShouldDelete(links, %q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestShouldDelete_MediaLock(t *testing.T) {
	locks := db.Locks{Media: true}

	if !ShouldDelete(locks, MessageContent{HasMedia: true}) {
		t.Error("media must be deleted under the media lock")
	}
	if ShouldDelete(locks, MessageContent{Text: "plain text"}) {
		t.Error("plain text must survive the media lock")
	}
}

func TestShouldDelete_Deterministic(t *testing.T) {
	locks := db.Locks{Links: true, Media: true}
	content := MessageContent{Text: "see https://x.com", HasMedia: true}

	first := ShouldDelete(locks, content)
	for i := 0; i < 10; i++ {
		if ShouldDelete(locks, content) != first {
			t.Fatal("the lock decision must be deterministic for the same input")
		}
	}
}

func TestShouldDelete_NoLocksPassesEverything(t *testing.T) {
	if ShouldDelete(db.Locks{}, MessageContent{Text: "https://x.com", HasMedia: true}) {
		t.Error("nothing may be deleted when no lock is set")
	}
}

func TestImmune(t *testing.T) {
	const owner int64 = 100

	tests := []struct {
		name     string
		senderID int64
		role     db.Role
		hasRole  bool
		want     bool
	}{
		{"owner without a role", owner, db.RoleNone, false, true},
		{"admin member", 2, db.RoleAdmin, true, true},
		{"manager member", 3, db.RoleManager, true, true},
		{"group owner role", 4, db.RoleOwner, true, true},
		{"assistant member", 5, db.RoleAssistant, true, false},
		{"member without a role", 6, db.RoleNone, false, false},
		{"failed lookup ignores the role value", 7, db.RoleAdmin, false, false},
	}
	for _, tt := range tests {
		if got := Immune(tt.senderID, owner, tt.role, tt.hasRole); got != tt.want {
			t.Errorf("%s: Immune = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAdminSurvivesLockedContent(t *testing.T) {
	const owner int64 = 100
	locks := db.Locks{Links: true}
	content := MessageContent{Text: "join t.me/somegroup"}

	if !ShouldDelete(locks, content) {
		t.Fatal("the link must violate the links lock")
	}
	if !Immune(2, owner, db.RoleAdmin, true) {
		t.Error("an Admin-level member posting the same text must not be deleted")
	}
	if Immune(3, owner, db.RoleNone, false) {
		t.Error("a plain member posting the same text must be deleted")
	}
}

func TestEnforcementDecision(t *testing.T) {
	if enforcementDecision(nil) != Stop {
		t.Error("a deleted message must stop the chain")
	}
	if enforcementDecision(errors.New("message delete forbidden")) != Continue {
		t.Error("a message that survived the delete must keep flowing through the chain")
	}
}
