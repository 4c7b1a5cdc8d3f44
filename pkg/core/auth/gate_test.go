package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

const ownerID = 1000

func staticLookup(roles map[int64]db.Role) RoleLookup {
	return func(_ context.Context, userID, _ int64) (db.Role, bool, error) {
		role, ok := roles[userID]
		return role, ok, nil
	}
}

func TestGate_OwnerBypassesEveryCheck(t *testing.T) {
	g := &Gate{OwnerID: ownerID, Lookup: staticLookup(nil)}

	for _, required := range []db.Role{db.RoleAssistant, db.RoleAdmin, db.RoleManager, db.RoleOwner} {
		ok, err := g.Allow(context.Background(), ownerID, -100, required)
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !ok {
			t.Errorf("owner should bypass the %s check", required)
		}
	}
}

func TestGate_PermitMatrix(t *testing.T) {
	stored := []db.Role{db.RoleAssistant, db.RoleAdmin, db.RoleManager, db.RoleOwner}
	g := &Gate{OwnerID: ownerID, Lookup: staticLookup(map[int64]db.Role{
		1: db.RoleAssistant,
		2: db.RoleAdmin,
		3: db.RoleManager,
		4: db.RoleOwner,
	})}

	for i, s := range stored {
		for _, required := range stored {
			ok, err := g.Allow(context.Background(), int64(i+1), -100, required)
			if err != nil {
				t.Fatalf("Allow returned error: %v", err)
			}
			want := s >= required
			if ok != want {
				t.Errorf("stored=%s required=%s: got %v, want %v", s, required, ok, want)
			}
		}
	}
}

func TestGate_NoStoredRoleFailsClosed(t *testing.T) {
	g := &Gate{OwnerID: ownerID, Lookup: staticLookup(nil)}

	ok, err := g.Allow(context.Background(), 42, -100, db.RoleAssistant)
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if ok {
		t.Error("a user without a stored role must be denied")
	}
}

func TestGate_LookupErrorDenies(t *testing.T) {
	g := &Gate{OwnerID: ownerID, Lookup: func(context.Context, int64, int64) (db.Role, bool, error) {
		return db.RoleOwner, true, errors.New("connection lost")
	}}

	ok, err := g.Allow(context.Background(), 42, -100, db.RoleAssistant)
	if err == nil {
		t.Fatal("expected the lookup error to surface")
	}
	if ok {
		t.Error("a failing lookup must deny the action")
	}
}
