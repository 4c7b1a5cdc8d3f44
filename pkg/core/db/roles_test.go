package db

import "testing"

func TestRoleNamesRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleNone, RoleAssistant, RoleAdmin, RoleManager, RoleOwner} {
		if got := ParseRole(r.String()); got != r {
			t.Errorf("ParseRole(%q) = %v, want %v", r.String(), got, r)
		}
	}
}

func TestParseRoleUnknown(t *testing.T) {
	for _, s := range []string{"", "superuser", "ADMINX"} {
		if got := ParseRole(s); got != RoleNone {
			t.Errorf("ParseRole(%q) = %v, want RoleNone", s, got)
		}
	}
}

func TestParseRoleCaseInsensitive(t *testing.T) {
	if got := ParseRole("MANAGER"); got != RoleManager {
		t.Errorf("ParseRole(\"MANAGER\") = %v, want RoleManager", got)
	}
}

func TestRoleOrdering(t *testing.T) {
	order := []Role{RoleNone, RoleAssistant, RoleAdmin, RoleManager, RoleOwner}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("%v should rank below %v", order[i-1], order[i])
		}
	}
}

func TestRoleTitle(t *testing.T) {
	cases := map[Role]string{
		RoleAssistant: "Assistant",
		RoleAdmin:     "Admin",
		RoleManager:   "Manager",
		RoleOwner:     "Owner",
	}
	for r, want := range cases {
		if got := r.Title(); got != want {
			t.Errorf("%v.Title() = %q, want %q", r, got, want)
		}
	}
}
