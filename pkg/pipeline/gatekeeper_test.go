package pipeline

import "testing"

func TestMatchBannedName_SubstringPattern(t *testing.T) {
	patterns := []string{"spam", "casino"}

	if _, ok := MatchBannedName(patterns, "Free Spam", "Bot"); !ok {
		t.Error("a name containing a banned word must match")
	}
	if _, ok := MatchBannedName(patterns, "Alice", ""); ok {
		t.Error("a clean name must not match")
	}
}

func TestMatchBannedName_FirstPatternWins(t *testing.T) {
	patterns := []string{"bot$", "spam"}

	pattern, ok := MatchBannedName(patterns, "Spam", "Bot")
	if !ok {
		t.Fatal("expected a match")
	}
	if pattern != "bot$" {
		t.Errorf("patterns must be tested in stored order, got %q", pattern)
	}
}

func TestMatchBannedName_RegexPattern(t *testing.T) {
	patterns := []string{`^crypto.*deals$`}

	if _, ok := MatchBannedName(patterns, "Crypto", "Best Deals"); !ok {
		t.Error("regex patterns must match against the lowercased full name")
	}
	if _, ok := MatchBannedName(patterns, "Cryptography", "Fan"); ok {
		t.Error("the anchored pattern must not match a non-matching name")
	}
}

func TestMatchBannedName_InvalidRegexFallsBackToSubstring(t *testing.T) {
	patterns := []string{"[invalid"}

	if _, ok := MatchBannedName(patterns, "Totally [invalid Name", ""); !ok {
		t.Error("an uncompilable pattern must still match as a substring")
	}
	if _, ok := MatchBannedName(patterns, "Regular User", ""); ok {
		t.Error("an uncompilable pattern must not match a clean name")
	}
}

func TestMatchBannedName_LastNameOptional(t *testing.T) {
	if _, ok := MatchBannedName([]string{"promo"}, "PromoAccount", ""); !ok {
		t.Error("matching must work with an empty last name")
	}
}
