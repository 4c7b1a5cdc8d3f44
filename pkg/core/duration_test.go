package core

import (
	"testing"
	"time"
)

func TestParseRestrictionDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"1d5h30m", 24*time.Hour + 5*time.Hour + 30*time.Minute, true},
		{"5h1d30m", 24*time.Hour + 5*time.Hour + 30*time.Minute, true},
		{"30m5h1d", 24*time.Hour + 5*time.Hour + 30*time.Minute, true},
		{"2d", 48 * time.Hour, true},
		{"90m", 90 * time.Minute, true},
		{"1D5H", 29 * time.Hour, true},
		{"0", 0, false},
		{"", 0, false},
		{"forever", 0, false},
		{"d5h", 5 * time.Hour, true},
	}

	for _, tt := range tests {
		got, ok := ParseRestrictionDuration(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseRestrictionDuration(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseRestrictionDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseRestrictionDuration_OrderDoesNotMatter(t *testing.T) {
	a, okA := ParseRestrictionDuration("1d5h")
	b, okB := ParseRestrictionDuration("5h1d")
	if !okA || !okB {
		t.Fatal("both forms should parse")
	}
	if a != b {
		t.Errorf("component order changed the result: %v != %v", a, b)
	}
}
