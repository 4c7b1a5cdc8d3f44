package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestWarnOutcomeProgression(t *testing.T) {
	cases := []struct {
		count      int64
		wantBanned bool
		wantReport string
	}{
		{1, false, "(1/3)"},
		{2, false, "(2/3)"},
		{3, true, "3/3 warnings and has been banned"},
		{4, true, "4/3 warnings and has been banned"},
	}

	for _, c := range cases {
		banned, report := warnOutcome("user", c.count)
		if banned != c.wantBanned {
			t.Errorf("warnOutcome(%d) banned = %v, want %v", c.count, banned, c.wantBanned)
		}
		if !strings.Contains(report, c.wantReport) {
			t.Errorf("warnOutcome(%d) report = %q, want it to contain %q", c.count, report, c.wantReport)
		}
	}
}

func TestWarnOutcomeNeverBansBelowLimit(t *testing.T) {
	for count := int64(1); count < warnLimit; count++ {
		if banned, _ := warnOutcome("user", count); banned {
			t.Errorf("count %d must not ban", count)
		}
	}
}

func TestParseDurationArg(t *testing.T) {
	cases := []struct {
		args      string
		wantDur   time.Duration
		wantLabel string
	}{
		{"", 0, "permanently"},
		{"   ", 0, "permanently"},
		{"forever", 0, "permanently"},
		{"2h", 2 * time.Hour, "for 2h"},
		{"1d2h30m", 26*time.Hour + 30*time.Minute, "for 1d2h30m"},
		{"30m1d", 24*time.Hour + 30*time.Minute, "for 30m1d"},
	}

	for _, c := range cases {
		dur, label := parseDurationArg(c.args)
		if dur != c.wantDur {
			t.Errorf("parseDurationArg(%q) duration = %v, want %v", c.args, dur, c.wantDur)
		}
		if label != c.wantLabel {
			t.Errorf("parseDurationArg(%q) label = %q, want %q", c.args, label, c.wantLabel)
		}
	}
}
