package dl

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/config"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"song.mp3":         "song.mp3",
		"  spaced.mp3  ":   "spaced.mp3",
		"a/b\\c.mp3":       "abc.mp3",
		`bad<>:"|?*.mp3`:   "bad.mp3",
		"nested/../up.mp3": "nested..up.mp3",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractFilename(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{`attachment; filename=track.mp3`, "track.mp3"},
		{`attachment; filename*=UTF-8''na%20me.mp3`, "na me.mp3"},
		{`inline`, ""},
		{``, ""},
	}
	for _, c := range cases {
		if got := extractFilename(c.header); got != c.want {
			t.Errorf("extractFilename(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestDetermineFilename(t *testing.T) {
	config.Conf = &config.BotConfig{DownloadsDir: t.TempDir()}

	got := determineFilename("https://cdn.example.com/audio/track.mp3", "")
	if filepath.Base(got) != "track.mp3" {
		t.Errorf("expected the URL path name, got %q", got)
	}

	got = determineFilename("https://cdn.example.com/audio/track.mp3", `attachment; filename=override.mp3`)
	if filepath.Base(got) != "override.mp3" {
		t.Errorf("expected the Content-Disposition name, got %q", got)
	}

	got = determineFilename("https://cdn.example.com/", "")
	if !strings.HasSuffix(got, ".tmp") {
		t.Errorf("expected a generated name for an unusable URL, got %q", got)
	}
}
