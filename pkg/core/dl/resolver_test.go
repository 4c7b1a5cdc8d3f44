package dl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zuchzub/GroupGuard/pkg/config"
)

func newGatewayServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(PlatformTracks{Results: []MusicTrack{
			{URL: "https://open.spotify.com/track/abc", Name: "First Hit", Duration: 180},
			{URL: "https://open.spotify.com/track/def", Name: "Second Hit", Duration: 210},
		}})
	})
	mux.HandleFunc("/track", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(TrackInfo{
			URL:      r.URL.Query().Get("url"),
			CdnURL:   "https://cdn.example.com/abc.mp3",
			Name:     "First Hit",
			Duration: 180,
		})
	})
	return httptest.NewServer(mux)
}

func TestResolveFreeText(t *testing.T) {
	srv := newGatewayServer(t)
	defer srv.Close()
	config.Conf = &config.BotConfig{ApiUrl: srv.URL, ApiKey: "test-key"}

	info, err := NewResolver("first hit").Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if info.Name != "First Hit" {
		t.Errorf("expected the first search result, got %q", info.Name)
	}
	if info.URL != "https://open.spotify.com/track/abc" {
		t.Errorf("resolved the wrong track URL: %q", info.URL)
	}
	if info.CdnURL == "" {
		t.Error("expected a CDN URL on the resolved track")
	}
}

func TestResolveDirectURL(t *testing.T) {
	srv := newGatewayServer(t)
	defer srv.Close()
	config.Conf = &config.BotConfig{ApiUrl: srv.URL, ApiKey: "test-key"}

	query := "https://soundcloud.com/artist/some-song"
	info, err := NewResolver(query).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if info.URL != query {
		t.Errorf("a platform URL should resolve directly, got %q", info.URL)
	}
}

func TestResolveUnconfigured(t *testing.T) {
	config.Conf = &config.BotConfig{}

	if _, err := NewResolver("anything").Resolve(context.Background()); err == nil {
		t.Fatal("expected an error when the gateway is not configured")
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	config.Conf = &config.BotConfig{ApiUrl: "https://gateway.example.com", ApiKey: "k"}

	if _, err := NewResolver("   ").Resolve(context.Background()); err == nil {
		t.Fatal("expected an error for an empty query")
	}
}

func TestResolveMissingCdnURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/track", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(TrackInfo{Name: "No Source"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	config.Conf = &config.BotConfig{ApiUrl: srv.URL, ApiKey: "test-key"}

	if _, err := NewResolver("https://soundcloud.com/artist/track").Resolve(context.Background()); err == nil {
		t.Fatal("expected an error when the track has no downloadable source")
	}
}
