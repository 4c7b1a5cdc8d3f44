package dl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/zuchzub/GroupGuard/pkg/config"
)

var supportedURL = regexp.MustCompile(`(?i)^(https?://)?([a-z0-9-]+\.)*(youtube\.com|youtu\.be|music\.youtube\.com|spotify\.com|jiosaavn\.com|soundcloud\.com)/\S+$`)

// Resolver turns a free-text query or a platform URL into a downloadable
// track through the configured API gateway.
type Resolver struct {
	Query  string
	ApiUrl string
	APIKey string
}

// NewResolver creates a Resolver for the given query.
func NewResolver(query string) *Resolver {
	return &Resolver{
		Query:  strings.TrimSpace(query),
		ApiUrl: strings.TrimRight(config.Conf.ApiUrl, "/"),
		APIKey: config.Conf.ApiKey,
	}
}

// Configured reports whether the API gateway is set up at all.
func (r *Resolver) Configured() bool {
	return r.ApiUrl != "" && r.APIKey != ""
}

// isURL reports whether the query is a link to a supported platform.
func (r *Resolver) isURL() bool {
	return supportedURL.MatchString(r.Query)
}

// Resolve finds the track for the query. URLs are resolved directly; plain
// text goes through the gateway's search endpoint and the first result wins.
func (r *Resolver) Resolve(ctx context.Context) (TrackInfo, error) {
	if !r.Configured() {
		return TrackInfo{}, errors.New("the music API gateway is not configured")
	}
	if r.Query == "" {
		return TrackInfo{}, errors.New("empty query")
	}

	trackURL := r.Query
	if !r.isURL() {
		tracks, err := r.search(ctx)
		if err != nil {
			return TrackInfo{}, err
		}
		if len(tracks.Results) == 0 {
			return TrackInfo{}, fmt.Errorf("no results found for %q", r.Query)
		}
		trackURL = tracks.Results[0].URL
	}

	return r.getTrack(ctx, trackURL)
}

// search queries the gateway for tracks matching free text.
func (r *Resolver) search(ctx context.Context) (PlatformTracks, error) {
	fullURL := fmt.Sprintf("%s/search?%s", r.ApiUrl, url.Values{
		"query": {r.Query},
		"limit": {"5"},
	}.Encode())

	resp, err := sendRequest(ctx, http.MethodGet, fullURL, nil, map[string]string{"X-API-Key": r.APIKey})
	if err != nil {
		return PlatformTracks{}, fmt.Errorf("the search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PlatformTracks{}, fmt.Errorf("unexpected status code during search: %s", resp.Status)
	}

	var data PlatformTracks
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return PlatformTracks{}, fmt.Errorf("failed to decode the search response: %w", err)
	}
	return data, nil
}

// getTrack fetches the downloadable form of a single track URL.
func (r *Resolver) getTrack(ctx context.Context, trackURL string) (TrackInfo, error) {
	fullURL := fmt.Sprintf("%s/track?%s", r.ApiUrl, url.Values{"url": {trackURL}}.Encode())
	resp, err := sendRequest(ctx, http.MethodGet, fullURL, nil, map[string]string{"X-API-Key": r.APIKey})
	if err != nil {
		return TrackInfo{}, fmt.Errorf("the track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TrackInfo{}, fmt.Errorf("unexpected status code while fetching the track: %s", resp.Status)
	}

	var data TrackInfo
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return TrackInfo{}, fmt.Errorf("failed to decode the track response: %w", err)
	}
	if data.CdnURL == "" {
		return TrackInfo{}, errors.New("the track has no downloadable source")
	}
	return data, nil
}
