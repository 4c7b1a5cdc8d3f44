package dl

// TrackInfo is the resolved form of a single track, including the CDN URL
// the audio is downloaded from.
type TrackInfo struct {
	URL      string `json:"url"`
	CdnURL   string `json:"cdnurl"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	TC       string `json:"tc"`
	Cover    string `json:"cover"`
	Duration int    `json:"duration"`
	Platform string `json:"platform"`
}

// MusicTrack is a single search result.
type MusicTrack struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	ID       string `json:"id"`
	Cover    string `json:"cover"`
	Duration int    `json:"duration"`
	Platform string `json:"platform"`
}

// PlatformTracks is a collection of search results.
type PlatformTracks struct {
	Results []MusicTrack `json:"results"`
}
