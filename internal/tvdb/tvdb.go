package tvdb

import (
	"context"
	"errors"
)

// ErrSeriesNotFound is returned when a series search yields no results.
var ErrSeriesNotFound = errors.New("series not found")

// ErrEpisodeNotFound is returned when the requested season/episode pair has
// no metadata.
var ErrEpisodeNotFound = errors.New("episode not found")

// Series identifies one series from a search result. ID keys all subsequent
// episode lookups; BannerPath is the relative artwork path, empty when the
// series has no banner.
type Series struct {
	ID         int
	Name       string
	Language   string
	BannerPath string
}

// HasBanner returns true if the series has artwork available for download.
func (s *Series) HasBanner() bool {
	return s.BannerPath != ""
}

// Service is the metadata lookup seam consumed by the target resolver.
//
// The concrete implementation is Client; tests substitute implementations
// that return canned titles or simulated failures without network calls.
// Neither operation is retried by callers.
type Service interface {
	// SearchSeries looks up a series by name, returning the best match.
	SearchSeries(ctx context.Context, name, language string) (*Series, error)

	// EpisodeTitle returns the title of the episode at the given index
	// within the given season of the series.
	EpisodeTitle(ctx context.Context, series *Series, season, episode int) (string, error)
}

// BannerProvider is implemented by metadata services that can also fetch
// series artwork. The rename manager uses it opportunistically; canned test
// services need not implement it.
type BannerProvider interface {
	// Banner downloads the series banner image bytes.
	Banner(ctx context.Context, series *Series) ([]byte, error)
}
