package tvdb

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"

	apihttp "github.com/Happy-Ferret/tv-renamer/internal/http"
)

const defaultBaseURL = "https://thetvdb.com"

// Client talks to TheTVDB legacy XML API.
//
// Two endpoints are used:
//
//	/api/GetSeries.php?seriesname=<name>&language=<lang>
//	/api/<apikey>/series/<id>/default/<season>/<episode>/<lang>.xml
//
// Both return small XML documents. Client implements Service and
// BannerProvider.
//
// Example usage:
//
//	client := tvdb.NewClient(apiKey)
//	series, err := client.SearchSeries(ctx, "One Punch Man", "en")
//	title, err := client.EpisodeTitle(ctx, series, 1, 3)
type Client struct {
	http    *apihttp.Client
	baseURL string
	apiKey  string
}

// NewClient creates a TVDB client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		http:    apihttp.NewClient(),
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// XML payloads for the two endpoints. TheTVDB mixes element-name casing
// between them; the tags below follow the wire format exactly.
type searchData struct {
	XMLName xml.Name       `xml:"Data"`
	Series  []searchSeries `xml:"Series"`
}

type searchSeries struct {
	ID       int    `xml:"seriesid"`
	Name     string `xml:"SeriesName"`
	Language string `xml:"language"`
	Banner   string `xml:"banner"`
}

type episodeData struct {
	XMLName xml.Name `xml:"Data"`
	Episode struct {
		Name string `xml:"EpisodeName"`
	} `xml:"Episode"`
}

// SearchSeries looks up a series by name and returns the first match, which
// TheTVDB orders by relevance. Returns ErrSeriesNotFound when the search
// yields no results.
func (c *Client) SearchSeries(ctx context.Context, name, language string) (*Series, error) {
	endpoint := fmt.Sprintf("%s/api/GetSeries.php?seriesname=%s&language=%s",
		c.baseURL, url.QueryEscape(name), url.QueryEscape(language))

	body, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("search series %q: %w", name, err)
	}

	series, err := parseSearch(body)
	if err != nil {
		return nil, fmt.Errorf("search series %q: %w", name, err)
	}
	return series, nil
}

// EpisodeTitle fetches the title of one episode in the series' default
// ordering. Returns ErrEpisodeNotFound when the season/episode pair does not
// exist or carries no title.
func (c *Client) EpisodeTitle(ctx context.Context, series *Series, season, episode int) (string, error) {
	endpoint := fmt.Sprintf("%s/api/%s/series/%d/default/%d/%d/%s.xml",
		c.baseURL, c.apiKey, series.ID, season, episode, series.Language)

	body, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("episode %dx%d of %q: %w", season, episode, series.Name, err)
	}

	title, err := parseEpisode(body)
	if err != nil {
		return "", fmt.Errorf("episode %dx%d of %q: %w", season, episode, series.Name, err)
	}
	return title, nil
}

// Banner downloads the series banner image. Implements BannerProvider.
func (c *Client) Banner(ctx context.Context, series *Series) ([]byte, error) {
	if !series.HasBanner() {
		return nil, fmt.Errorf("series %q has no banner", series.Name)
	}
	data, err := c.http.Get(ctx, c.baseURL+"/banners/"+series.BannerPath)
	if err != nil {
		return nil, fmt.Errorf("banner for %q: %w", series.Name, err)
	}
	return data, nil
}

func parseSearch(body []byte) (*Series, error) {
	var data searchData
	if err := xml.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("malformed search response: %w", err)
	}
	if len(data.Series) == 0 {
		return nil, ErrSeriesNotFound
	}

	first := data.Series[0]
	return &Series{
		ID:         first.ID,
		Name:       first.Name,
		Language:   first.Language,
		BannerPath: first.Banner,
	}, nil
}

func parseEpisode(body []byte) (string, error) {
	var data episodeData
	if err := xml.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("malformed episode response: %w", err)
	}
	if data.Episode.Name == "" {
		return "", ErrEpisodeNotFound
	}
	return data.Episode.Name, nil
}
