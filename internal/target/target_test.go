package target

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Happy-Ferret/tv-renamer/internal/template"
	"github.com/Happy-Ferret/tv-renamer/internal/tvdb"
)

// fakeService returns canned titles keyed by "SxE" and simulated failures,
// standing in for TheTVDB in resolver tests. EpisodeTitle may be called
// concurrently; the maps are read-only after construction.
type fakeService struct {
	titles    map[string]string
	searchErr error
	searches  int32
}

func (f *fakeService) SearchSeries(ctx context.Context, name, language string) (*tvdb.Series, error) {
	atomic.AddInt32(&f.searches, 1)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return &tvdb.Series{ID: 1, Name: name, Language: language}, nil
}

func (f *fakeService) EpisodeTitle(ctx context.Context, series *tvdb.Series, season, episode int) (string, error) {
	title, ok := f.titles[fmt.Sprintf("%dx%d", season, episode)]
	if !ok {
		return "", tvdb.ErrEpisodeNotFound
	}
	return title, nil
}

func mustTokenize(t *testing.T, s string) []template.Token {
	t.Helper()
	tokens, err := template.Tokenize(s)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", s, err)
	}
	return tokens
}

func TestDestination_RepresentativeTemplates(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		file     string
		episode  int
		title    string
		want     string
	}{
		{
			name:    "literal only",
			tmpl:    "Pilot Episode",
			file:    "raw.mkv",
			episode: 1,
			want:    "Pilot Episode.mkv",
		},
		{
			name:    "series season episode",
			tmpl:    "{series} {season}x{episode}",
			file:    "raw.MKV",
			episode: 5,
			want:    "One Punch Man 1x05.MKV",
		},
		{
			name:    "full with title",
			tmpl:    "{series} {season}x{episode} {title}",
			file:    "raw.mkv",
			episode: 3,
			title:   "Crisis/Aftermath",
			want:    "One Punch Man 1x03 Crisis-Aftermath.mkv",
		},
	}

	cfgBase := Config{
		SeriesName:   "One Punch Man",
		SeasonNumber: 1,
		PadWidth:     2,
		Language:     "en",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cfgBase
			cfg.Template = mustTokenize(t, tt.tmpl)

			got := cfg.Destination("/series/Season 1", tt.file, tt.episode, tt.title)
			want := filepath.Join("/series/Season 1", tt.want)
			if got != want {
				t.Errorf("Destination() = %q, want %q", got, want)
			}
		})
	}
}

func TestDestination_Deterministic(t *testing.T) {
	cfg := Config{
		SeriesName:   "Show",
		SeasonNumber: 2,
		PadWidth:     2,
		Template:     mustTokenize(t, "{series} {season}x{episode} {title}"),
	}

	first := cfg.Destination("/d", "a.mkv", 7, "Title")
	second := cfg.Destination("/d", "a.mkv", 7, "Title")
	if first != second {
		t.Errorf("Destination() not deterministic: %q vs %q", first, second)
	}
}

func TestDestination_NoExtension(t *testing.T) {
	cfg := Config{
		SeriesName: "Show",
		PadWidth:   2,
		Template:   mustTokenize(t, "{series} {episode}"),
	}

	got := cfg.Destination("/d", "noext", 1, "")
	if got != filepath.Join("/d", "Show 01") {
		t.Errorf("Destination() = %q, want %q", got, filepath.Join("/d", "Show 01"))
	}
}

func TestDestination_EmptyTemplate(t *testing.T) {
	cfg := Config{Template: nil}
	got := cfg.Destination("/d", "file.mkv", 1, "")
	if got != filepath.Join("/d", ".mkv") {
		t.Errorf("Destination() = %q, want %q", got, filepath.Join("/d", ".mkv"))
	}
}

func TestDestination_EpisodeOverflowsPad(t *testing.T) {
	cfg := Config{
		PadWidth: 2,
		Template: mustTokenize(t, "{episode}"),
	}
	got := cfg.Destination("/d", "f.mkv", 123, "")
	if got != filepath.Join("/d", "123.mkv") {
		t.Errorf("Destination() = %q, want full unpadded number, got %q", got, got)
	}
}

func TestResolve_WithoutTitles(t *testing.T) {
	cfg := &Config{
		SeriesName:   "Show",
		SeasonNumber: 1,
		PadWidth:     2,
		Language:     "en",
		Template:     mustTokenize(t, "{series} {season}x{episode}"),
	}

	episodes := []string{"/d/b.mkv", "/d/a.mkv", "/d/c.mkv"}
	svc := &fakeService{}

	targets, err := Resolve(context.Background(), svc, cfg, "/d", episodes, 4)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(targets) != len(episodes) {
		t.Fatalf("Resolve() returned %d targets, want %d", len(targets), len(episodes))
	}
	// Positional: targets follow the input order, counter starts at 4.
	want := []string{
		filepath.Join("/d", "Show 1x04.mkv"),
		filepath.Join("/d", "Show 1x05.mkv"),
		filepath.Join("/d", "Show 1x06.mkv"),
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("targets[%d] = %q, want %q", i, targets[i], want[i])
		}
	}

	if svc.searches != 0 {
		t.Errorf("series search performed %d times without {title} in template, want 0", svc.searches)
	}
}

func TestResolve_WithTitles(t *testing.T) {
	cfg := &Config{
		SeriesName:   "Show",
		SeasonNumber: 1,
		PadWidth:     2,
		Language:     "en",
		Template:     mustTokenize(t, "{series} {season}x{episode} {title}"),
	}

	svc := &fakeService{titles: map[string]string{
		"1x1": "First",
		"1x2": "Second",
		"1x3": "Third",
	}}

	episodes := []string{"/d/x.mkv", "/d/y.mkv", "/d/z.mkv"}
	targets, err := Resolve(context.Background(), svc, cfg, "/d", episodes, 1)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []string{
		filepath.Join("/d", "Show 1x01 First.mkv"),
		filepath.Join("/d", "Show 1x02 Second.mkv"),
		filepath.Join("/d", "Show 1x03 Third.mkv"),
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("targets[%d] = %q, want %q", i, targets[i], want[i])
		}
	}

	if svc.searches != 1 {
		t.Errorf("series search performed %d times, want exactly 1", svc.searches)
	}
}

func TestResolve_SeriesLookupFailed(t *testing.T) {
	cfg := &Config{
		SeriesName: "Typo'd Show",
		Language:   "en",
		Template:   mustTokenize(t, "{title}"),
	}
	svc := &fakeService{searchErr: tvdb.ErrSeriesNotFound}

	targets, err := Resolve(context.Background(), svc, cfg, "/d", []string{"/d/a.mkv"}, 1)
	if !errors.Is(err, ErrSeriesLookup) {
		t.Errorf("Resolve() error = %v, want ErrSeriesLookup", err)
	}
	if targets != nil {
		t.Error("Resolve() returned partial targets after series lookup failure")
	}
}

func TestResolve_EpisodeLookupFailed(t *testing.T) {
	cfg := &Config{
		SeriesName:   "Show",
		SeasonNumber: 1,
		PadWidth:     2,
		Language:     "en",
		Template:     mustTokenize(t, "{title}"),
	}

	// Episode 3 has no metadata; the third file must be named in the error.
	svc := &fakeService{titles: map[string]string{
		"1x1": "First",
		"1x2": "Second",
	}}

	episodes := []string{"/d/a.mkv", "/d/b.mkv", "/d/c.mkv"}
	targets, err := Resolve(context.Background(), svc, cfg, "/d", episodes, 1)
	if err == nil {
		t.Fatal("Resolve() succeeded with a missing episode")
	}

	var lookupErr *EpisodeLookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Resolve() error type = %T, want *EpisodeLookupError", err)
	}
	if lookupErr.File != "/d/c.mkv" {
		t.Errorf("EpisodeLookupError.File = %q, want %q", lookupErr.File, "/d/c.mkv")
	}
	if targets != nil {
		t.Error("Resolve() returned partial targets after episode lookup failure")
	}
}

func TestResolve_EmptyBatch(t *testing.T) {
	cfg := &Config{
		SeriesName: "Show",
		Template:   mustTokenize(t, "{series}"),
	}

	targets, err := Resolve(context.Background(), &fakeService{}, cfg, "/d", nil, 1)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("Resolve() returned %d targets for empty input", len(targets))
	}
}

func TestInferSeriesName(t *testing.T) {
	tests := []struct {
		directory string
		want      string
	}{
		{"/media/tv/One Punch Man", "One Punch Man"},
		{"/media/tv/One Punch Man/", "One Punch Man"},
		{"Breaking Bad", "Breaking Bad"},
	}
	for _, tt := range tests {
		if got := InferSeriesName(tt.directory); got != tt.want {
			t.Errorf("InferSeriesName(%q) = %q, want %q", tt.directory, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Directory:    "/series",
		SeasonNumber: 1,
		EpisodeIndex: 1,
		PadWidth:     2,
		Template:     mustTokenize(t, "{series}"),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v for valid config", err)
	}

	missingDir := valid
	missingDir.Directory = ""
	if err := missingDir.Validate(); err == nil {
		t.Error("Validate() accepted empty directory")
	}

	negativeSeason := valid
	negativeSeason.SeasonNumber = -1
	if err := negativeSeason.Validate(); err == nil {
		t.Error("Validate() accepted negative season number")
	}

	emptyTemplate := valid
	emptyTemplate.Template = nil
	if err := emptyTemplate.Validate(); err == nil {
		t.Error("Validate() accepted empty template")
	}
}
