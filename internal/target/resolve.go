package target

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Happy-Ferret/tv-renamer/internal/template"
	"github.com/Happy-Ferret/tv-renamer/internal/tvdb"
)

// ErrSeriesLookup reports that the one-time series search against the
// metadata service failed. The whole batch is abandoned; no targets are
// produced.
var ErrSeriesLookup = errors.New("unable to get series information")

// EpisodeLookupError reports which file's title lookup failed. The batch is
// abandoned at that point; no targets are produced for any file.
type EpisodeLookupError struct {
	File string
	Err  error
}

func (e *EpisodeLookupError) Error() string {
	return fmt.Sprintf("no metadata for episode %q: %v", e.File, e.Err)
}

func (e *EpisodeLookupError) Unwrap() error { return e.Err }

// titleLookupLimit bounds concurrent metadata calls during Resolve.
const titleLookupLimit = 4

// Resolve maps an ordered list of episode files to their destination paths.
//
// Output ordering matches input ordering positionally: output[i] is the
// target for episodes[i]. A running episode counter starts at startIndex and
// increments by exactly 1 per file.
//
// When the template contains {title}, exactly one series search is performed
// first; its failure is terminal for the batch (ErrSeriesLookup). Episode
// title lookups, keyed by (cfg.SeasonNumber, counter), then run with bounded
// concurrency: the first observed failure cancels outstanding lookups and is
// returned as a *EpisodeLookupError naming the triggering file. In every
// failure case no partial result is returned.
func Resolve(ctx context.Context, svc tvdb.Service, cfg *Config, directory string, episodes []string, startIndex int) ([]string, error) {
	titles := make([]string, len(episodes))

	if template.RequiresTitle(cfg.Template) {
		series, err := svc.SearchSeries(ctx, cfg.SeriesName, cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSeriesLookup, err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(titleLookupLimit)
		for i := range episodes {
			i := i
			g.Go(func() error {
				title, err := svc.EpisodeTitle(gctx, series, cfg.SeasonNumber, startIndex+i)
				if err != nil {
					return &EpisodeLookupError{File: episodes[i], Err: err}
				}
				titles[i] = title
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	output := make([]string, 0, len(episodes))
	index := startIndex
	for i, file := range episodes {
		output = append(output, cfg.Destination(directory, file, index, titles[i]))
		index++
	}
	return output, nil
}
