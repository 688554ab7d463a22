// Package tvdb provides episode metadata lookups against TheTVDB.
//
// The package exposes two layers:
//
//  1. Service, the two-operation interface the target resolver depends on
//     (search a series by name; fetch one episode title by season and index).
//  2. Client, the concrete implementation speaking TheTVDB's legacy XML API.
//
// Keeping Service narrow makes the batch target resolver testable with
// substitute implementations that return canned titles or simulated
// failures, without performing network calls.
//
// # Lookup flow
//
//	client := tvdb.NewClient(apiKey)
//	series, err := client.SearchSeries(ctx, "Breaking Bad", "en")
//	if err != nil { ... }
//	title, err := client.EpisodeTitle(ctx, series, 2, 5)
//
// Lookups are never retried here; failures propagate to the caller, which
// treats them as terminal for the enclosing rename batch.
package tvdb
