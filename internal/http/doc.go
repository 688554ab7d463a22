// Package http provides a small HTTP client used by the TVDB metadata
// client.
//
// The client sets a tv-renamer User-Agent, applies a request timeout, and
// threads context.Context through every request so lookups can be cancelled.
// Retry behavior is deliberately absent: metadata calls are not retried at
// any layer.
package http
