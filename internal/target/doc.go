// Package target turns discovered episode files into their rename
// destinations.
//
// The package is the core of tv-renamer:
//
//   - Config collects one invocation's settings (template, series name,
//     season number, padding, flags) and validates them.
//   - Config.Destination renders a single destination path from the template
//     and a per-episode context. It is pure: no filesystem access.
//   - Resolve orchestrates rendering across an ordered batch of episode
//     files, consulting the metadata service once per series and once per
//     episode when the template asks for titles.
//
// # Failure model
//
// Resolve returns either a complete, positionally ordered target list or an
// error; it never returns partial results. A failed series search surfaces
// as ErrSeriesLookup, a failed per-episode lookup as *EpisodeLookupError
// carrying the file that triggered it. This keeps a failed run safe to
// re-invoke: nothing has been renamed when resolution fails.
package target
