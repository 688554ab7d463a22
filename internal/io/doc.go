// Package ioutils provides filename and filesystem utilities for tv-renamer.
//
// This package contains:
//   - Numeric zero-padding for episode numbers (PadNumber)
//   - Filesystem-safe filename cleanup (SanitizeName)
//   - Path shortening for readable output (ShortenPath)
//   - Directory creation and change-log appending helpers
//   - Banner image resizing (ImageService)
//
// PadNumber and SanitizeName are the two primitives the destination renderer
// is built on; their documented behavior is load-bearing for the rendered
// filenames and covered directly by tests.
package ioutils
