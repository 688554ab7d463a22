// Package rename orchestrates a full rename run.
//
// The Manager ties the other packages together: the scan package discovers
// season directories and episode files, the target package resolves every
// destination path (consulting TheTVDB when the template asks for titles),
// and the Manager applies the renames with os.Rename.
//
// Progress is reported through a caller-supplied callback, so the flag-based
// CLI can print events directly while the TUI polls counters instead.
//
// Two safety properties hold throughout:
//   - Target resolution either yields a complete list or fails before any
//     file in that directory is touched.
//   - Dry-run mode records and reports planned changes without performing
//     any filesystem modification at all.
package rename
