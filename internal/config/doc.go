// Package config provides configuration management for tv-renamer.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Template presets stored as a small YAML file
//   - Settings validation
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Template "{series} {season}x{episode}", pad width 2,
//	// episode numbering from 1, English metadata.
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist.
//
// # API key
//
// The TVDB API key is read from the settings file or the TVDB_API_KEY
// environment variable; the command entry points load a local .env file
// first, so the key never has to live in the repository.
package config
