package target

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Happy-Ferret/tv-renamer/internal/template"
)

// Config holds the settings of one rename invocation.
//
// It is constructed once from user input (CLI flags merged over the settings
// file) and is read-only afterward; nothing in this package mutates it.
type Config struct {
	// Automatic infers the series name and per-season numbers from the
	// directory structure instead of taking them from flags.
	Automatic bool

	// DryRun reports the changes that would be made without renaming
	// anything.
	DryRun bool

	// LogChanges appends performed renames to the change log file.
	LogChanges bool

	// Verbose reports every change that is being attempted and performed.
	Verbose bool

	// Directory is the base directory of the series to rename.
	Directory string

	// SeriesName is substituted for {series} and used for metadata
	// searches.
	SeriesName string

	// SeasonNumber is substituted for {season} and keys episode title
	// lookups. Non-negative.
	SeasonNumber int

	// EpisodeIndex is the episode number renaming starts from.
	// Non-negative.
	EpisodeIndex int

	// PadWidth is the minimum digit count for {episode}. Numbers needing
	// more digits are rendered in full, never truncated.
	PadWidth int

	// Language is the metadata lookup language code, e.g. "en".
	Language string

	// Template is the parsed filename template.
	Template []template.Token
}

// InferSeriesName derives a series name from the base name of the series
// directory. Trailing path separators are ignored.
func InferSeriesName(directory string) string {
	return strings.TrimSpace(filepath.Base(filepath.Clean(directory)))
}

// Validate checks that the numeric fields are non-negative and that a
// directory and template are present.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Directory, validation.Required),
		validation.Field(&c.SeasonNumber, validation.Min(0)),
		validation.Field(&c.EpisodeIndex, validation.Min(0)),
		validation.Field(&c.PadWidth, validation.Min(0)),
		validation.Field(&c.Template, validation.Required),
	)
}
