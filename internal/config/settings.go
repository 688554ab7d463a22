package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// envAPIKey is the environment variable consulted for the TVDB API key.
// A .env file in the working directory is honored via godotenv autoload in
// the command entry points.
const envAPIKey = "TVDB_API_KEY"

// Settings holds all persistent configuration options.
type Settings struct {
	// Naming
	Template        string `json:"template"`
	PadWidth        int    `json:"pad_width"`
	StartingEpisode int    `json:"starting_episode"`
	DefaultSeason   int    `json:"default_season"`

	// Metadata service
	Language string `json:"language"`
	APIKey   string `json:"api_key"`

	// Banner handling
	SaveBanner    bool `json:"save_banner"`
	ResizeBanner  bool `json:"resize_banner"`
	BannerMaxSize int  `json:"banner_max_size"`

	// Change logging
	LogFile string `json:"log_file"`
}

// DefaultSettings returns settings with default values. The API key falls
// back to the TVDB_API_KEY environment variable.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Template:        "{series} {season}x{episode}",
		PadWidth:        2,
		StartingEpisode: 1,
		DefaultSeason:   1,

		Language: "en",
		APIKey:   os.Getenv(envAPIKey),

		SaveBanner:    false,
		ResizeBanner:  true,
		BannerMaxSize: 1000,

		LogFile: filepath.Join(homeDir, "tv-renamer.log"),
	}
}

// Load reads settings from a JSON file. A missing file yields the defaults;
// present-but-invalid JSON is an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints before the settings are used to build a
// rename invocation.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Template, validation.Required),
		validation.Field(&s.PadWidth, validation.Min(0)),
		validation.Field(&s.StartingEpisode, validation.Min(0)),
		validation.Field(&s.DefaultSeason, validation.Min(0)),
		validation.Field(&s.Language, validation.Required, validation.Length(2, 2)),
		validation.Field(&s.BannerMaxSize, validation.Required, validation.Min(1)),
	)
}
