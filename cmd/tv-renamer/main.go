package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Happy-Ferret/tv-renamer/internal/config"
	ioutils "github.com/Happy-Ferret/tv-renamer/internal/io"
	"github.com/Happy-Ferret/tv-renamer/internal/rename"
	"github.com/Happy-Ferret/tv-renamer/internal/target"
	"github.com/Happy-Ferret/tv-renamer/internal/template"
	"github.com/Happy-Ferret/tv-renamer/internal/tvdb"
)

func main() {
	// Command line flags
	var (
		dirFlag       = flag.String("dir", "", "Series directory to rename (or pass as positional argument)")
		seriesFlag    = flag.String("series", "", "Series name (default: the directory's base name)")
		seasonFlag    = flag.Int("season", -1, "Season number (overrides config)")
		episodeFlag   = flag.Int("episode", -1, "Episode number to start counting from (overrides config)")
		padFlag       = flag.Int("pad", -1, "Minimum digit count for episode numbers (overrides config)")
		templateFlag  = flag.String("template", "", "Filename template, e.g. \"{series} {season}x{episode} {title}\"")
		presetFlag    = flag.String("preset", "", "Named template preset from the presets file")
		automaticFlag = flag.Bool("automatic", false, "Detect seasons from the directory structure")
		dryRunFlag    = flag.Bool("dry-run", false, "Show the renames without performing them")
		logFlag       = flag.Bool("log", false, "Append performed renames to the change log")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		configFlag    = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	// CLI mode - require a directory
	directory := *dirFlag
	if directory == "" && flag.NArg() > 0 {
		directory = flag.Arg(0)
	}
	if directory == "" {
		fmt.Println("tv-renamer - Rename TV episodes from a template")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tv-renamer -dir <directory> [options]")
		fmt.Println("  tv-renamer <directory> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: tv-renamer-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *padFlag >= 0 {
		settings.PadWidth = *padFlag
	}
	if *episodeFlag >= 0 {
		settings.StartingEpisode = *episodeFlag
	}
	if *seasonFlag >= 0 {
		settings.DefaultSeason = *seasonFlag
	}

	// Resolve the template: -template wins, then -preset, then config.
	templateText := settings.Template
	if *presetFlag != "" {
		presets, err := config.LoadPresets(config.DefaultPresetsPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
			os.Exit(1)
		}
		templateText, err = presets.Lookup(*presetFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *templateFlag != "" {
		templateText = *templateFlag
	}

	tokens, err := template.Tokenize(templateText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid template %q: %v\n", templateText, err)
		os.Exit(1)
	}

	seriesName := *seriesFlag
	if seriesName == "" {
		seriesName = target.InferSeriesName(directory)
	}

	cfg := &target.Config{
		Automatic:    *automaticFlag,
		DryRun:       *dryRunFlag,
		LogChanges:   *logFlag,
		Verbose:      *verboseFlag,
		Directory:    directory,
		SeriesName:   seriesName,
		SeasonNumber: settings.DefaultSeason,
		EpisodeIndex: settings.StartingEpisode,
		PadWidth:     settings.PadWidth,
		Language:     settings.Language,
		Template:     tokens,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(1)
	}

	// The metadata client is only needed for episode titles or banners.
	var svc tvdb.Service
	if template.RequiresTitle(tokens) || settings.SaveBanner {
		if settings.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Error: a TVDB API key is required for episode titles (set TVDB_API_KEY or api_key in the config)")
			os.Exit(1)
		}
		svc = tvdb.NewClient(settings.APIKey)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := rename.NewManager(settings, cfg, svc, func(event rename.ProgressEvent) {
		if event.Level == rename.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case rename.LevelError:
			prefix = "error: "
		case rename.LevelWarning:
			prefix = "warning: "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	done, total := manager.GetProgress()
	changes := manager.Changes()

	fmt.Println()
	if *dryRunFlag {
		fmt.Printf("Dry run: %d of %d file(s) would be renamed\n", len(changes), total)
	} else {
		fmt.Printf("Renamed %d of %d file(s)\n", len(changes), done)
	}
	if *verboseFlag {
		for _, c := range changes {
			fmt.Printf("  %s -> %s\n", ioutils.ShortenPath(c.Source), ioutils.ShortenPath(c.Target))
		}
	}
}
