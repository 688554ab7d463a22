package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Happy-Ferret/tv-renamer/internal/config"
	ioutils "github.com/Happy-Ferret/tv-renamer/internal/io"
	"github.com/Happy-Ferret/tv-renamer/internal/scan"
	"github.com/Happy-Ferret/tv-renamer/internal/target"
	"github.com/Happy-Ferret/tv-renamer/internal/tvdb"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a rename progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Change records one planned or performed rename.
type Change struct {
	Source string
	Target string
}

// Manager coordinates a rename run: it scans the directory tree, resolves
// target paths through the target package, and applies (or, in dry-run
// mode, reports) the renames.
//
// A Manager is built for a single invocation; it holds no state that
// survives Run.
type Manager struct {
	settings *config.Settings
	cfg      *target.Config
	svc      tvdb.Service
	images   *ioutils.ImageService

	changes    []Change
	totalFiles int32
	doneFiles  int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new rename Manager. svc may be nil when the template
// does not request episode titles and banner saving is disabled.
func NewManager(settings *config.Settings, cfg *target.Config, svc tvdb.Service, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		cfg:        cfg,
		svc:        svc,
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Run performs the rename pass.
//
// In automatic mode every recognized season subdirectory of the base
// directory is processed with its derived season number; directories whose
// names are not recognized as seasons are skipped. Otherwise the episodes
// of the base directory itself are renamed with the configured season
// number.
//
// Resolution failures are terminal before anything is renamed in the
// affected directory, so a failed run is safe to re-invoke.
func (m *Manager) Run(ctx context.Context) error {
	if m.settings.SaveBanner && !m.cfg.DryRun {
		if err := m.saveBanner(ctx); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Banner not saved: %v", err), Level: LevelWarning})
		}
	}

	if !m.cfg.Automatic {
		return m.renameDirectory(ctx, m.cfg.Directory, m.cfg.SeasonNumber)
	}

	seasons, err := scan.Seasons(m.cfg.Directory)
	if err != nil {
		return err
	}

	for _, season := range seasons {
		number, ok := scan.SeasonNumber(season)
		if !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: not a season directory", ioutils.ShortenPath(season)), Level: LevelVerbose})
			continue
		}
		if err := m.renameDirectory(ctx, season, number); err != nil {
			return err
		}
	}
	return nil
}

// GetProgress returns the number of files handled so far and the total.
func (m *Manager) GetProgress() (done, total int32) {
	return atomic.LoadInt32(&m.doneFiles), atomic.LoadInt32(&m.totalFiles)
}

// Changes returns a copy of the renames planned or performed so far.
func (m *Manager) Changes() []Change {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Change, len(m.changes))
	copy(out, m.changes)
	return out
}

func (m *Manager) renameDirectory(ctx context.Context, directory string, season int) error {
	episodes, err := scan.Episodes(directory)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No episodes in %s", ioutils.ShortenPath(directory)), Level: LevelVerbose})
		return nil
	}
	atomic.AddInt32(&m.totalFiles, int32(len(episodes)))

	cfg := *m.cfg
	cfg.SeasonNumber = season

	targets, err := target.Resolve(ctx, m.svc, &cfg, directory, episodes, cfg.EpisodeIndex)
	if err != nil {
		return err
	}

	for i, source := range episodes {
		if err := m.apply(source, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) apply(source, dest string) error {
	defer atomic.AddInt32(&m.doneFiles, 1)

	if source == dest {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Already named correctly: %s", ioutils.ShortenPath(source)), Level: LevelVerbose})
		return nil
	}

	if m.cfg.DryRun {
		m.recordChange(source, dest)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would rename %s -> %s", ioutils.ShortenPath(source), ioutils.ShortenPath(dest)), Level: LevelInfo})
		return nil
	}

	if m.cfg.Verbose {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Renaming %s -> %s", ioutils.ShortenPath(source), ioutils.ShortenPath(dest)), Level: LevelVerbose})
	}

	if err := os.Rename(source, dest); err != nil {
		return fmt.Errorf("failed to rename %s: %w", source, err)
	}

	m.recordChange(source, dest)
	if m.cfg.LogChanges {
		m.logChange(source, dest)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %s", filepath.Base(dest)), Level: LevelSuccess})
	return nil
}

func (m *Manager) recordChange(source, dest string) {
	m.mu.Lock()
	m.changes = append(m.changes, Change{Source: source, Target: dest})
	m.mu.Unlock()
}

// logChange appends one timestamped rename to the change log. Log failures
// are reported but never abort the run; the rename itself already happened.
func (m *Manager) logChange(source, dest string) {
	line := fmt.Sprintf("%s %s -> %s", time.Now().Format("2006-01-02 15:04:05"), source, dest)
	if err := ioutils.AppendLine(m.settings.LogFile, line); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to write change log: %v", err), Level: LevelWarning})
	}
}

// saveBanner downloads the series banner once per run and saves it as
// banner.jpg in the base directory, resized when configured. Requires a
// metadata service that implements tvdb.BannerProvider; otherwise it is a
// no-op.
func (m *Manager) saveBanner(ctx context.Context) error {
	provider, ok := m.svc.(tvdb.BannerProvider)
	if !ok {
		return nil
	}

	series, err := m.svc.SearchSeries(ctx, m.cfg.SeriesName, m.cfg.Language)
	if err != nil {
		return err
	}
	if !series.HasBanner() {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No banner available for %s", series.Name), Level: LevelVerbose})
		return nil
	}

	data, err := provider.Banner(ctx, series)
	if err != nil {
		return err
	}

	if m.settings.ResizeBanner {
		data, err = m.images.Resize(ctx, data, m.settings.BannerMaxSize)
	} else {
		data, err = m.images.ToJPEG(ctx, data)
	}
	if err != nil {
		return err
	}

	path := filepath.Join(m.cfg.Directory, "banner.jpg")
	if err := ioutils.WriteFile(path, data); err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved banner for %s", series.Name), Level: LevelSuccess})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
