// Package tui provides a Bubble Tea terminal user interface for tv-renamer.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Happy-Ferret/tv-renamer/internal/config"
	ioutils "github.com/Happy-Ferret/tv-renamer/internal/io"
	"github.com/Happy-Ferret/tv-renamer/internal/rename"
	"github.com/Happy-Ferret/tv-renamer/internal/target"
	"github.com/Happy-Ferret/tv-renamer/internal/template"
	"github.com/Happy-Ferret/tv-renamer/internal/tvdb"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRenaming
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	err       error

	// Rename context
	ctx    context.Context
	cancel context.CancelFunc

	manager *rename.Manager

	doneFiles  int32
	totalFiles int32
	changes    []rename.Change

	// Options
	automatic bool
	dryRun    bool
	titled    bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/series"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		automatic: true,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RenameDoneMsg is sent when the rename run completes.
	RenameDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRenaming {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				if cmd, err := m.startRename(); err != nil {
					m.state = StateError
					m.err = err
				} else {
					m.state = StateRenaming
					cmds = append(cmds, cmd, m.tickProgress(), m.spinner.Tick)
				}
			}

		case "a":
			if m.state == StateInput {
				m.automatic = !m.automatic
			}

		case "d":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
			}

		case "t":
			if m.state == StateInput {
				m.titled = !m.titled
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.err = nil
				m.manager = nil
				m.changes = nil
				m.doneFiles = 0
				m.totalFiles = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case RenameDoneMsg:
		m.syncProgress()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRenaming {
			m.syncProgress()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.doneFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// syncProgress copies the manager's counters and change list into the model.
func (m *Model) syncProgress() {
	if m.manager == nil {
		return
	}
	m.doneFiles, m.totalFiles = m.manager.GetProgress()
	m.changes = m.manager.Changes()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startRename builds the rename manager from the current options and
// returns the command that runs it.
func (m *Model) startRename() (tea.Cmd, error) {
	directory := strings.TrimSpace(m.textInput.Value())

	tmpl := m.settings.Template
	if m.titled {
		tmpl = tmpl + " {title}"
	}
	tokens, err := template.Tokenize(tmpl)
	if err != nil {
		return nil, err
	}

	cfg := &target.Config{
		Automatic:    m.automatic,
		DryRun:       m.dryRun,
		Verbose:      m.verbose,
		Directory:    directory,
		SeriesName:   target.InferSeriesName(directory),
		SeasonNumber: m.settings.DefaultSeason,
		EpisodeIndex: m.settings.StartingEpisode,
		PadWidth:     m.settings.PadWidth,
		Language:     m.settings.Language,
		Template:     tokens,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var svc tvdb.Service
	if m.titled || m.settings.SaveBanner {
		svc = tvdb.NewClient(m.settings.APIKey)
	}

	manager := rename.NewManager(m.settings, cfg, svc, nil)
	m.manager = manager

	ctx := m.ctx
	return func() tea.Msg {
		return RenameDoneMsg{Err: manager.Run(ctx)}
	}, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("tv-renamer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Rename TV episodes from a template"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRenaming:
		b.WriteString(m.viewRenaming())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Series directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Automatic season detection (a)\n", checkbox(m.automatic)))
	b.WriteString(fmt.Sprintf("  %s Dry run (d)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Episode titles from TVDB (t)\n", checkbox(m.titled)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Template: %s", m.settings.Template)))
	b.WriteString("\n")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewRenaming() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Renaming..."))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.doneFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.doneFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderChanges())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	verb := "Renamed"
	if m.dryRun {
		verb = "Would rename"
	}
	box := boxStyle.Render(fmt.Sprintf(
		"Done!\n\n%s %d of %d file(s)",
		verb,
		len(m.changes),
		m.totalFiles,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderChanges())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

// renderChanges shows the tail of the change list.
func (m Model) renderChanges() string {
	const maxShown = 10

	changes := m.changes
	if len(changes) > maxShown {
		changes = changes[len(changes)-maxShown:]
	}

	var b strings.Builder
	for _, c := range changes {
		b.WriteString(successStyle.Render(fmt.Sprintf("  %s -> %s",
			ioutils.ShortenPath(c.Source), ioutils.ShortenPath(c.Target))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • a: automatic • d: dry run • t: titles • v: verbose • esc: quit"
	case StateRenaming:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
