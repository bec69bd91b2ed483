// Package tui provides the terminal user interface for horario.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/grid"
	"github.com/javiermolinar/horario/internal/schedule"
	"github.com/javiermolinar/horario/internal/tui/commands"
	"github.com/javiermolinar/horario/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo       schedule.Repository
	collection *schedule.Collection
	config     *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	keys keyMap
	help help.Model

	// State
	sections []*schedule.Section
	result   *grid.Result
	selected int
	loading  bool

	statusMsg  string
	statusTime time.Time
	err        error

	width  int
	height int

	copyFn func(string) error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) { m.copyFn = fn }
}

// New creates a new TUI model for one collection.
func New(repo schedule.Repository, collection *schedule.Collection, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}

	m := &Model{
		repo:       repo,
		collection: collection,
		config:     cfg,
		theme:      t,
		styles:     NewStyles(t),
		keys:       defaultKeyMap(),
		help:       help.New(),
		loading:    true,
		copyFn:     clipboard.WriteAll,
	}
	m.rebuild()

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadCollection(m.repo, m.collectionID())
}

func (m Model) collectionID() string {
	if m.collection == nil {
		return ""
	}
	return m.collection.ID
}

func (m Model) collectionName() string {
	if m.collection == nil {
		return ""
	}
	return m.collection.Name
}

func (m Model) selectedSection() *schedule.Section {
	if m.selected < 0 || m.selected >= len(m.sections) {
		return nil
	}
	return m.sections[m.selected]
}

// rebuild recomputes the grid from the current sections.
func (m *Model) rebuild() {
	m.result = grid.Build(m.sections, grid.Options{
		FirstHour: m.config.Grid.FirstHour,
		LastHour:  m.config.Grid.LastHour,
		Palette:   m.theme.GridPalette(),
	})
	if m.selected >= len(m.sections) {
		m.selected = len(m.sections) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	logRebuild(*m)
}

// Run starts the TUI.
func Run(repo schedule.Repository, collection *schedule.Collection, cfg *config.Config) error {
	model := New(repo, collection, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
