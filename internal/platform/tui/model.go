package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/scenes"
	"github.com/vovakirdan/danmaku/internal/space"
)

// Model is the Bubble Tea model of the live scene viewer.
type Model struct {
	runner *scenes.Runner
	screen *core.Screen
	theme  Theme
	keys   *KeyMapper
	help   help.Model
	config core.RuntimeConfig

	inputFrame core.InputFrame
	paused     bool
	showGrid   bool
	quitting   bool

	last    engine.Frame
	lastErr error
	hits    int
}

// NewModel creates a viewer for runner drawn on a cols by rows terminal.
func NewModel(runner *scenes.Runner, cfg core.RuntimeConfig, theme Theme, cols, rows int) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		runner:     runner,
		screen:     core.NewScreen(cols, max(1, rows-1)),
		theme:      theme,
		keys:       NewKeyMapper(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		showGrid:   true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Last row is the status bar
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleTick applies the viewer actions collected since the last tick and
// advances the scene unless paused.
func (m *Model) handleTick() {
	in := m.inputFrame
	defer m.inputFrame.Clear()

	sys := m.runner.System()
	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if in.Has(core.ActionGrid) {
		m.showGrid = !m.showGrid
	}
	if in.Has(core.ActionMethod) {
		sys.SetMethod(nextMethod(sys.Method()))
	}
	if in.Has(core.ActionFiner) || in.Has(core.ActionCoarser) {
		d := 1
		if in.Has(core.ActionCoarser) {
			d = -1
		}
		x, y := sys.Grid().Chunks()
		if err := sys.SetChunks(max(1, x+d), max(1, y+d)); err != nil {
			m.lastErr = err
		}
	}
	if in.Has(core.ActionRestart) {
		m.runner.Restart()
		m.hits, m.lastErr = 0, nil
		m.last = engine.Frame{}
	}

	if m.paused && !in.Has(core.ActionStep) {
		return
	}
	m.last, m.lastErr = m.runner.Step(in)
	m.hits += len(m.last.PlayerHits)
}

func nextMethod(m collide.Method) collide.Method {
	switch m {
	case collide.MethodSAT:
		return collide.MethodGJK
	case collide.MethodGJK:
		return collide.MethodPretestOnly
	default:
		return collide.MethodSAT
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen, m.theme) + "\n" + m.statusBar()
}

func (m Model) viewport() space.Viewport {
	return space.Viewport{
		Area: m.config.PlayArea(),
		Cols: m.screen.Width(),
		Rows: m.screen.Height(),
	}
}

// draw renders the grid overlay, the entities, the bullets and the player.
// Bullets sharing a cell with the player are highlighted.
func (m Model) draw() {
	s := m.screen
	v := m.viewport()
	sys := m.runner.System()
	arena := m.runner.Arena()

	s.Clear()
	if m.showGrid {
		sys.Grid().Render(s, v)
	}
	for _, e := range arena.Entities() {
		DrawShape(s, v, e.Shape(), core.ColorEntity)
	}
	for _, b := range arena.Bullets() {
		c := core.ColorBullet
		if sys.IsInPlayerCells(b) {
			c = core.ColorHit
		}
		DrawShape(s, v, b.Shape(), c)
	}
	if p := arena.Player(); p != nil {
		c := core.ColorPlayer
		if core.IsInvincible(p) {
			c = core.ColorHit
		}
		DrawShape(s, v, p.Shape(), c)
	}
}

func (m Model) statusBar() string {
	t := m.theme
	sys := m.runner.System()
	x, y := sys.Grid().Chunks()
	sep := t.HUDSeparator.Render(" │ ")

	parts := []string{
		t.HUDTitle.Render(m.runner.Scene().Title()),
		t.HUDValue.Render(sys.Method().String()),
		t.HUDValue.Render(fmt.Sprintf("%d×%d", x, y)),
		t.HUDValue.Render(fmt.Sprintf("bullets %d", len(m.runner.Arena().Bullets()))),
		t.HUDValue.Render(fmt.Sprintf("near %d", sys.Grid().PlayerCount())),
		t.HUDValue.Render(fmt.Sprintf("hits %d", m.hits)),
		t.HUDValue.Render(fmt.Sprintf("tick %s", m.last.Duration.Round(time.Microsecond))),
	}
	if m.paused {
		parts = append(parts, t.HUDAlert.Render("PAUSED"))
	}
	if m.lastErr != nil {
		parts = append(parts, t.HUDAlert.Render(m.lastErr.Error()))
	}
	parts = append(parts, t.HUDControls.Render(m.help.ShortHelpView(m.keys.Keys.ShortHelp())))
	return strings.Join(parts, sep)
}

// Run starts the Bubble Tea program for the viewer.
func Run(runner *scenes.Runner, cfg core.RuntimeConfig, theme Theme, cols, rows int) error {
	model := NewModel(runner, cfg, theme, cols, rows)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
