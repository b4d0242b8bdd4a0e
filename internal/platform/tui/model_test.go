package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/registry"
	"github.com/vovakirdan/danmaku/internal/scenes"
	"github.com/vovakirdan/danmaku/internal/space"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	scene, err := registry.Create("ring")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	cfg := core.DefaultConfig()
	runner, err := scenes.NewRunner(scene, cfg, engine.Options{
		ChunksX: 8,
		ChunksY: 6,
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewRunner() error: %v", err)
	}
	return NewModel(runner, cfg, DefaultTheme(), 80, 25)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelTicksAdvanceScene(t *testing.T) {
	m := newTestModel(t)
	m = send(m, TickMsg{}, TickMsg{}, TickMsg{})

	if got := m.runner.Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, expected 3", got)
	}
	if len(m.runner.Arena().Bullets()) == 0 {
		t.Error("ring should have fired on the first tick")
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newTestModel(t)
	m = send(m, runeKey('p'), TickMsg{}, TickMsg{})
	if !m.paused {
		t.Fatal("model should be paused")
	}
	if got := m.runner.Ticks(); got != 0 {
		t.Errorf("paused model advanced to tick %d", got)
	}

	m = send(m, runeKey('n'), TickMsg{})
	if got := m.runner.Ticks(); got != 1 {
		t.Errorf("step should advance one tick, got %d", got)
	}
}

func TestModelControls(t *testing.T) {
	m := newTestModel(t)

	m = send(m, runeKey('m'), TickMsg{})
	if got := m.runner.System().Method(); got != collide.MethodGJK {
		t.Errorf("method = %v, expected gjk", got)
	}

	m = send(m, runeKey('+'), TickMsg{})
	if x, y := m.runner.System().Grid().Chunks(); x != 9 || y != 7 {
		t.Errorf("chunks = %d×%d, expected 9×7", x, y)
	}

	m = send(m, runeKey('g'), TickMsg{})
	if m.showGrid {
		t.Error("grid overlay should be hidden")
	}

	m = send(m, runeKey('r'), TickMsg{})
	if got := m.runner.Ticks(); got != 1 {
		t.Errorf("restart then step should leave tick 1, got %d", got)
	}

	if _, cmd := m.Update(runeKey('q')); cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestNextMethodCycles(t *testing.T) {
	got := []collide.Method{collide.MethodSAT}
	for i := 0; i < 3; i++ {
		got = append(got, nextMethod(got[len(got)-1]))
	}
	if got[1] != collide.MethodGJK || got[2] != collide.MethodPretestOnly || got[3] != collide.MethodSAT {
		t.Errorf("unexpected cycle %v", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20}, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Ring bursts") {
		t.Error("status bar should show the scene title")
	}
	if got := strings.Count(view, "\n"); got != 19 {
		t.Errorf("view has %d line breaks, expected 19", got)
	}
}

func TestDrawShape(t *testing.T) {
	s := core.NewScreen(10, 10)
	v := space.Viewport{Area: geom.NewRect(0, 0, 100, 100), Cols: 10, Rows: 10}

	DrawShape(s, v, geom.NewRect(20, 20, 30, 10), core.ColorBullet)
	for x := 2; x < 5; x++ {
		if s.Get(x, 2) != '▮' {
			t.Errorf("cell (%d,2) = %q, expected rect glyph", x, s.Get(x, 2))
		}
		if s.ColorAt(x, 2) != core.ColorBullet {
			t.Errorf("cell (%d,2) color = %v", x, s.ColorAt(x, 2))
		}
	}
	if s.Get(6, 2) != ' ' {
		t.Errorf("cell (6,2) should be empty, got %q", s.Get(6, 2))
	}

	// A bullet smaller than a cell still shows up.
	DrawShape(s, v, geom.NewCircle(75, 75, 1), core.ColorBullet)
	if s.Get(7, 7) != 'o' {
		t.Errorf("small circle not drawn, got %q", s.Get(7, 7))
	}
}
