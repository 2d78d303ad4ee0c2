package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

// resizingGame also implements core.Resizer.
type resizingGame struct {
	fakeGame
	sizes [][2]int
}

func (g *resizingGame) Resize(w, h int) {
	g.sizes = append(g.sizes, [2]int{w, h})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelInitResetsWithFooterRemoved(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 9}, nil)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if len(g.resets) != 1 {
		t.Fatalf("resets = %d, want 1", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 80 || got.ScreenH != 23 || got.Seed != 9 {
		t.Errorf("Reset config = %+v", got)
	}
}

func TestModelFeedsKeysToNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	_, _ = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) {
		t.Error("first tick should see the left key")
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelResize(t *testing.T) {
	g := &resizingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if len(g.sizes) != 1 || g.sizes[0] != [2]int{100, 39} {
		t.Errorf("Resize calls = %v", g.sizes)
	}
	if len(g.resets) != 0 {
		t.Error("a resizable game should not be reset")
	}

	plain := &fakeGame{}
	m = NewModel(plain, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if len(plain.resets) != 1 || plain.resets[0].ScreenH != 39 {
		t.Errorf("resets = %+v", plain.resets)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)

	if view := m.View(); !strings.Contains(view, "fake game") || !strings.Contains(view, "move") {
		t.Errorf("View = %q", view)
	}

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelTracksState(t *testing.T) {
	g := &fakeGame{state: core.GameState{Score: 12, GameOver: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)

	m, _ = update(t, m, TickMsg{})
	if got := m.State(); got.Score != 12 || !got.GameOver {
		t.Errorf("State = %+v", got)
	}
}
