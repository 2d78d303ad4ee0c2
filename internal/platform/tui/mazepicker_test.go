package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-pursuit/internal/games/pursuit" // registers the built-in mazes
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

func pick(t *testing.T, m MazePickerModel, msgs ...tea.Msg) MazePickerModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MazePickerModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMazePickerRows(t *testing.T) {
	m := NewMazePickerModel(80, 24)
	if len(m.ids) != len(registry.List())+1 {
		t.Fatalf("ids = %v", m.ids)
	}
	if m.ids[0] != CampaignID || m.ids[1] != "crossroads" {
		t.Errorf("ids = %v", m.ids)
	}
	if m.View() == "" {
		t.Error("picker should render while choosing")
	}
}

func TestMazePickerSelect(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m := pick(t, NewMazePickerModel(80, 24), enter)
	if m.Selected() != CampaignID {
		t.Errorf("Selected = %q, want campaign", m.Selected())
	}

	m = pick(t, NewMazePickerModel(80, 24), down, down, enter)
	if m.Selected() != "classic" {
		t.Errorf("Selected = %q, want classic", m.Selected())
	}

	m = pick(t, NewMazePickerModel(80, 24), runeKey("j"), runeKey("k"), enter)
	if m.Selected() != CampaignID {
		t.Errorf("Selected = %q after j k, want campaign", m.Selected())
	}
}

func TestMazePickerBackAndQuit(t *testing.T) {
	m := pick(t, NewMazePickerModel(80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.Selected() != "" {
		t.Error("esc should go back without a selection")
	}

	m = pick(t, NewMazePickerModel(80, 24), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText = %q", got)
	}
}
