package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

func newSimGame(t *testing.T, maze string) *pursuit.Game {
	t.Helper()
	mazes, err := resolveMazes(maze)
	if err != nil {
		t.Fatalf("resolveMazes(%q): %v", maze, err)
	}
	game, err := pursuit.New(config.DefaultPursuitConfig(), pursuit.Options{Mazes: mazes})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return game
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := simulate(newSimGame(t, "crossroads"), 99, 800, 10)
	b := simulate(newSimGame(t, "crossroads"), 99, 800, 10)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
	if a.Tick == 0 || a.Tick > 800 {
		t.Errorf("Tick = %d", a.Tick)
	}
}

func TestResolveMazes(t *testing.T) {
	all, err := resolveMazes("")
	if err != nil {
		t.Fatalf("resolveMazes: %v", err)
	}
	if len(all) != len(registry.IDs()) {
		t.Errorf("campaign has %d mazes, want %d", len(all), len(registry.IDs()))
	}

	one, err := resolveMazes("arena")
	if err != nil || len(one) != 1 || one[0].ID() != "arena" {
		t.Errorf("resolveMazes(arena) = %v, %v", one, err)
	}

	if _, err := resolveMazes("nowhere"); err == nil {
		t.Error("expected error for unknown maze")
	}
}

func TestWriteSnapshot(t *testing.T) {
	snap := simulate(newSimGame(t, "crossroads"), 5, 120, 20)
	logger := log.New(io.Discard)

	var text bytes.Buffer
	if err := writeSnapshot(&text, snap, "text", logger); err != nil {
		t.Fatalf("text: %v", err)
	}
	if !strings.HasPrefix(text.String(), "maze crossroads") {
		t.Errorf("text output = %q", text.String())
	}
	if got := strings.Count(text.String(), "pursuer "); got != 3 {
		t.Errorf("pursuer lines = %d, want 3", got)
	}

	var out bytes.Buffer
	if err := writeSnapshot(&out, snap, "yaml", logger); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if decoded["maze"] != "crossroads" {
		t.Errorf("maze = %v", decoded["maze"])
	}
}
