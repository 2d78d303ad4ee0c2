package pursuit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

func TestParseLayout(t *testing.T) {
	m, err := ParseLayout("box", []string{
		"#####",
		"#P.o#",
		"#G  #",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	if m.Cols() != 5 || m.Rows() != 4 {
		t.Errorf("size = %dx%d, want 5x4", m.Cols(), m.Rows())
	}
	if m.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", m.Remaining())
	}
	if got := m.SeekerSpawn(); got != (TilePos{Col: 1, Row: 1}) {
		t.Errorf("SeekerSpawn = %+v", got)
	}
	if got := m.PursuerSpawns(); len(got) != 1 || got[0] != (TilePos{Col: 1, Row: 2}) {
		t.Errorf("PursuerSpawns = %+v", got)
	}

	tiles := map[[2]int]pursuit.Tile{
		{0, 0}: pursuit.TileWall,
		{1, 1}: pursuit.TileBlank,
		{2, 1}: pursuit.TileDot,
		{3, 1}: pursuit.TilePowerPellet,
		{1, 2}: pursuit.TileBlank,
		{5, 1}: pursuit.TileWall,
	}
	for pos, want := range tiles {
		if got := m.TileAt(pos[0], pos[1]); got != want {
			t.Errorf("TileAt(%d, %d) = %v, want %v", pos[0], pos[1], got, want)
		}
	}
	if got := m.TileAt(-1, 0); got != pursuit.TileWall {
		t.Errorf("TileAt(-1, 0) = %v, want wall", got)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmptyLayout},
		{"empty row", []string{""}, ErrEmptyLayout},
		{"ragged", []string{"###", "#P", "###"}, ErrRaggedLayout},
		{"no seeker", []string{"###", "#.#", "###"}, ErrNoSeekerSpawn},
		{"two seekers", []string{"####", "#PP#", "####"}, ErrExtraSeekerSpawn},
		{"unknown symbol", []string{"###", "#P?", "###"}, ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.name, tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetTileTracksRemaining(t *testing.T) {
	m, err := ParseLayout("row", []string{"#P..o#"})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if m.Remaining() != 3 {
		t.Fatalf("Remaining = %d, want 3", m.Remaining())
	}

	m.SetTile(2, 0, pursuit.TileBlank)
	m.SetTile(2, 0, pursuit.TileBlank)
	if m.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", m.Remaining())
	}
	m.SetTile(1, 0, pursuit.TileDot)
	if m.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", m.Remaining())
	}
	m.SetTile(99, 0, pursuit.TileDot)
	if m.Remaining() != 3 {
		t.Errorf("out of range write changed Remaining to %d", m.Remaining())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := ParseLayout("row", []string{"#P.G#"})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	c := m.Clone()
	c.SetTile(2, 0, pursuit.TileBlank)

	if m.TileAt(2, 0) != pursuit.TileDot || m.Remaining() != 1 {
		t.Error("clone shares tiles with the original")
	}
	if c.Remaining() != 0 {
		t.Errorf("clone Remaining = %d, want 0", c.Remaining())
	}
}

func TestParseMazeYAML(t *testing.T) {
	data := []byte(`
name: tunnel
layout:
  - "#####"
  - " P.G "
  - "#####"
`)
	m, err := ParseMazeYAML(data)
	if err != nil {
		t.Fatalf("ParseMazeYAML: %v", err)
	}
	if m.Name() != "tunnel" || m.Cols() != 5 {
		t.Errorf("got %q %dx%d", m.Name(), m.Cols(), m.Rows())
	}

	m, err = ParseMazeYAML([]byte("layout: [\"#P.#\"]\n"))
	if err != nil {
		t.Fatalf("ParseMazeYAML: %v", err)
	}
	if m.Name() != "custom" {
		t.Errorf("Name = %q, want custom", m.Name())
	}

	if _, err := ParseMazeYAML([]byte("layout: {")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := ParseMazeYAML([]byte("name: nothing\n")); !errors.Is(err, ErrEmptyLayout) {
		t.Errorf("error = %v, want ErrEmptyLayout", err)
	}
}

func TestLoadMazeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte("name: file\nlayout:\n  - \"#P.o#\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMazeFile(path)
	if err != nil {
		t.Fatalf("LoadMazeFile: %v", err)
	}
	if m.Name() != "file" || m.Remaining() != 2 {
		t.Errorf("got %q with %d remaining", m.Name(), m.Remaining())
	}

	if _, err := LoadMazeFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not exist", err)
	}
}

func TestRegisteredMazes(t *testing.T) {
	want := []string{"crossroads", "classic", "arena"}
	ids := registry.IDs()
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("IDs[%d] = %q, want %q", i, ids[i], id)
		}
	}

	mazes, err := LoadCampaign()
	if err != nil {
		t.Fatalf("LoadCampaign: %v", err)
	}
	for _, m := range mazes {
		if m.Remaining() == 0 {
			t.Errorf("%s has nothing to eat", m.ID())
		}
		if len(m.PursuerSpawns()) == 0 {
			t.Errorf("%s has no pursuers", m.ID())
		}
		if m.TileAt(m.SeekerSpawn().Col, m.SeekerSpawn().Row) == pursuit.TileWall {
			t.Errorf("%s seeker spawns in a wall", m.ID())
		}
	}

	m, err := LoadRegistered("classic")
	if err != nil {
		t.Fatalf("LoadRegistered: %v", err)
	}
	if m.ID() != "classic" || m.Name() != "Classic" {
		t.Errorf("got %q / %q", m.ID(), m.Name())
	}
	if _, err := LoadRegistered("nope"); err == nil {
		t.Error("expected error for unknown maze")
	}
}
