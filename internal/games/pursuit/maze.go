// Package pursuit wires the pursuit engine into a playable game: mazes, the
// per-tick driver that sequences agents, world contact rules and rendering.
package pursuit

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pursuit/internal/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

// Layout symbols.
const (
	SymbolWall         = '#'
	SymbolDot          = '.'
	SymbolPowerPellet  = 'o'
	SymbolBlank        = ' '
	SymbolSeekerSpawn  = 'P'
	SymbolPursuerSpawn = 'G'
)

// Layout parsing errors.
var (
	ErrEmptyLayout      = errors.New("maze: empty layout")
	ErrRaggedLayout     = errors.New("maze: rows differ in width")
	ErrNoSeekerSpawn    = errors.New("maze: no seeker spawn")
	ErrExtraSeekerSpawn = errors.New("maze: more than one seeker spawn")
	ErrUnknownSymbol    = errors.New("maze: unknown symbol")
)

// TilePos addresses one tile of a maze.
type TilePos struct {
	Col, Row int
}

// Maze is a rectangular tile map with spawn points. It implements
// pursuit.TileMap and keeps count of the consumables left on it.
type Maze struct {
	id            string
	name          string
	cols, rows    int
	tiles         []pursuit.Tile
	remaining     int
	seekerSpawn   TilePos
	pursuerSpawns []TilePos
}

// ParseLayout builds a maze from text rows. Every row must have the same
// width and exactly one seeker spawn must be present.
func ParseLayout(name string, rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyLayout, name)
	}

	m := &Maze{
		id:   name,
		name: name,
		cols: len([]rune(rows[0])),
		rows: len(rows),
	}
	m.tiles = make([]pursuit.Tile, m.cols*m.rows)

	seekers := 0
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != m.cols {
			return nil, fmt.Errorf("%w: %q row %d has width %d, want %d", ErrRaggedLayout, name, y, len(runes), m.cols)
		}
		for x, ch := range runes {
			tile := pursuit.TileBlank
			switch ch {
			case SymbolWall:
				tile = pursuit.TileWall
			case SymbolDot:
				tile = pursuit.TileDot
			case SymbolPowerPellet:
				tile = pursuit.TilePowerPellet
			case SymbolBlank:
			case SymbolSeekerSpawn:
				seekers++
				m.seekerSpawn = TilePos{Col: x, Row: y}
			case SymbolPursuerSpawn:
				m.pursuerSpawns = append(m.pursuerSpawns, TilePos{Col: x, Row: y})
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d: %q", ErrUnknownSymbol, name, y, x, ch)
			}
			m.tiles[y*m.cols+x] = tile
			if tile.Consumable() {
				m.remaining++
			}
		}
	}

	switch {
	case seekers == 0:
		return nil, fmt.Errorf("%w: %q", ErrNoSeekerSpawn, name)
	case seekers > 1:
		return nil, fmt.Errorf("%w: %q has %d", ErrExtraSeekerSpawn, name, seekers)
	}
	return m, nil
}

// mazeFile is the on-disk YAML form of a maze.
type mazeFile struct {
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout"`
}

// ParseMazeYAML parses a YAML maze document.
func ParseMazeYAML(data []byte) (*Maze, error) {
	var f mazeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("maze: yaml unmarshal: %w", err)
	}
	if f.Name == "" {
		f.Name = "custom"
	}
	return ParseLayout(f.Name, f.Layout)
}

// LoadMazeFile reads and parses a YAML maze file.
func LoadMazeFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}
	m, err := ParseMazeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("maze: load %s: %w", path, err)
	}
	return m, nil
}

// LoadRegistered parses the built-in maze registered under id.
func LoadRegistered(id string) (*Maze, error) {
	def, err := registry.Get(id)
	if err != nil {
		return nil, err
	}
	m, err := ParseLayout(def.ID, def.Layout)
	if err != nil {
		return nil, err
	}
	if def.Title != "" {
		m.name = def.Title
	}
	return m, nil
}

// LoadCampaign parses every registered maze in campaign order.
func LoadCampaign() ([]*Maze, error) {
	ids := registry.IDs()
	mazes := make([]*Maze, 0, len(ids))
	for _, id := range ids {
		m, err := LoadRegistered(id)
		if err != nil {
			return nil, err
		}
		mazes = append(mazes, m)
	}
	return mazes, nil
}

// TileAt returns the tile at (col, row). Out-of-range lookups return TileWall.
func (m *Maze) TileAt(col, row int) pursuit.Tile {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return pursuit.TileWall
	}
	return m.tiles[row*m.cols+col]
}

// SetTile replaces the tile at (col, row) and keeps the consumable count
// current. Out-of-range writes are ignored.
func (m *Maze) SetTile(col, row int, t pursuit.Tile) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return
	}
	i := row*m.cols + col
	if m.tiles[i].Consumable() {
		m.remaining--
	}
	if t.Consumable() {
		m.remaining++
	}
	m.tiles[i] = t
}

// Cols returns the maze width in tiles.
func (m *Maze) Cols() int { return m.cols }

// Rows returns the maze height in tiles.
func (m *Maze) Rows() int { return m.rows }

// ID returns the identifier the maze was parsed or registered under.
func (m *Maze) ID() string { return m.id }

// Name returns the display name.
func (m *Maze) Name() string { return m.name }

// Remaining returns the number of dots and power pellets left.
func (m *Maze) Remaining() int { return m.remaining }

// SeekerSpawn returns the seeker's start tile.
func (m *Maze) SeekerSpawn() TilePos { return m.seekerSpawn }

// PursuerSpawns returns the pursuer start tiles in layout order.
func (m *Maze) PursuerSpawns() []TilePos {
	return slices.Clone(m.pursuerSpawns)
}

// Clone returns an independent copy, so a level can be replayed from its
// original state.
func (m *Maze) Clone() *Maze {
	c := *m
	c.tiles = slices.Clone(m.tiles)
	c.pursuerSpawns = slices.Clone(m.pursuerSpawns)
	return &c
}
