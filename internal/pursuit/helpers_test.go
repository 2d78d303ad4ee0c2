package pursuit

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

const testTile = 20.0

// gridMap is a minimal TileMap used by the engine tests.
type gridMap struct {
	cols, rows int
	tiles      []Tile
}

// parseGrid builds a map from rows of '#', '.', 'o' and ' '.
func parseGrid(t *testing.T, rows ...string) *gridMap {
	t.Helper()
	m := &gridMap{cols: len(rows[0]), rows: len(rows)}
	m.tiles = make([]Tile, m.cols*m.rows)
	for y, row := range rows {
		if len(row) != m.cols {
			t.Fatalf("row %d has width %d, want %d", y, len(row), m.cols)
		}
		for x, ch := range row {
			var tile Tile
			switch ch {
			case '#':
				tile = TileWall
			case '.':
				tile = TileDot
			case 'o':
				tile = TilePowerPellet
			default:
				tile = TileBlank
			}
			m.tiles[y*m.cols+x] = tile
		}
	}
	return m
}

// openGrid builds a cols x rows map of blank tiles.
func openGrid(cols, rows int) *gridMap {
	m := &gridMap{cols: cols, rows: rows, tiles: make([]Tile, cols*rows)}
	for i := range m.tiles {
		m.tiles[i] = TileBlank
	}
	return m
}

func (m *gridMap) TileAt(col, row int) Tile {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return TileWall
	}
	return m.tiles[row*m.cols+col]
}

func (m *gridMap) SetTile(col, row int, t Tile) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return
	}
	m.tiles[row*m.cols+col] = t
}

func (m *gridMap) Cols() int { return m.cols }
func (m *gridMap) Rows() int { return m.rows }

// inject appends raw entries, bypassing the overwrite policy.
func (b *CommandBuffer) inject(ds ...Direction) {
	b.cmds = append(b.cmds, ds...)
}

func testGeometry(m TileMap) Geometry {
	return GeometryFor(m, testTile, DefaultCloseThreshold)
}

// spawnAt creates an agent of kind k centered on tile (col, row).
func spawnAt(m TileMap, k Kind, col, row int) *Agent {
	geom := testGeometry(m)
	x, y := geom.TileCenter(col, row)
	return NewAgent(DefaultAgentConfig(k, x, y), Options{
		Geometry: geom,
		Rand:     rand.New(rand.NewSource(7)),
	})
}

// spawnLogged is spawnAt with a logger writing into the returned buffer.
func spawnLogged(m TileMap, k Kind, col, row int) (*Agent, *bytes.Buffer) {
	var buf bytes.Buffer
	geom := testGeometry(m)
	x, y := geom.TileCenter(col, row)
	a := NewAgent(DefaultAgentConfig(k, x, y), Options{
		Geometry: geom,
		Rand:     rand.New(rand.NewSource(7)),
		Logger:   log.New(&buf),
	})
	return a, &buf
}
