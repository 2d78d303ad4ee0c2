// Package pursuit implements the movement, collision and behavior engine of a
// grid-based pursuit game. Agents move continuously in pixel space while walls,
// tunnels, resource pickup and turning are resolved on a discrete tile grid.
//
// The package is UI-agnostic and deterministic: all randomness comes from an
// injected *rand.Rand and the tile map is passed explicitly to every operation.
package pursuit

// Tile is the symbol stored in one cell of the tile map.
type Tile uint8

const (
	TileWall Tile = iota
	TileBlank
	TileDot
	TilePowerPellet
)

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileBlank:
		return "blank"
	case TileDot:
		return "dot"
	case TilePowerPellet:
		return "power-pellet"
	default:
		return "unknown"
	}
}

// Consumable reports whether a seeker standing on the tile eats it.
func (t Tile) Consumable() bool {
	return t == TileDot || t == TilePowerPellet
}

// TileMap is the tile grid shared by every agent in a world.
// Agents hold the map by reference and mutate it only to clear eaten resources.
type TileMap interface {
	// TileAt returns the tile at (col, row). Out-of-range lookups return TileWall.
	TileAt(col, row int) Tile
	// SetTile replaces the tile at (col, row). Out-of-range writes are ignored.
	SetTile(col, row int, t Tile)
	// Cols returns the map width in tiles.
	Cols() int
	// Rows returns the map height in tiles.
	Rows() int
}

// InBounds reports whether (col, row) addresses a tile of m.
func InBounds(m TileMap, col, row int) bool {
	return col >= 0 && col < m.Cols() && row >= 0 && row < m.Rows()
}

// SafeTileAt returns the tile at (col, row), or TileWall when the coordinate lies
// outside the map, regardless of how the TileMap implementation treats it.
func SafeTileAt(m TileMap, col, row int) Tile {
	if !InBounds(m, col, row) {
		return TileWall
	}
	return m.TileAt(col, row)
}
