package pursuit

import "math"

// DefaultCloseThreshold is the absolute-difference threshold used by CloseTo.
const DefaultCloseThreshold = 0.5

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Geometry describes how pixel space maps onto the tile grid.
type Geometry struct {
	TileSize        float64 // Edge length of one tile in pixels
	Cols            int     // Map width in tiles
	Rows            int     // Map height in tiles
	CenterTolerance float64 // Max distance per axis from a tile center that counts as centered
}

// GeometryFor returns a geometry matching the dimensions of m.
func GeometryFor(m TileMap, tileSize, tolerance float64) Geometry {
	return Geometry{
		TileSize:        tileSize,
		Cols:            m.Cols(),
		Rows:            m.Rows(),
		CenterTolerance: tolerance,
	}
}

// Extent returns the pixel width and height of the whole map.
func (g Geometry) Extent() (w, h float64) {
	return float64(g.Cols) * g.TileSize, float64(g.Rows) * g.TileSize
}

// TileOf returns the tile containing the pixel position (x, y).
func (g Geometry) TileOf(x, y float64) (col, row int) {
	return int(math.Floor(x / g.TileSize)), int(math.Floor(y / g.TileSize))
}

// TileCenter returns the pixel position of the center of tile (col, row).
func (g Geometry) TileCenter(col, row int) (x, y float64) {
	half := g.TileSize / 2
	return float64(col)*g.TileSize + half, float64(row)*g.TileSize + half
}

// IsCentered reports whether (x, y) sits on the center of tile (col, row).
func (g Geometry) IsCentered(x, y float64, col, row int) bool {
	cx, cy := g.TileCenter(col, row)
	return CloseTo(x, cx, g.CenterTolerance) && CloseTo(y, cy, g.CenterTolerance)
}

// WithinTile reports whether two points fall inside the same tile.
func (g Geometry) WithinTile(p1, p2 Point) bool {
	c1, r1 := g.TileOf(p1.X, p1.Y)
	c2, r2 := g.TileOf(p2.X, p2.Y)
	return c1 == c2 && r1 == r2
}

// Wrap folds (col, row) back into the grid toroidally.
func (g Geometry) Wrap(col, row int) (int, int) {
	if g.Cols > 0 {
		col = ((col % g.Cols) + g.Cols) % g.Cols
	}
	if g.Rows > 0 {
		row = ((row % g.Rows) + g.Rows) % g.Rows
	}
	return col, row
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// CloseTo reports whether a and b differ by at most threshold.
func CloseTo(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}

// CloseToPts reports whether both coordinates of p1 and p2 are within threshold.
func CloseToPts(p1, p2 Point, threshold float64) bool {
	return CloseTo(p1.X, p2.X, threshold) && CloseTo(p1.Y, p2.Y, threshold)
}

// ToLeftOf returns the tile left of (col, row); TileWall when off the map.
func ToLeftOf(m TileMap, col, row int) Tile {
	return SafeTileAt(m, col-1, row)
}

// ToRightOf returns the tile right of (col, row); TileWall when off the map.
func ToRightOf(m TileMap, col, row int) Tile {
	return SafeTileAt(m, col+1, row)
}

// Above returns the tile above (col, row); TileWall when off the map.
func Above(m TileMap, col, row int) Tile {
	return SafeTileAt(m, col, row-1)
}

// Below returns the tile below (col, row); TileWall when off the map.
func Below(m TileMap, col, row int) Tile {
	return SafeTileAt(m, col, row+1)
}

// Neighbor returns the tile adjacent to (col, row) in direction d.
func Neighbor(m TileMap, col, row int, d Direction) Tile {
	switch d {
	case DirLeft:
		return ToLeftOf(m, col, row)
	case DirRight:
		return ToRightOf(m, col, row)
	case DirUp:
		return Above(m, col, row)
	case DirDown:
		return Below(m, col, row)
	default:
		return TileWall
	}
}
