package pursuit

import "math"

// Direction is one of the four axis-aligned movement directions.
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{DirRight, DirDown, DirLeft, DirUp}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Angle returns the canonical facing angle in radians.
// Screen coordinates: y grows downward, so DOWN is a quarter turn clockwise.
func (d Direction) Angle() float64 {
	switch d {
	case DirDown:
		return 0.5 * math.Pi
	case DirLeft:
		return math.Pi
	case DirUp:
		return 1.5 * math.Pi
	default:
		return 0
	}
}

// Delta returns the unit tile offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// DirectionFromAngle maps a canonical facing angle back to a direction.
// Angles that are not canonical snap to the nearest quarter turn.
func DirectionFromAngle(angle float64) Direction {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	quarter := int(math.Round(a/(0.5*math.Pi))) % 4
	return Directions()[quarter]
}

// MarshalYAML encodes the direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}
