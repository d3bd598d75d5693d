package world

import "fmt"

// Coordinate is a (row, col) position on the map.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate creates a coordinate.
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Step returns the coordinate one tile away in the given direction. The
// result may lie outside the map.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the display name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
