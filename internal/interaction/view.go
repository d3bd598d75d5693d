package interaction

import (
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

const (
	// ViewCostPerTile is charged per tile for directional views longer than one tile.
	ViewCostPerTile = 3
	// DiscoverCostPerTile is charged per requested coordinate.
	DiscoverCostPerTile = 3
)

// RobotView returns the 3x3 neighborhood centered on the robot. Cells off the
// map are nil. Every returned tile is added to the robot's known map.
func RobotView(r robot.Runnable, w *world.World) TileMatrix {
	center := r.GetCoordinate()
	view := make(TileMatrix, 3)
	for i := range view {
		view[i] = make([]*world.Tile, 3)
		for j := range view[i] {
			c := world.NewCoordinate(center.Row+i-1, center.Col+j-1)
			tile := w.TileAt(c)
			if tile == nil {
				continue
			}
			snapshot := *tile
			view[i][j] = &snapshot
			w.Discover(c)
		}
	}
	return view
}

// WhereAmI returns the local view together with the robot's position.
func WhereAmI(r robot.Runnable, w *world.World) (TileMatrix, world.Coordinate) {
	return RobotView(r, w), r.GetCoordinate()
}

// RobotMap returns every tile the robot has seen so far, nil elsewhere.
func RobotMap(w *world.World) TileMatrix {
	return w.KnownMap()
}

// LookAtSky returns a snapshot of the environmental conditions.
func LookAtSky(w *world.World) *world.EnvironmentalConditions {
	return w.Environment().Clone()
}

// Debug returns the whole map, its dimension and the robot's position.
func Debug(r robot.Runnable, w *world.World) ([][]world.Tile, int, world.Coordinate) {
	return w.Snapshot(), w.Dimension(), r.GetCoordinate()
}

// GetScore returns the score accumulated so far.
func GetScore(w *world.World) float32 {
	return w.Score().Score()
}

// ViewCost returns the energy price of a directional view of n tiles.
func ViewCost(n int) int {
	if n <= 1 {
		return 0
	}
	return n * ViewCostPerTile
}

// CheckPriceView returns the cost of viewing n tiles, or an error if the
// robot cannot afford it.
func CheckPriceView(r robot.Runnable, n int) (int, error) {
	cost := ViewCost(n)
	if err := canPay(r, cost); err != nil {
		return 0, err
	}
	return cost, nil
}

// OneDirectionView looks up to distance tiles away in direction d through a
// strip three tiles wide. The strip is clipped at the map edges instead of
// padded. Rows of the result run outward from the robot for Up/Down; for
// Left/Right each row is one of the strip's lines, read outward.
func OneDirectionView(r robot.Runnable, w *world.World, d world.Direction, distance int) ([][]world.Tile, error) {
	pos := r.GetCoordinate()
	n := min(max(distance, 0), tilesToEdge(pos, w.Dimension(), d))
	if n == 0 {
		return [][]world.Tile{}, nil
	}

	cost, err := CheckPriceView(r, n)
	if err != nil {
		return nil, err
	}
	if err := pay(r, cost); err != nil {
		return nil, err
	}

	// Lateral offsets of the strip, clipped at the border.
	lateral := func(at, dim int) []int {
		var offsets []int
		for off := -1; off <= 1; off++ {
			if at+off >= 0 && at+off < dim {
				offsets = append(offsets, off)
			}
		}
		return offsets
	}

	dr, dc := d.Delta()
	var out [][]world.Tile
	switch d {
	case world.Up, world.Down:
		for step := 1; step <= n; step++ {
			var row []world.Tile
			for _, off := range lateral(pos.Col, w.Dimension()) {
				c := world.NewCoordinate(pos.Row+dr*step, pos.Col+off)
				row = append(row, *w.TileAt(c))
				w.Discover(c)
			}
			out = append(out, row)
		}
	default:
		for _, off := range lateral(pos.Row, w.Dimension()) {
			var row []world.Tile
			for step := 1; step <= n; step++ {
				c := world.NewCoordinate(pos.Row+off, pos.Col+dc*step)
				row = append(row, *w.TileAt(c))
				w.Discover(c)
			}
			out = append(out, row)
		}
	}
	return out, nil
}

func tilesToEdge(pos world.Coordinate, dim int, d world.Direction) int {
	switch d {
	case world.Up:
		return pos.Row
	case world.Down:
		return dim - pos.Row - 1
	case world.Left:
		return pos.Col
	default:
		return dim - pos.Col - 1
	}
}

// DiscoverTiles reveals arbitrary coordinates for DiscoverCostPerTile each,
// spending one unit of discovery budget per coordinate. Off-map coordinates
// map to nil but are still paid for.
func DiscoverTiles(r robot.Runnable, w *world.World, coords []world.Coordinate) (map[world.Coordinate]*world.Tile, error) {
	if len(coords) > w.Discoverable() {
		return nil, world.ErrNoMoreDiscovery
	}
	cost := len(coords) * DiscoverCostPerTile
	if err := canPay(r, cost); err != nil {
		return nil, err
	}

	if err := w.SpendDiscovery(len(coords)); err != nil {
		return nil, err
	}
	if err := pay(r, cost); err != nil {
		return nil, err
	}

	out := make(map[world.Coordinate]*world.Tile, len(coords))
	for _, c := range coords {
		tile := w.TileAt(c)
		if tile == nil {
			out[c] = nil
			continue
		}
		snapshot := *tile
		out[c] = &snapshot
		w.Discover(c)
	}
	return out, nil
}
