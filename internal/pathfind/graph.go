// Package pathfind turns a tile grid into a weighted graph and finds cheap
// walks across it: single-source Dijkstra, path and direction
// reconstruction, greedy multi-target routing and reachability filtering.
//
// Nodes are labeled row-major, node = row*dimension + col. An edge leads to
// each walkable 4-neighbor and costs the neighbor's terrain cost plus the
// square of the elevation gain when climbing.
package pathfind

import (
	"github.com/samdwyer/robotics/internal/world"
)

// Edge is a directed, weighted link to a neighboring node.
type Edge struct {
	To   int
	Cost int
}

// Graph is the adjacency list of a square grid.
type Graph struct {
	dimension int
	edges     [][]Edge
}

// Target selects the tiles a route should visit.
type Target func(world.Tile) bool

// TileTypeIs matches tiles of terrain t.
func TileTypeIs(t world.TileType) Target {
	return func(tile world.Tile) bool { return tile.Type == t }
}

// ContentIs matches tiles holding content of kind k, whatever its amount.
func ContentIs(k world.ContentKind) Target {
	return func(tile world.Tile) bool { return tile.Content.Kind == k }
}

// FromTiles builds the graph of a full map and returns the walkable nodes
// matching target, in row-major order. A nil target selects nothing.
func FromTiles(tiles [][]world.Tile, target Target) (*Graph, []int) {
	known := make([][]*world.Tile, len(tiles))
	for i := range tiles {
		known[i] = make([]*world.Tile, len(tiles[i]))
		for j := range tiles[i] {
			known[i][j] = &tiles[i][j]
		}
	}
	g := build(known)

	var targets []int
	if target == nil {
		return g, targets
	}
	for i, row := range tiles {
		for j, tile := range row {
			if tile.Type.Walkable() && target(tile) {
				targets = append(targets, g.Node(world.NewCoordinate(i, j)))
			}
		}
	}
	return g, targets
}

// FromKnown builds the graph of a partially discovered map, as returned by
// interaction.RobotMap. Unknown tiles are treated as not walkable. Only the
// coordinates that are known and walkable become targets.
func FromKnown(known [][]*world.Tile, coords []world.Coordinate) (*Graph, []int) {
	g := build(known)

	var targets []int
	for _, c := range coords {
		if !g.contains(c) {
			continue
		}
		if tile := known[c.Row][c.Col]; tile != nil && tile.Type.Walkable() {
			targets = append(targets, g.Node(c))
		}
	}
	return g, targets
}

func build(known [][]*world.Tile) *Graph {
	dim := len(known)
	g := &Graph{dimension: dim, edges: make([][]Edge, dim*dim)}

	for i, row := range known {
		for j, tile := range row {
			if tile == nil || !tile.Type.Walkable() {
				continue
			}
			from := world.NewCoordinate(i, j)
			for _, d := range world.Directions {
				to := from.Step(d)
				if !g.contains(to) {
					continue
				}
				next := known[to.Row][to.Col]
				if next == nil || !next.Type.Walkable() {
					continue
				}
				g.edges[g.Node(from)] = append(g.edges[g.Node(from)], Edge{
					To:   g.Node(to),
					Cost: StepCost(*tile, *next),
				})
			}
		}
	}
	return g
}

// StepCost is the weight of the edge from one tile onto its neighbor.
func StepCost(from, to world.Tile) int {
	cost := to.Type.Cost()
	if gain := to.Elevation - from.Elevation; gain > 0 {
		cost += gain * gain
	}
	return cost
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Dimension returns the side length of the grid.
func (g *Graph) Dimension() int {
	return g.dimension
}

// Node returns the label of coordinate c.
func (g *Graph) Node(c world.Coordinate) int {
	return c.Row*g.dimension + c.Col
}

// Coordinate returns the grid position of node n.
func (g *Graph) Coordinate(n int) world.Coordinate {
	return world.NewCoordinate(n/g.dimension, n%g.dimension)
}

// Edges returns the outgoing edges of node n.
func (g *Graph) Edges(n int) []Edge {
	return g.edges[n]
}

func (g *Graph) contains(c world.Coordinate) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.dimension && c.Col < g.dimension
}
