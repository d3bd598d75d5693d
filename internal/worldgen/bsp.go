package worldgen

import "github.com/samdwyer/robotics/internal/world"

// BSP parameters
const (
	minRoomSize = 4
	maxRoomSize = 10
	minLeafSize = 6
)

// bspNode is a node of the binary space partition.
type bspNode struct {
	row, col      int
	height, width int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively halves a node until its leaves are small.
func (g *Generator) splitNode(node *bspNode) {
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	var splitRows bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		splitRows = false
	case node.height >= minLeafSize*2:
		splitRows = true
	case node.width >= minLeafSize*2:
		splitRows = false
	default:
		return
	}

	extent := node.width
	if splitRows {
		extent = node.height
	}
	lo, hi := minLeafSize, extent-minLeafSize
	if hi <= lo {
		return
	}
	at := lo + g.rng.Intn(hi-lo+1)

	if splitRows {
		node.left = &bspNode{row: node.row, col: node.col, height: at, width: node.width}
		node.right = &bspNode{row: node.row + at, col: node.col, height: node.height - at, width: node.width}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, height: node.height, width: at}
		node.right = &bspNode{row: node.row, col: node.col + at, height: node.height, width: node.width - at}
	}
	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms places one room in every leaf.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	width := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	height := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))
	width = min(width, node.width-2)
	height = min(height, node.height-2)
	if width < minRoomSize || height < minRoomSize {
		return
	}

	room := Room{
		Row:     node.row + 1 + g.rng.Intn(node.height-height-1),
		Col:     node.col + 1 + g.rng.Intn(node.width-width-1),
		Height:  height,
		Width:   width,
		Terrain: biomes[g.rng.Intn(len(biomes))],
	}
	node.room = &room
	g.rooms = append(g.rooms, room)
	g.carveRoom(room)
}

// connectRooms links sibling subtrees with a street.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	g.connectRooms(node.left)
	g.connectRooms(node.right)

	a, b := anyRoom(node.left), anyRoom(node.right)
	if a != nil && b != nil {
		g.carveStreet(a.Center(), b.Center())
	}
}

func anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := anyRoom(node.left); room != nil {
		return room
	}
	return anyRoom(node.right)
}

func (g *Generator) carveRoom(room Room) {
	elevation := 0
	switch room.Terrain {
	case world.Hill:
		elevation = 1 + g.rng.Intn(2)
	case world.Mountain:
		elevation = 3 + g.rng.Intn(3)
	}
	for r := room.Row; r < room.Row+room.Height; r++ {
		for c := room.Col; c < room.Col+room.Width; c++ {
			if g.interior(world.NewCoordinate(r, c)) {
				g.tiles[r][c] = world.Tile{Type: room.Terrain, Elevation: elevation}
			}
		}
	}
}

// carveStreet lays an L-shaped street between two points, turning at a
// random corner. Streets keep the elevation of the tiles they cross.
func (g *Generator) carveStreet(from, to world.Coordinate) {
	if g.rng.Intn(2) == 0 {
		g.carveRow(from.Col, to.Col, from.Row)
		g.carveCol(from.Row, to.Row, to.Col)
	} else {
		g.carveCol(from.Row, to.Row, from.Col)
		g.carveRow(from.Col, to.Col, to.Row)
	}
}

func (g *Generator) carveRow(c1, c2, row int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		g.pave(world.NewCoordinate(row, c))
	}
}

func (g *Generator) carveCol(r1, r2, col int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		g.pave(world.NewCoordinate(r, col))
	}
}

func (g *Generator) pave(c world.Coordinate) {
	if g.interior(c) {
		g.tiles[c.Row][c.Col].Type = world.Street
	}
}

func (g *Generator) interior(c world.Coordinate) bool {
	return c.Row > 0 && c.Col > 0 && c.Row < g.Size-1 && c.Col < g.Size-1
}
