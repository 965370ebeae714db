package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonkeep/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 64
	DefaultHeight = 22

	// BSP parameters
	minRoomSize = 4  // Minimum cavern dimension
	maxRoomSize = 9  // Maximum cavern dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
	goldChance  = 25 // One in goldChance earth tiles becomes a gold seam
)

// NoOwner marks a tile nobody has claimed.
const NoOwner = 0

// Cell is the full state of one map tile.
type Cell struct {
	Tile     Tile
	Owner    int  // Keeper owning the tile, NoOwner if unclaimed
	RoomID   int  // Room type built on the tile, 0 if none
	Selected bool // Marked for digging
}

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Cells  [][]Cell
	Rooms  []Room
	rng    *rand.Rand
}

// NewDungeon creates a new map filled with earth and ringed by impenetrable rock.
// A nil rng seeds one from the clock.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			tile := TileEarth
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				tile = TileImpenetrable
			}
			cells[y][x] = Cell{Tile: tile}
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Cells:  cells,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}
}

// Generate carves caverns and tunnels using a BSP split, then sprinkles gold seams.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{
		x:      1,
		y:      1,
		width:  d.Width - 2,
		height: d.Height - 2,
	}

	d.splitNode(root)
	d.createRooms(root)
	d.connectRooms(root)

	gold := 0
	for y := 1; y < d.Height-1; y++ {
		for x := 1; x < d.Width-1; x++ {
			if d.Cells[y][x].Tile == TileEarth && d.rng.Intn(goldChance) == 0 {
				d.Cells[y][x].Tile = TileGold
				gold++
			}
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.gold_seams", gold),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// InBounds reports whether the position lies on the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Cells[y][x].Tile.IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileImpenetrable
	}
	return d.Cells[y][x].Tile
}

// CellAt returns a pointer to the cell at the position, or nil off the map.
func (d *Dungeon) CellAt(x, y int) *Cell {
	if !d.InBounds(x, y) {
		return nil
	}
	return &d.Cells[y][x]
}

// ClaimRoom hands every floor tile of a cavern to the owner.
func (d *Dungeon) ClaimRoom(roomIndex, owner int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return
	}
	room := d.Rooms[roomIndex]
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if c := d.CellAt(x, y); c != nil && c.Tile == TileDirt {
				c.Tile = TileClaimed
				c.Owner = owner
			}
		}
	}
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point within the specified room.
func (d *Dungeon) RandomPointInRoom(roomIndex int) (int, int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1
	}
	room := d.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		x := room.X + d.rng.Intn(room.Width)
		y := room.Y + d.rng.Intn(room.Height)
		if d.IsPassable(x, y) {
			return x, y
		}
	}

	return room.Center()
}

// Neighbors returns the passable tiles orthogonally adjacent to p.
func (d *Dungeon) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, step := range [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := Point{X: p.X + step.X, Y: p.Y + step.Y}
		if d.IsPassable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// Cost returns the price of stepping between two adjacent tiles.
// Every step costs one; the Manhattan heuristic depends on that.
func (d *Dungeon) Cost(from, to Point) float32 {
	return 1
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node along its longer axis.
func (d *Dungeon) splitNode(node *bspNode) {
	var horizontal bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		horizontal = false
	case node.height >= minLeafSize*2:
		horizontal = true
	case node.width >= minLeafSize*2:
		horizontal = false
	default:
		return
	}

	span := node.width
	if horizontal {
		span = node.height
	}
	lo, hi := minLeafSize, span-minLeafSize
	if hi <= lo {
		return
	}
	cut := lo + d.rng.Intn(hi-lo+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: cut}
		node.right = &bspNode{x: node.x, y: node.y + cut, width: node.width, height: node.height - cut}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: cut, height: node.height}
		node.right = &bspNode{x: node.x + cut, y: node.y, width: node.width - cut, height: node.height}
	}

	d.splitNode(node.left)
	d.splitNode(node.right)
}

// createRooms carves a cavern in every leaf of the BSP tree.
func (d *Dungeon) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		d.createRooms(node.left)
		d.createRooms(node.right)
		return
	}

	roomWidth := minRoomSize + d.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	roomHeight := minRoomSize + d.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))
	roomWidth = min(roomWidth, node.width-2)
	roomHeight = min(roomHeight, node.height-2)
	if roomWidth < minRoomSize || roomHeight < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + d.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + d.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	d.Rooms = append(d.Rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.carve(x, y)
		}
	}
}

// connectRooms links sibling subtrees with L-shaped tunnels.
func (d *Dungeon) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	d.connectRooms(node.left)
	d.connectRooms(node.right)

	left, right := d.getRoom(node.left), d.getRoom(node.right)
	if left == nil || right == nil {
		return
	}

	x1, y1 := left.Center()
	x2, y2 := right.Center()
	if d.rng.Intn(2) == 0 {
		d.carveLine(x1, x2, y1, true)
		d.carveLine(y1, y2, x2, false)
	} else {
		d.carveLine(y1, y2, x1, false)
		d.carveLine(x1, x2, y2, true)
	}
}

// getRoom returns any room from a subtree.
func (d *Dungeon) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := d.getRoom(node.left); room != nil {
		return room
	}
	return d.getRoom(node.right)
}

// carveLine digs a straight tunnel from a to b along a row (horizontal) or column.
func (d *Dungeon) carveLine(a, b, fixed int, horizontal bool) {
	if a > b {
		a, b = b, a
	}
	for i := a; i <= b; i++ {
		if horizontal {
			d.carve(i, fixed)
		} else {
			d.carve(fixed, i)
		}
	}
}

// carve turns an interior tile into unclaimed dirt.
func (d *Dungeon) carve(x, y int) {
	if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
		d.Cells[y][x] = Cell{Tile: TileDirt}
	}
}
