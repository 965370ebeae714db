package world

// Point is a tile coordinate on the map grid.
type Point struct {
	X, Y int
}

// Area is a rectangle of tiles between a fixed start and a moving end.
// Start and End may be given in any order; iteration normalizes them.
type Area struct {
	Start, End Point
}

// Bounds returns the normalized top-left and bottom-right corners (inclusive).
func (a Area) Bounds() (min, max Point) {
	min, max = a.Start, a.End
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return min, max
}

// Contains returns true if the given point is inside the area.
func (a Area) Contains(x, y int) bool {
	min, max := a.Bounds()
	return x >= min.X && x <= max.X && y >= min.Y && y <= max.Y
}

// Points returns every tile covered by the area, row by row.
func (a Area) Points() []Point {
	min, max := a.Bounds()
	points := make([]Point, 0, (max.X-min.X+1)*(max.Y-min.Y+1))
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Room represents a rectangular cavern carved out of the earth.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
