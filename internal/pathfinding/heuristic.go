// Package pathfinding provides grid search for creatures.
package pathfinding

import "github.com/samdwyer/dungeonkeep/internal/world"

// Heuristic estimates the remaining cost from node to endNode.
type Heuristic[N any] interface {
	Estimate(node, endNode N) float32
}

// MapDistance calculates the Manhattan distance between two tiles.
// Admissible only while movement is orthogonal at unit cost.
type MapDistance struct{}

// Estimate returns |dx| + |dy|.
func (MapDistance) Estimate(node, endNode world.Point) float32 {
	return float32(abs(endNode.X-node.X) + abs(endNode.Y-node.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
