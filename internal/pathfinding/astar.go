package pathfinding

import (
	"container/heap"
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonkeep/internal/telemetry"
)

// Graph exposes the connectivity and step costs of a search space.
type Graph[N comparable] interface {
	Neighbors(node N) []N
	Cost(from, to N) float32
}

type openNode[N comparable] struct {
	node  N
	g, f  float32
	index int
}

// openSet is a min-heap on f.
type openSet[N comparable] []*openNode[N]

func (s openSet[N]) Len() int           { return len(s) }
func (s openSet[N]) Less(i, j int) bool { return s[i].f < s[j].f }
func (s openSet[N]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet[N]) Push(x any) {
	item := x.(*openNode[N])
	item.index = len(*s)
	*s = append(*s, item)
}

func (s *openSet[N]) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*s = old[:n-1]
	return item
}

// FindPath runs A* from start to goal. The returned path includes both ends.
// ok is false when goal cannot be reached.
func FindPath[N comparable](ctx context.Context, g Graph[N], h Heuristic[N], start, goal N) (path []N, ok bool) {
	_, span := telemetry.Tracer("pathfinding").Start(ctx, "pathfinding.find_path")
	defer span.End()

	open := &openSet[N]{}
	heap.Init(open)
	heap.Push(open, &openNode[N]{node: start, f: h.Estimate(start, goal)})

	best := map[N]float32{start: 0}
	cameFrom := make(map[N]N)
	closed := make(map[N]bool)
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*openNode[N])
		if closed[current.node] {
			continue
		}
		if current.node == goal {
			path = reconstruct(cameFrom, start, goal)
			span.SetAttributes(
				attribute.Int("pathfinding.expanded", expanded),
				attribute.Int("pathfinding.length", len(path)),
			)
			return path, true
		}
		closed[current.node] = true
		expanded++

		for _, next := range g.Neighbors(current.node) {
			if closed[next] {
				continue
			}
			tentative := current.g + g.Cost(current.node, next)
			if known, seen := best[next]; seen && tentative >= known {
				continue
			}
			best[next] = tentative
			cameFrom[next] = current.node
			heap.Push(open, &openNode[N]{node: next, g: tentative, f: tentative + h.Estimate(next, goal)})
		}
	}

	span.SetAttributes(
		attribute.Int("pathfinding.expanded", expanded),
		attribute.Bool("pathfinding.unreachable", true),
	)
	return nil, false
}

func reconstruct[N comparable](cameFrom map[N]N, start, goal N) []N {
	path := []N{goal}
	for node := goal; node != start; {
		node = cameFrom[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
