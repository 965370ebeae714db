// Package creature drives keeper creatures between player commands.
package creature

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/logger"
	"github.com/samdwyer/dungeonkeep/internal/pathfinding"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// DefaultStepInterval is how long a worker takes to cross one tile, in seconds.
const DefaultStepInterval = 0.2

// DigControl walks a worker creature to tiles marked for digging and digs them.
type DigControl struct {
	worker   *entity.KeeperCreature
	handler  *world.Handler
	interval float64

	heuristic pathfinding.MapDistance
	path      []world.Point
	target    world.Point
	elapsed   float64

	// Update carries no context, so the one given at construction parents
	// the path search spans for the life of the control.
	ctx context.Context
	log *logrus.Entry
}

// NewDigControl creates a control for the worker. A non-positive interval uses DefaultStepInterval.
func NewDigControl(ctx context.Context, worker *entity.KeeperCreature, handler *world.Handler, interval float64) *DigControl {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	return &DigControl{
		worker:   worker,
		handler:  handler,
		interval: interval,
		ctx:      ctx,
		log:      logger.For("creature").WithField("creature", worker.Name()),
	}
}

// Update advances the worker one step per elapsed interval.
func (d *DigControl) Update(tpf float64) {
	d.elapsed += tpf
	for d.elapsed >= d.interval {
		d.elapsed -= d.interval
		d.step()
	}
}

// Busy reports whether the worker is on its way to a tile.
func (d *DigControl) Busy() bool {
	return len(d.path) > 0
}

func (d *DigControl) step() {
	if !d.handler.IsSelected(d.target.X, d.target.Y) || !d.onPath() {
		d.path = nil
	}

	if len(d.path) == 0 {
		if !d.plan() {
			return
		}
	}

	if len(d.path) > 0 {
		next := d.path[0]
		d.path = d.path[1:]
		d.worker.MoveTo(next.X, next.Y)
		return
	}

	// Arrived next to the target
	d.handler.DigTile(d.target.X, d.target.Y)
	d.log.WithFields(logrus.Fields{"x": d.target.X, "y": d.target.Y}).Debug("dug tile")
}

// onPath reports whether the next waypoint is still one step from the worker.
// It is not after someone else moved the worker, for example while possessed.
func (d *DigControl) onPath() bool {
	if len(d.path) == 0 {
		return true
	}
	x, y := d.worker.Position()
	next := d.path[0]
	return abs(next.X-x)+abs(next.Y-y) == 1
}

// Reset drops the current route and target so the next step replans.
func (d *DigControl) Reset() {
	d.path = nil
	d.target = world.Point{}
	d.elapsed = 0
}

// plan picks the closest reachable marked tile and routes to a floor tile beside it.
// It reports false when there is nothing to do.
func (d *DigControl) plan() bool {
	x, y := d.worker.Position()
	here := world.Point{X: x, Y: y}
	dungeon := d.handler.Dungeon()

	var (
		bestPath   []world.Point
		bestTarget world.Point
		bestCost   = float32(math.MaxFloat32)
	)
	for _, tile := range d.handler.SelectedTiles() {
		// Standing spots are one tile closer than the tile itself
		if d.heuristic.Estimate(here, tile)-1 >= bestCost {
			continue
		}
		for _, stand := range d.standingSpots(tile) {
			if d.heuristic.Estimate(here, stand) >= bestCost {
				continue
			}
			path, ok := pathfinding.FindPath[world.Point](d.ctx, dungeon, d.heuristic, here, stand)
			if !ok {
				continue
			}
			if cost := float32(len(path) - 1); cost < bestCost {
				bestCost = cost
				bestPath = path
				bestTarget = tile
			}
		}
	}

	if bestPath == nil {
		return false
	}
	d.target = bestTarget
	d.path = bestPath[1:]
	return true
}

// standingSpots returns the floor tiles orthogonally next to a tile.
func (d *DigControl) standingSpots(tile world.Point) []world.Point {
	dungeon := d.handler.Dungeon()
	var out []world.Point
	for _, step := range [4]world.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}} {
		p := world.Point{X: tile.X + step.X, Y: tile.Y + step.Y}
		if dungeon.IsPassable(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
