package interaction

import (
	"context"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

type selectCall struct {
	area     world.Area
	selected bool
}

type fakeWorld struct {
	taggable  map[world.Point]bool
	buildable map[world.Point]bool
	claimable map[world.Point]bool
	selected  map[world.Point]bool

	selectCalls   []selectCall
	selectQueries []world.Point
	builds        []world.Area
	builtRooms    []*gamedata.RoomDef
	sells         []world.Area
	digs          []world.Point
	claims        []world.Point
	sounds        []world.Point
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		taggable:  map[world.Point]bool{},
		buildable: map[world.Point]bool{},
		claimable: map[world.Point]bool{},
		selected:  map[world.Point]bool{},
	}
}

func (w *fakeWorld) IsTaggable(x, y int) bool { return w.taggable[world.Point{X: x, Y: y}] }
func (w *fakeWorld) IsBuildable(x, y, player int, room *gamedata.RoomDef) bool {
	return room != nil && w.buildable[world.Point{X: x, Y: y}]
}
func (w *fakeWorld) IsClaimable(x, y, player int) bool { return w.claimable[world.Point{X: x, Y: y}] }
func (w *fakeWorld) IsSelected(x, y int) bool {
	p := world.Point{X: x, Y: y}
	w.selectQueries = append(w.selectQueries, p)
	return w.selected[p]
}
func (w *fakeWorld) SelectTiles(area world.Area, selected bool) {
	w.selectCalls = append(w.selectCalls, selectCall{area: area, selected: selected})
}
func (w *fakeWorld) Build(area world.Area, player int, room *gamedata.RoomDef) {
	w.builds = append(w.builds, area)
	w.builtRooms = append(w.builtRooms, room)
}
func (w *fakeWorld) Sell(area world.Area, player int) { w.sells = append(w.sells, area) }
func (w *fakeWorld) DigTile(x, y int)                  { w.digs = append(w.digs, world.Point{X: x, Y: y}) }
func (w *fakeWorld) ClaimTile(x, y, player int) {
	w.claims = append(w.claims, world.Point{X: x, Y: y})
}
func (w *fakeWorld) PlaySoundAtTile(x, y int, sound string) {
	w.sounds = append(w.sounds, world.Point{X: x, Y: y})
}

func (w *fakeWorld) actions() int {
	return len(w.selectCalls) + len(w.builds) + len(w.sells) + len(w.digs) + len(w.claims)
}

type fakeLevel struct {
	width, height int
	things        []entity.Thing
	rooms         map[int]*gamedata.RoomDef
}

func (l *fakeLevel) MapSize() (int, int)               { return l.width, l.height }
func (l *fakeLevel) Things() []entity.Thing            { return l.things }
func (l *fakeLevel) RoomByID(id int) *gamedata.RoomDef { return l.rooms[id] }

type fakeRenderer struct {
	overlays []Overlay
	cursors  []Cursor
}

func (r *fakeRenderer) DrawSelection(o Overlay) { r.overlays = append(r.overlays, o) }
func (r *fakeRenderer) SetCursor(c Cursor)      { r.cursors = append(r.cursors, c) }

func (r *fakeRenderer) lastCursor() (Cursor, bool) {
	if len(r.cursors) == 0 {
		return 0, false
	}
	return r.cursors[len(r.cursors)-1], true
}

type harness struct {
	c        *Controller
	world    *fakeWorld
	level    *fakeLevel
	renderer *fakeRenderer

	stateChanges []State
	possessed    []*entity.KeeperCreature
}

// newHarness builds a controller over a 20x20 map shown at the screen
// origin with one screen cell per tile. Everything at x >= 20 or y >= 20 is GUI.
func newHarness(settings Settings) *harness {
	h := &harness{
		world: newFakeWorld(),
		level: &fakeLevel{
			width:  20,
			height: 20,
			rooms:  map[int]*gamedata.RoomDef{1: {ID: 1, Name: "Treasury"}},
		},
		renderer: &fakeRenderer{},
	}
	h.c = NewController(Config{
		Player:    1,
		World:     h.world,
		Level:     h.level,
		Projector: GridProjector{},
		View:      ViewRect{X: 0, Y: 0, Width: 20, Height: 20},
		Renderer:  h.renderer,
		Hooks: Hooks{
			OnStateChange: func(s State, id int) { h.stateChanges = append(h.stateChanges, s) },
			OnPossession:  func(c *entity.KeeperCreature) { h.possessed = append(h.possessed, c) },
		},
		Settings: settings,
	})
	return h
}

type stubPolicy struct{}

func (stubPolicy) OnView() bool                                { return true }
func (stubPolicy) Visible() bool                               { return true }
func (stubPolicy) ColorIndicator() ColorIndicator              { return ColorBlue }
func (stubPolicy) Submit(ctx context.Context, area world.Area) {}
