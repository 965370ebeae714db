package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/interaction"
	"github.com/samdwyer/dungeonkeep/internal/logger"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

type nullRenderer struct {
	overlays int
}

func (r *nullRenderer) DrawSelection(interaction.Overlay) { r.overlays++ }
func (r *nullRenderer) SetCursor(interaction.Cursor)      {}

type countingControl struct {
	calls int
	tpf   float64
}

func (c *countingControl) Update(tpf float64) {
	c.calls++
	c.tpf = tpf
}

func newTestGame(t *testing.T) (*Game, *nullRenderer) {
	t.Helper()
	g := &Game{
		cfg:       Config{Seed: 42, Imps: 2},
		rooms:     gamedata.MustLoadRoomRegistry(),
		creatures: gamedata.MustLoadCreatureRegistry(),
		log:       logger.For("game"),
	}
	r := &nullRenderer{}
	g.init(context.Background(), r, nil)
	return g, r
}

func firstWorker(t *testing.T, g *Game) *entity.KeeperCreature {
	t.Helper()
	for _, th := range g.level.things {
		if c, ok := th.(*entity.KeeperCreature); ok && c.IsWorker() {
			return c
		}
	}
	t.Fatal("no worker in level")
	return nil
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputTranslator(t *testing.T) {
	var in InputTranslator

	got := in.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	if len(got) != 1 || got[0] != (interaction.PointerMoved{X: 3, Y: 4}) {
		t.Fatalf("first report = %v, want one move to (3,4)", got)
	}

	got = in.Translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	want := interaction.ButtonEvent{Button: interaction.ButtonPrimary, Pressed: true}
	if len(got) != 1 || got[0] != want {
		t.Errorf("press = %v, want %v", got, want)
	}

	got = in.Translate(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	if len(got) != 1 || got[0] != (interaction.PointerMoved{X: 5, Y: 4}) {
		t.Errorf("drag = %v, want one move to (5,4)", got)
	}

	got = in.Translate(tcell.NewEventMouse(5, 4, tcell.Button2, tcell.ModNone))
	if len(got) != 2 {
		t.Fatalf("button swap = %v, want two edges", got)
	}
	if got[0] != (interaction.ButtonEvent{Button: interaction.ButtonPrimary, Pressed: false}) {
		t.Errorf("button swap[0] = %v, want primary release", got[0])
	}
	if got[1] != (interaction.ButtonEvent{Button: interaction.ButtonSecondary, Pressed: true}) {
		t.Errorf("button swap[1] = %v, want secondary press", got[1])
	}
}

func TestPopulate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
	d.Generate(context.Background())
	creatures := gamedata.MustLoadCreatureRegistry()

	things := populate(d, creatures, rng, 3)

	workers := 0
	for _, th := range things {
		if c, ok := th.(*entity.KeeperCreature); ok && c.IsWorker() {
			workers++
			x, y := c.Position()
			if d.RoomIndexAt(x, y) != 0 {
				t.Errorf("worker at (%d,%d) outside the first room", x, y)
			}
		}
		x, y := th.Position()
		if !d.IsPassable(x, y) {
			t.Errorf("%s placed on impassable tile (%d,%d)", th.Name(), x, y)
		}
	}
	if workers != 3 {
		t.Errorf("workers = %d, want 3", workers)
	}

	cx, cy := d.Rooms[0].Center()
	if owner := d.CellAt(cx, cy).Owner; owner != Player {
		t.Errorf("first room owner = %d, want %d", owner, Player)
	}
}

func TestPopulateEmptyDungeon(t *testing.T) {
	d := world.NewDungeon(10, 10, rand.New(rand.NewSource(1)))
	if things := populate(d, gamedata.MustLoadCreatureRegistry(), rand.New(rand.NewSource(1)), 2); len(things) != 0 {
		t.Errorf("populate() on a dungeon with no rooms = %d things, want 0", len(things))
	}
}

func TestInitWiresWorkers(t *testing.T) {
	g, _ := newTestGame(t)

	if g.controls.Len() != 2 {
		t.Errorf("controls = %d, want 2", g.controls.Len())
	}
	if len(g.workers) != 2 {
		t.Errorf("workers = %d, want 2", len(g.workers))
	}
	if g.mode != ModeKeeper {
		t.Errorf("mode = %v, want %v", g.mode, ModeKeeper)
	}
	if g.controller.InteractionState() != interaction.StateNone {
		t.Errorf("state = %v, want none", g.controller.InteractionState())
	}
}

func TestHandleRuneSelectsTool(t *testing.T) {
	tests := []struct {
		r     rune
		state interaction.State
		id    int
	}{
		{'2', interaction.StateRoom, 2},
		{'s', interaction.StateSell, 0},
		{'p', interaction.StateSpell, interaction.PossessionSpellID},
		{'9', interaction.StateSpell, interaction.PossessionSpellID}, // no room 9
		{'1', interaction.StateRoom, 1},
		{'d', interaction.StateNone, 0},
	}

	g, _ := newTestGame(t)
	for _, tt := range tests {
		g.handleEvent(context.Background(), key(tt.r))
		if got := g.controller.InteractionState(); got != tt.state {
			t.Errorf("after %q state = %v, want %v", tt.r, got, tt.state)
		}
		if got := g.controller.InteractionStateItemID(); got != tt.id {
			t.Errorf("after %q item id = %d, want %d", tt.r, got, tt.id)
		}
	}
}

func TestToggleDebug(t *testing.T) {
	g, _ := newTestGame(t)

	g.handleEvent(context.Background(), key('x'))
	if !g.controller.Settings().Debug {
		t.Error("debug not enabled after x")
	}
	g.handleEvent(context.Background(), key('x'))
	if g.controller.Settings().Debug {
		t.Error("debug still enabled after second x")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", key('q')},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.handleEvent(context.Background(), tt.ev)
			if g.running {
				t.Error("game still running")
			}
		})
	}
}

func TestPossessionPausesWorker(t *testing.T) {
	g, _ := newTestGame(t)
	worker := firstWorker(t, g)
	before := g.controls.Len()

	// Possession spell, then a click anywhere on the map
	ctx := context.Background()
	g.handleEvent(ctx, key('p'))
	g.handleEvent(ctx, tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	g.handleEvent(ctx, tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))

	if g.mode != ModePossession {
		t.Fatalf("mode = %v, want %v", g.mode, ModePossession)
	}
	if g.possessed != worker {
		t.Errorf("possessed %v, want the first worker", g.possessed)
	}
	if g.message != "arrows move, esc leaves" {
		t.Errorf("message = %q, want the possession help", g.message)
	}
	if g.controller.Enabled() {
		t.Error("controller enabled while possessing")
	}
	if g.controls.Len() != before-1 {
		t.Errorf("controls = %d, want %d", g.controls.Len(), before-1)
	}

	// Mouse input is ignored while possessing.
	g.handleEvent(context.Background(), tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if g.controller.Dragging() {
		t.Error("drag started while possessing")
	}

	g.handleEvent(context.Background(), tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !g.running {
		t.Fatal("escape quit the game instead of releasing the creature")
	}
	if g.mode != ModeKeeper {
		t.Errorf("mode = %v, want %v", g.mode, ModeKeeper)
	}
	if g.controls.Len() != before {
		t.Errorf("controls = %d, want %d", g.controls.Len(), before)
	}
	if !g.controller.Enabled() {
		t.Error("controller still disabled after leaving possession")
	}
	if g.message != "tool: dig" {
		t.Errorf("message = %q, want %q", g.message, "tool: dig")
	}
}

func TestPossessedCreatureMoves(t *testing.T) {
	g, _ := newTestGame(t)
	worker := firstWorker(t, g)
	g.onPossession(worker)

	moves := []struct {
		key    tcell.Key
		dx, dy int
	}{
		{tcell.KeyUp, 0, -1},
		{tcell.KeyDown, 0, 1},
		{tcell.KeyLeft, -1, 0},
		{tcell.KeyRight, 1, 0},
	}
	for _, m := range moves {
		x, y := worker.Position()
		g.handleEvent(context.Background(), tcell.NewEventKey(m.key, 0, tcell.ModNone))
		nx, ny := worker.Position()
		if g.dungeon.IsPassable(x+m.dx, y+m.dy) {
			if nx != x+m.dx || ny != y+m.dy {
				t.Errorf("move %v to passable tile: at (%d,%d), want (%d,%d)", m.key, nx, ny, x+m.dx, y+m.dy)
			}
		} else if nx != x || ny != y {
			t.Errorf("move %v into wall: at (%d,%d), want (%d,%d)", m.key, nx, ny, x, y)
		}
	}
}

func TestArrowsIgnoredInKeeperMode(t *testing.T) {
	g, _ := newTestGame(t)
	worker := firstWorker(t, g)
	x, y := worker.Position()

	g.handleEvent(context.Background(), tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if nx, ny := worker.Position(); nx != x || ny != y {
		t.Errorf("worker moved to (%d,%d) without possession", nx, ny)
	}
}

func TestTickUpdatesControls(t *testing.T) {
	g, _ := newTestGame(t)
	c := &countingControl{}
	g.controls.Add(c)

	g.handleEvent(context.Background(), tcell.NewEventInterrupt(tick{}))
	g.handleEvent(context.Background(), tcell.NewEventInterrupt("other"))

	if c.calls != 1 {
		t.Errorf("Update calls = %d, want 1", c.calls)
	}
	if want := DefaultTick.Seconds(); c.tpf != want {
		t.Errorf("tpf = %v, want %v", c.tpf, want)
	}
}

func TestMouseDragReachesController(t *testing.T) {
	g, r := newTestGame(t)
	cx, cy := g.dungeon.Rooms[0].Center()

	g.handleEvent(context.Background(), tcell.NewEventMouse(cx, cy, tcell.ButtonNone, tcell.ModNone))
	g.handleEvent(context.Background(), tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	if !g.controller.Dragging() {
		t.Fatal("press did not start a drag")
	}
	g.handleEvent(context.Background(), tcell.NewEventMouse(cx, cy, tcell.ButtonNone, tcell.ModNone))
	if g.controller.Dragging() {
		t.Error("release did not end the drag")
	}
	if r.overlays == 0 {
		t.Error("renderer never received an overlay")
	}
}

func TestStatusLine(t *testing.T) {
	g, _ := newTestGame(t)

	g.handleEvent(context.Background(), key('1'))
	if got, want := g.toolName(), "build Treasury"; got != want {
		t.Errorf("toolName() = %q, want %q", got, want)
	}
	g.handleEvent(context.Background(), key('p'))
	if got, want := g.toolName(), "possess"; got != want {
		t.Errorf("toolName() = %q, want %q", got, want)
	}
	g.handleEvent(context.Background(), key('d'))
	if got, want := g.toolName(), "dig"; got != want {
		t.Errorf("toolName() = %q, want %q", got, want)
	}
}
