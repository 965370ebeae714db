package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonkeep/internal/control"
	"github.com/samdwyer/dungeonkeep/internal/creature"
	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/gamedata"
	"github.com/samdwyer/dungeonkeep/internal/interaction"
	"github.com/samdwyer/dungeonkeep/internal/logger"
	"github.com/samdwyer/dungeonkeep/internal/telemetry"
	"github.com/samdwyer/dungeonkeep/internal/ui"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// tick is posted by the frame ticker.
type tick struct{}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer

	rooms     *gamedata.RoomRegistry
	creatures *gamedata.CreatureRegistry

	dungeon    *world.Dungeon
	handler    *world.Handler
	level      *level
	controller *interaction.Controller
	controls   *control.Container
	workers    map[*entity.KeeperCreature]*creature.DigControl
	input      InputTranslator

	mode      Mode
	possessed *entity.KeeperCreature
	message   string
	running   bool

	log *logrus.Entry
}

// New creates a new game instance attached to the terminal.
func New(cfg Config) (*Game, error) {
	rooms, err := gamedata.LoadRoomRegistry()
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	creatures, err := gamedata.LoadCreatureRegistry()
	if err != nil {
		return nil, fmt.Errorf("load creatures: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:       cfg,
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		rooms:     rooms,
		creatures: creatures,
		running:   true,
		log:       logger.For("game"),
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	g.init(ctx, g.renderer, bell{screen: g.screen, log: g.log})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.tickLoop(ctx)

	for g.running {
		g.render()
		g.handleEvent(ctx, g.screen.PollEvent())
	}
	return nil
}

// init generates the level and wires the controller and creature controls.
func (g *Game) init(ctx context.Context, renderer interaction.Renderer, sounds world.SoundPlayer) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if g.log == nil {
		g.log = logger.For("game")
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.dungeon = world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
	g.dungeon.Generate(ctx)
	g.handler = world.NewHandler(g.dungeon, sounds)
	g.level = &level{
		dungeon: g.dungeon,
		things:  populate(g.dungeon, g.creatures, rng, g.cfg.Imps),
		rooms:   g.rooms,
	}

	settings := interaction.DefaultSettings()
	settings.Debug = g.cfg.Debug
	settings.UseCursors = g.cfg.UseCursors
	g.controller = interaction.NewController(interaction.Config{
		Player:    Player,
		World:     g.handler,
		Level:     g.level,
		Projector: interaction.GridProjector{},
		View: interaction.ViewRect{
			Width:  float64(g.dungeon.Width),
			Height: float64(g.dungeon.Height),
		},
		Renderer: renderer,
		Hooks: interaction.Hooks{
			OnStateChange: g.onStateChange,
			OnPossession:  g.onPossession,
		},
		Settings: settings,
	})

	g.controls = control.NewContainer()
	g.workers = make(map[*entity.KeeperCreature]*creature.DigControl)
	for _, th := range g.level.things {
		if c, ok := th.(*entity.KeeperCreature); ok && c.IsWorker() {
			dig := creature.NewDigControl(ctx, c, g.handler, creature.DefaultStepInterval)
			g.workers[c] = dig
			g.controls.Add(dig)
		}
	}

	g.mode = ModeKeeper
	g.running = true
	g.message = "d dig  1-5 rooms  s sell  p possess  x debug  q quit"

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("level.things", len(g.level.things)),
		attribute.Int("level.workers", g.controls.Len()),
	)
	g.log.WithFields(logrus.Fields{
		"seed":    seed,
		"rooms":   len(g.dungeon.Rooms),
		"workers": g.controls.Len(),
	}).Info("level ready")
}

// tickLoop posts a tick event every frame until ctx is done.
// Only events cross goroutines; all state stays on the event loop.
func (g *Game) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.tick())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := g.screen.PostEvent(tcell.NewEventInterrupt(tick{})); err != nil {
				g.log.WithError(err).Debug("dropped tick")
			}
		}
	}
}

func (g *Game) render() {
	g.renderer.Render(ui.Frame{
		Dungeon: g.dungeon,
		Things:  g.level.things,
		Rooms:   g.rooms,
		Status:  g.statusLine(),
	})
}

func (g *Game) statusLine() string {
	if g.mode == ModePossession {
		return fmt.Sprintf("possessing %s | %s", g.possessed.Name(), g.message)
	}
	return fmt.Sprintf("%s | %s", g.toolName(), g.message)
}

func (g *Game) toolName() string {
	state, id := g.controller.InteractionState(), g.controller.InteractionStateItemID()
	switch state {
	case interaction.StateRoom:
		if def := g.rooms.GetByID(id); def != nil {
			return "build " + def.Name
		}
	case interaction.StateSpell:
		if id == interaction.PossessionSpellID {
			return "possess"
		}
	case interaction.StateNone:
		return "dig"
	}
	return state.String()
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventMouse:
		for _, e := range g.input.Translate(ev) {
			g.controller.HandleEvent(ctx, e)
		}
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(tick); ok {
			g.controls.Update(g.cfg.tick().Seconds())
		}
	case *tcell.EventResize:
		if g.screen != nil {
			g.screen.Sync()
		}
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEscape:
		if g.mode == ModePossession {
			g.release()
			return
		}
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		g.handleRune(ev.Rune())
	}
}

func (g *Game) handleRune(r rune) {
	if r == 'q' || r == 'Q' {
		g.running = false
		return
	}
	if g.mode != ModeKeeper {
		return
	}

	switch {
	case r == 'd':
		g.controller.SetInteractionState(interaction.StateNone, 0)
	case r == 's':
		g.controller.SetInteractionState(interaction.StateSell, 0)
	case r == 'p':
		g.controller.SetInteractionState(interaction.StateSpell, interaction.PossessionSpellID)
	case r == 'x':
		debug := !g.controller.Settings().Debug
		g.controller.SetDebug(debug)
		g.message = fmt.Sprintf("debug %v", debug)
	case r >= '1' && r <= '9':
		id := int(r - '0')
		if g.rooms.GetByID(id) != nil {
			g.controller.SetInteractionState(interaction.StateRoom, id)
		}
	}
}

// tryMove steps the possessed creature by the given delta.
func (g *Game) tryMove(dx, dy int) {
	if g.mode != ModePossession || g.possessed == nil {
		return
	}
	x, y := g.possessed.Position()
	if g.dungeon.IsPassable(x+dx, y+dy) {
		g.possessed.MoveTo(x+dx, y+dy)
	}
}

func (g *Game) onStateChange(state interaction.State, id int) {
	// Possession resets the tool; keep the possession help on screen.
	if g.mode == ModePossession {
		return
	}
	g.message = "tool: " + g.toolName()
}

// onPossession hands the arrow keys to the creature and pauses its job.
func (g *Game) onPossession(c *entity.KeeperCreature) {
	g.mode = ModePossession
	g.possessed = c
	g.controller.SetEnabled(false)
	if dig, ok := g.workers[c]; ok {
		g.controls.Remove(dig)
	}
	g.message = "arrows move, esc leaves"
}

// release ends possession and gives the creature its job back.
func (g *Game) release() {
	if dig, ok := g.workers[g.possessed]; ok {
		dig.Reset()
		g.controls.Add(dig)
	}
	g.controller.SetEnabled(true)
	g.log.WithField("creature", g.possessed.Name()).Info("release creature")
	g.possessed = nil
	g.mode = ModeKeeper
	g.message = "tool: " + g.toolName()
}

// bell plays sound cues as the terminal bell.
type bell struct {
	screen *ui.Screen
	log    *logrus.Entry
}

func (b bell) PlayAt(x, y int, sound string) {
	b.log.WithFields(logrus.Fields{"x": x, "y": y, "sound": sound}).Debug("sound cue")
	if b.screen != nil {
		_ = b.screen.Beep()
	}
}
