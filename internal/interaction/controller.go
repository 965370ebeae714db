package interaction

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonkeep/internal/entity"
	"github.com/samdwyer/dungeonkeep/internal/logger"
	"github.com/samdwyer/dungeonkeep/internal/telemetry"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// Controller is the keeper's interaction state machine.
// It is not safe for concurrent use; feed it from one event goroutine.
type Controller struct {
	player    int
	world     World
	level     Level
	projector Projector
	gui       ViewRect
	renderer  Renderer
	hooks     Hooks
	settings  Settings

	state   State
	itemID  int
	tracker *Tracker
	status  PointerStatus
	tagging bool

	pointerX, pointerY float64
	disabled           bool

	log *logrus.Entry
}

// Config bundles the collaborators of a Controller.
type Config struct {
	Player    int
	World     World
	Level     Level
	Projector Projector
	// View is the screen area showing the map.
	View     ViewRect
	Renderer Renderer
	Hooks    Hooks
	Settings Settings
}

// NewController creates a controller in StateNone. A nil Projector
// uses a unit GridProjector.
func NewController(cfg Config) *Controller {
	c := &Controller{
		player:    cfg.Player,
		world:     cfg.World,
		level:     cfg.Level,
		projector: cfg.Projector,
		gui:       cfg.View,
		renderer:  cfg.Renderer,
		hooks:     cfg.Hooks,
		settings:  cfg.Settings,
		state:     StateNone,
		log:       logger.For("interaction"),
	}
	if c.projector == nil {
		c.projector = GridProjector{}
	}

	var overlay OverlayRenderer
	if cfg.Renderer != nil {
		overlay = cfg.Renderer
	}
	c.tracker = NewTracker(selectionPolicy{c: c}, overlay)
	return c
}

// SetInteractionState switches the tool. The state change hook runs even
// when the state and id are unchanged.
func (c *Controller) SetInteractionState(state State, id int) {
	c.state = state
	c.itemID = id

	c.log.WithFields(logrus.Fields{"state": state, "item": id}).Debug("interaction state")
	if c.hooks.OnStateChange != nil {
		c.hooks.OnStateChange(state, id)
	}
}

// InteractionState returns the current tool.
func (c *Controller) InteractionState() State { return c.state }

// InteractionStateItemID returns the item id paired with the current tool.
func (c *Controller) InteractionStateItemID() int { return c.itemID }

// Status returns the pointer status computed on the last pointer move.
func (c *Controller) Status() PointerStatus { return c.status }

// Dragging reports whether a drag rectangle is active.
func (c *Controller) Dragging() bool { return c.tracker.Active() }

// Tagging reports whether the primary button is held after pressing on a taggable tile.
func (c *Controller) Tagging() bool { return c.tagging }

// Selection returns the current drag rectangle.
func (c *Controller) Selection() world.Area { return c.tracker.Area() }

// Overlay returns the selection rectangle as it should be drawn now.
func (c *Controller) Overlay() Overlay { return c.tracker.Overlay() }

// Settings returns the active preferences.
func (c *Controller) Settings() Settings { return c.settings }

// SetDebug toggles debug mode.
func (c *Controller) SetDebug(debug bool) {
	c.settings.Debug = debug
	c.tracker.Refresh()
}

// Submit forces the current rectangle through the selection policy.
func (c *Controller) Submit(ctx context.Context) {
	c.tracker.Submit(ctx)
}

// SetEnabled turns pointer handling on or off. Disabling abandons any
// drag in progress and hides the overlay.
func (c *Controller) SetEnabled(enabled bool) {
	if c.disabled == !enabled {
		return
	}
	c.disabled = !enabled
	if c.disabled {
		c.tracker.End()
		c.tracker.Hide()
		c.tracker.Refresh()
		if c.tagging {
			c.tagging = false
			c.refreshCursor()
		}
	}
}

// Enabled reports whether pointer events are handled.
func (c *Controller) Enabled() bool { return !c.disabled }

// HandleEvent dispatches one input event. Keyboard and touch events are
// ignored, and so is everything while the controller is disabled.
func (c *Controller) HandleEvent(ctx context.Context, ev Event) {
	if c.disabled {
		return
	}
	switch ev := ev.(type) {
	case PointerMoved:
		c.onPointerMoved(ev)
	case ButtonEvent:
		c.onButton(ctx, ev)
	}
}

func (c *Controller) onPointerMoved(ev PointerMoved) {
	c.pointerX, c.pointerY = ev.X, ev.Y
	pos := c.tile()

	if c.updateStatus() {
		c.refreshCursor()
	}

	if c.tracker.Active() {
		c.tracker.Extend(pos)
	} else {
		c.tracker.Collapse(pos)
	}
	c.tracker.Show()
	c.tracker.Refresh()
}

func (c *Controller) onButton(ctx context.Context, ev ButtonEvent) {
	switch ev.Button {
	case ButtonPrimary:
		if c.state == StateSpell && c.itemID == c.settings.PossessionSpellID {
			if !ev.Pressed {
				c.possess(ctx)
			}
			return
		}
		if ev.Pressed {
			c.primaryPressed()
		} else {
			c.primaryReleased(ctx)
		}
	case ButtonSecondary:
		if !ev.Pressed {
			c.secondaryReleased()
		}
	}
}

func (c *Controller) primaryPressed() {
	pos := c.tile()
	c.tracker.Begin(pos)

	if c.status.Taggable {
		c.tagging = true
		c.refreshCursor()

		// Positional, tied to the cursor change rather than the dig itself
		c.world.PlaySoundAtTile(pos.X, pos.Y, c.settings.TagSound)
	}
}

func (c *Controller) primaryReleased(ctx context.Context) {
	if c.tracker.End() {
		c.tracker.Submit(ctx)
	}
	c.tracker.Collapse(c.tile())
	c.tracker.Hide()
	c.tracker.Refresh()

	if c.tagging {
		c.tagging = false
		c.refreshCursor()
	}
}

func (c *Controller) secondaryReleased() {
	pos := c.tile()
	if c.state == StateNone && c.settings.Debug {
		switch {
		case c.world.IsTaggable(pos.X, pos.Y):
			c.world.DigTile(pos.X, pos.Y)
		case c.world.IsClaimable(pos.X, pos.Y, c.player):
			c.world.ClaimTile(pos.X, pos.Y, c.player)
		}
	}

	c.SetInteractionState(StateNone, 0)
	if c.updateStatus() {
		c.refreshCursor()
	}

	c.tracker.End()
	c.tracker.Collapse(pos)
	c.tracker.Refresh()
}

// possess takes over the first keeper creature on the level.
// TODO: pick the creature under the pointer once the level can answer hit tests.
func (c *Controller) possess(ctx context.Context) {
	_, span := telemetry.Tracer("interaction").Start(ctx, "interaction.possess")
	defer span.End()

	for _, thing := range c.level.Things() {
		creature, ok := thing.(*entity.KeeperCreature)
		if !ok {
			continue
		}
		x, y := creature.Position()
		span.SetAttributes(
			attribute.String("creature.name", creature.Name()),
			attribute.Int("creature.x", x),
			attribute.Int("creature.y", y),
		)
		c.log.WithField("creature", creature.Name()).Info("possess creature")
		if c.hooks.OnPossession != nil {
			c.hooks.OnPossession(creature)
		}
		break
	}

	c.SetInteractionState(StateNone, 0)
}

// tile returns the rounded tile under the last pointer position.
func (c *Controller) tile() world.Point {
	return c.projector.TileAt(c.pointerX, c.pointerY)
}

// computeStatus derives the pointer status from the pointer, the tool and the map.
func (c *Controller) computeStatus() PointerStatus {
	var s PointerStatus
	s.OnGUI = !c.gui.Contains(c.pointerX, c.pointerY)

	pos := c.tile()
	if !s.OnGUI {
		width, height := c.level.MapSize()
		s.OnView = pos.X >= 0 && pos.X < width && pos.Y >= 0 && pos.Y < height
	}

	s.Taggable = (c.state == StateRoom || c.state == StateNone) &&
		s.OnView && c.world.IsTaggable(pos.X, pos.Y)
	return s
}

// updateStatus recomputes the status and reports whether it changed.
func (c *Controller) updateStatus() bool {
	next := c.computeStatus()
	changed := next != c.status
	c.status = next
	return changed
}

func (c *Controller) refreshCursor() {
	if !c.settings.UseCursors || c.renderer == nil {
		return
	}
	c.renderer.SetCursor(SelectCursor(c.status.OnGUI, c.tagging, c.status.Taggable))
}
