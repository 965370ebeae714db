package interaction

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonkeep/internal/telemetry"
	"github.com/samdwyer/dungeonkeep/internal/world"
)

// selectionPolicy gives the drag rectangle its meaning for the current tool.
type selectionPolicy struct {
	c *Controller
}

func (p selectionPolicy) OnView() bool {
	return p.c.status.OnView
}

func (p selectionPolicy) Visible() bool {
	c := p.c
	if c.settings.Debug {
		return true
	}
	if c.state == StateSpell {
		return false
	}
	if c.tracker.Active() {
		return true
	}

	// Selling is always visible while on the map; building also shows over taggables
	switch c.state {
	case StateNone:
		return c.status.Taggable
	case StateRoom, StateSell:
		return c.status.OnView
	default:
		return false
	}
}

func (p selectionPolicy) ColorIndicator() ColorIndicator {
	c := p.c
	pos := c.tile()
	if c.tracker.Active() {
		pos = c.tracker.Area().Start
	}

	switch {
	case c.state == StateSell:
		return ColorRed
	case c.state == StateRoom && !c.status.Taggable &&
		!c.world.IsBuildable(pos.X, pos.Y, c.player, c.level.RoomByID(c.itemID)):
		return ColorRed
	default:
		return ColorBlue
	}
}

func (p selectionPolicy) Submit(ctx context.Context, area world.Area) {
	c := p.c
	start := area.Start

	_, span := telemetry.Tracer("interaction").Start(ctx, "interaction.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("interaction.state", c.state.String()),
		attribute.Int("interaction.item_id", c.itemID),
		attribute.Int("area.start_x", start.X),
		attribute.Int("area.start_y", start.Y),
		attribute.Int("area.end_x", area.End.X),
		attribute.Int("area.end_y", area.End.Y),
	)

	action := "none"
	switch {
	case c.state == StateNone || (c.state == StateRoom && c.world.IsTaggable(start.X, start.Y)):
		// One decision for the whole rectangle, taken from the anchor tile
		selected := !c.world.IsSelected(max(0, start.X), max(0, start.Y))
		c.world.SelectTiles(area, selected)
		action = "select"
		if !selected {
			action = "deselect"
		}
	case c.state == StateRoom && c.world.IsBuildable(start.X, start.Y, c.player, c.level.RoomByID(c.itemID)):
		c.world.Build(area, c.player, c.level.RoomByID(c.itemID))
		action = "build"
	case c.state == StateSell:
		c.world.Sell(area, c.player)
		action = "sell"
	}

	span.SetAttributes(attribute.String("interaction.action", action))
	c.log.WithFields(logrus.Fields{
		"state":  c.state,
		"item":   c.itemID,
		"area":   area,
		"action": action,
	}).Debug("submit selection")
}
