package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonkeep/internal/interaction"
)

var trackedButtons = []struct {
	mask   tcell.ButtonMask
	button interaction.Button
}{
	{tcell.Button1, interaction.ButtonPrimary},
	{tcell.Button2, interaction.ButtonSecondary},
	{tcell.Button3, interaction.ButtonMiddle},
}

// InputTranslator turns tcell mouse reports into pointer events.
// tcell reports the full button state with every event, so presses and
// releases are recovered by diffing against the previous report.
type InputTranslator struct {
	x, y    int
	seen    bool
	buttons tcell.ButtonMask
}

// Translate returns the move (if the pointer moved) followed by any button edges.
func (t *InputTranslator) Translate(ev *tcell.EventMouse) []interaction.Event {
	var out []interaction.Event

	x, y := ev.Position()
	if !t.seen || x != t.x || y != t.y {
		out = append(out, interaction.PointerMoved{X: float64(x), Y: float64(y)})
		t.x, t.y, t.seen = x, y, true
	}

	now := ev.Buttons()
	for _, b := range trackedButtons {
		was, is := t.buttons&b.mask != 0, now&b.mask != 0
		if was != is {
			out = append(out, interaction.ButtonEvent{Button: b.button, Pressed: is})
		}
	}
	t.buttons = now & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	return out
}
