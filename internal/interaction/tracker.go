package interaction

import (
	"context"

	"github.com/samdwyer/dungeonkeep/internal/world"
)

// ColorIndicator tints the selection rectangle.
type ColorIndicator int

const (
	ColorBlue ColorIndicator = iota
	ColorRed
)

// String returns a human-readable color name.
func (c ColorIndicator) String() string {
	if c == ColorRed {
		return "red"
	}
	return "blue"
}

// Overlay is the selection rectangle as the renderer should draw it.
type Overlay struct {
	Area    world.Area
	Visible bool
	OnView  bool
	Color   ColorIndicator
}

// Policy decides what a drag rectangle means.
type Policy interface {
	OnView() bool
	Visible() bool
	ColorIndicator() ColorIndicator
	Submit(ctx context.Context, area world.Area)
}

// Tracker follows a drag rectangle and hands it to a Policy.
type Tracker struct {
	area     world.Area
	active   bool
	hidden   bool
	policy   Policy
	renderer OverlayRenderer
}

// NewTracker creates a tracker. renderer may be nil.
func NewTracker(policy Policy, renderer OverlayRenderer) *Tracker {
	return &Tracker{policy: policy, renderer: renderer}
}

// Area returns the current rectangle.
func (t *Tracker) Area() world.Area { return t.area }

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// Begin starts a drag anchored at p. A drag already in progress keeps its anchor.
func (t *Tracker) Begin(p world.Point) {
	if !t.active {
		t.area.Start = p
	}
	t.active = true
}

// Extend moves the free corner of the rectangle.
func (t *Tracker) Extend(p world.Point) {
	t.area.End = p
}

// Collapse shrinks the rectangle to the single tile p.
func (t *Tracker) Collapse(p world.Point) {
	t.area = world.Area{Start: p, End: p}
}

// End stops the drag and reports whether one was in progress.
func (t *Tracker) End() bool {
	was := t.active
	t.active = false
	return was
}

// Hide suppresses the overlay until Show.
func (t *Tracker) Hide() { t.hidden = true }

// Show lifts a Hide.
func (t *Tracker) Show() { t.hidden = false }

// Submit hands the current rectangle to the policy.
func (t *Tracker) Submit(ctx context.Context) {
	t.policy.Submit(ctx, t.area)
}

// Overlay returns the rectangle as it should be drawn now.
func (t *Tracker) Overlay() Overlay {
	return Overlay{
		Area:    t.area,
		Visible: !t.hidden && t.policy.Visible(),
		OnView:  t.policy.OnView(),
		Color:   t.policy.ColorIndicator(),
	}
}

// Refresh pushes the overlay to the renderer.
func (t *Tracker) Refresh() {
	if t.renderer == nil {
		return
	}
	t.renderer.DrawSelection(t.Overlay())
}
