package interaction

// Event is an input event delivered by the host.
type Event interface {
	isEvent()
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerMoved reports the pointer at screen position (X, Y).
type PointerMoved struct {
	X, Y float64
}

// ButtonEvent reports a press or release at the last known pointer position.
type ButtonEvent struct {
	Button  Button
	Pressed bool
}

// KeyEvent is a keyboard event. The controller ignores it.
type KeyEvent struct {
	Rune rune
}

// TouchEvent is a touch event. The controller ignores it.
type TouchEvent struct {
	X, Y float64
}

func (PointerMoved) isEvent() {}
func (ButtonEvent) isEvent()  {}
func (KeyEvent) isEvent()     {}
func (TouchEvent) isEvent()   {}
